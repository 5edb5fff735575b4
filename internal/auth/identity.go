package auth

import (
	"context"
	"errors"
)

var (
	// ErrUnauthenticated is returned when a credential cannot be verified.
	ErrUnauthenticated = errors.New("credential could not be verified")
	// ErrExternalDelete is returned when the identity provider refuses an account deletion.
	ErrExternalDelete = errors.New("identity provider account deletion failed")
)

// Identity is the verified result of a bearer credential.
type Identity struct {
	SubjectID string
	Email     string
	Name      string
}

// TokenVerifier verifies an opaque bearer credential against the external
// identity provider. Any verification failure yields ErrUnauthenticated.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// IdentityAdmin is the identity provider's companion management API, used to
// delete external accounts when an admin removes a user.
type IdentityAdmin interface {
	DeleteAccount(ctx context.Context, subjectID string) error
}
