package auth

import (
	"context"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

// GoogleVerifier verifies Google-signed ID tokens issued for the configured
// OAuth client. Verification fetches Google's certificates, so the call is
// bounded by a timeout and fails closed as ErrUnauthenticated.
type GoogleVerifier struct {
	audience string
	timeout  time.Duration
	verifier googleAuthIDTokenVerifier.Verifier
}

func NewGoogleVerifier(audience string, timeout time.Duration) *GoogleVerifier {
	return &GoogleVerifier{
		audience: audience,
		timeout:  timeout,
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- v.verifier.VerifyIDToken(rawToken, []string{v.audience})
	}()

	select {
	case <-ctx.Done():
		return nil, ErrUnauthenticated
	case err := <-done:
		if err != nil {
			return nil, ErrUnauthenticated
		}
	}

	claims, err := googleAuthIDTokenVerifier.Decode(rawToken)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	return &Identity{
		SubjectID: claims.Sub,
		Email:     claims.Email,
		Name:      claims.Name,
	}, nil
}
