package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RESTIdentityAdmin deletes external accounts through the identity provider's
// account management endpoint.
type RESTIdentityAdmin struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRESTIdentityAdmin(baseURL, apiKey string, timeout time.Duration) *RESTIdentityAdmin {
	return &RESTIdentityAdmin{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (a *RESTIdentityAdmin) DeleteAccount(ctx context.Context, subjectID string) error {
	payload, err := json.Marshal(map[string]string{"localId": subjectID})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExternalDelete, err)
	}

	url := fmt.Sprintf("%s/accounts:delete?key=%s", a.baseURL, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExternalDelete, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExternalDelete, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: provider returned status %d", ErrExternalDelete, resp.StatusCode)
	}

	return nil
}
