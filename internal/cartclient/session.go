package cartclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SessionChecker asks the server whether the visitor is logged in.
type SessionChecker struct {
	baseURL     string
	http        *http.Client
	statusCheck bool
}

// NewSessionChecker returns a checker for the server at baseURL. The session
// cookie travels in client's cookie jar.
func NewSessionChecker(baseURL string, client *http.Client) *SessionChecker {
	return &SessionChecker{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

// LoggedIn performs one GET /verificar_sesion. Transport failures and
// undecodable bodies are returned as errors.
func (s *SessionChecker) LoggedIn(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+SessionPath, nil)
	if err != nil {
		return false, fmt.Errorf("building session request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("checking session: %w", err)
	}
	defer resp.Body.Close()

	var out sessionResponse
	if err := decode(resp, s.statusCheck, &out); err != nil {
		return false, fmt.Errorf("checking session: %w", err)
	}
	return out.LoggedIn, nil
}

// decode reads a JSON object from resp. With statusCheck set, a non-2xx
// status is an error regardless of the body.
func decode(resp *http.Response, statusCheck bool, v any) error {
	if statusCheck && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
