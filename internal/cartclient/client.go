package cartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Client adds products to the visitor's cart. Every call re-checks the
// session and shows exactly one alert. Calls are independent: nothing is
// cached, retried or deduplicated, and no timeout is imposed beyond ctx.
type Client struct {
	baseURL   string
	http      *http.Client
	session   *SessionChecker
	notifier  Notifier
	navigator Navigator
	logger    *zap.Logger

	statusCheck bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client. It should carry a cookie jar so the
// session cookie is sent with both requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithStatusCheck treats non-2xx responses as request failures instead of
// parsing their bodies.
func WithStatusCheck() Option {
	return func(c *Client) { c.statusCheck = true }
}

// New creates a Client for the storefront at baseURL.
func New(baseURL string, notifier Notifier, navigator Navigator, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	if notifier == nil || navigator == nil {
		return nil, fmt.Errorf("notifier and navigator are required")
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		notifier:  notifier,
		navigator: navigator,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		c.http = &http.Client{Jar: jar}
	}

	c.session = NewSessionChecker(c.baseURL, c.http)
	c.session.statusCheck = c.statusCheck
	return c, nil
}

// Session returns the checker used before every add.
func (c *Client) Session() *SessionChecker { return c.session }

// AddToCart checks the session and, when logged in, posts paquete to the
// cart. paquete is sent verbatim as the "paquete" JSON field.
func (c *Client) AddToCart(ctx context.Context, paquete any) Outcome {
	loggedIn, err := c.session.LoggedIn(ctx)
	if err != nil {
		return c.fail(err)
	}
	if !loggedIn {
		c.notifier.Alert(MsgLoginRequired)
		c.navigator.Navigate(LoginPath)
		return OutcomeLoginRequired
	}

	resp, err := c.post(ctx, paquete)
	if err != nil {
		return c.fail(err)
	}
	if resp.Success {
		c.notifier.Alert(MsgAdded)
		return OutcomeAdded
	}
	c.notifier.Alert(MsgRejectedPrefix + resp.Message)
	return OutcomeRejected
}

func (c *Client) post(ctx context.Context, paquete any) (*addResponse, error) {
	body, err := json.Marshal(addRequest{Paquete: paquete})
	if err != nil {
		return nil, fmt.Errorf("encoding cart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+AddPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adding to cart: %w", err)
	}
	defer resp.Body.Close()

	var out addResponse
	if err := decode(resp, c.statusCheck, &out); err != nil {
		return nil, fmt.Errorf("adding to cart: %w", err)
	}
	return &out, nil
}

func (c *Client) fail(err error) Outcome {
	c.logger.Error("cart request failed", zap.Error(err))
	c.notifier.Alert(MsgRequestFailed)
	return OutcomeFailed
}

// Login posts credentials to the storefront's login form so that the
// session cookie lands in the client's jar, then confirms the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	form := url.Values{"email": {email}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LoginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	resp.Body.Close()

	ok, err := c.session.LoggedIn(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLoginFailed
	}
	return nil
}
