package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dsmolenski/accountcli/internal/client/nav"
	"github.com/dsmolenski/accountcli/internal/common"
	"github.com/dsmolenski/accountcli/internal/logging"
)

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	sessions Invalidator
	nav      nav.Navigator
	log      logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, sessions Invalidator, navigator nav.Navigator, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		tokens:   tokens,
		sessions: sessions,
		nav:      navigator,
		log:      log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var resp struct {
		Token string `json:"token"`
		User  struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, loginPath, creds, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: login response has no token", ErrMalformedResponse)
	}
	return &LoginResult{
		Token:     resp.Token,
		FirstName: resp.User.FirstName,
		LastName:  resp.User.LastName,
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, registerPath, req, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*Profile, error) {
	var resp struct {
		User Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, profilePath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, pingPath, nil, nil)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do runs one request/response round-trip with both cross-cutting
// behaviors: bearer injection on the way out, outcome classification on
// the way back.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "no response from server", "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(ctx, path, resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}
	return nil
}

// checkStatus maps the response status onto exactly one outcome. The
// branches are mutually exclusive and cover the whole status space.
func (c *HTTPClient) checkStatus(ctx context.Context, path string, resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		// Session-invalidating, whatever the endpoint was.
		c.expireSession(ctx, path)
		return common.ErrSessionExpired

	case resp.StatusCode == http.StatusForbidden:
		c.log.Warn(ctx, "permission denied", "path", path)
		c.nav.NavigateTo(nav.RouteForbidden)
		return common.ErrForbidden

	case resp.StatusCode >= 500:
		c.log.Error(ctx, "server error", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s", common.ErrServer, resp.Status)

	default:
		return &RequestFailure{
			StatusCode:    resp.StatusCode,
			ServerMessage: decodeMessage(resp.Body),
		}
	}
}

// expireSession runs the forced-logout side effect of a 401, exactly once
// per failing response.
func (c *HTTPClient) expireSession(ctx context.Context, path string) {
	c.log.Warn(ctx, "session invalidated by server", "path", path)
	if err := c.sessions.Logout(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session", "error", err)
	}
	c.nav.NavigateTo(nav.RouteLogin)
}
