package rest

// Package rest is the transport client for the relay backend. It owns bearer
// attachment, the single reissue-and-replay on an expired response, and typed
// envelope decoding for every endpoint family.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/relaymarket/relay-go/internal/domain/identity"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// shopper and staff endpoint families. Paths mirror the backend contract.
const (
	pathShopperLogin   = "/api/auth/login"
	pathShopperSignup  = "/api/auth/signup"
	pathShopperLogout  = "/api/auth/logout"
	pathShopperReissue = "/api/auth/reissue"
	pathShopperSelf    = "/api/users/me"

	pathStaffLogin   = "/api/admin/auth/login"
	pathStaffLogout  = "/api/admin/auth/logout"
	pathStaffReissue = "/api/admin/auth/reissue"
	pathStaffSelf    = "/api/admin/staff/me"
)

// ClientOptions groups dependencies for Client.
type ClientOptions struct {
	BaseURL     string
	Credentials ports.CredentialStore
	Logger      *slog.Logger
	Timeout     time.Duration

	// HTTPClient overrides the default client (tests). A cookie jar is
	// installed when none is present so the reissue cookie set at login is
	// sent back automatically.
	HTTPClient *http.Client
}

// Client wraps outbound HTTP calls to the relay backend. It attaches the
// persisted bearer credential, and on an authorization-expired response makes
// exactly one reissue attempt before replaying the original call once.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      ports.CredentialStore
	logger     *slog.Logger

	// reissue collapses concurrent refresh attempts for the same kind so the
	// backend sees at most one reissue per expiry, not one per in-flight call.
	reissue singleflight.Group
}

// NewClient constructs a Client.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if opts.Credentials == nil {
		return nil, errors.New("credential store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    opts.BaseURL,
		creds:      opts.Credentials,
		logger:     logger,
	}, nil
}

// StatusError is a non-2xx backend response, carrying the server-supplied
// message field when one was present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// serverMessage extracts the conventional {"message": ...} error field.
func serverMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

// response is the buffered result of a backend call.
type response struct {
	status int
	header http.Header
	body   []byte
}

type requestOptions struct {
	// unauthenticated marks calls that must not carry a bearer token and must
	// never trigger a reissue (login, signup, reissue itself).
	unauthenticated bool
	headers         map[string]string
}

type requestOption func(*requestOptions)

func unauthenticated() requestOption {
	return func(o *requestOptions) { o.unauthenticated = true }
}

func withHeader(key, value string) requestOption {
	return func(o *requestOptions) { o.headers = map[string]string{key: value} }
}

// do issues one backend call, applying the silent-refresh contract: on a 401
// from an authenticated call, exactly one reissue attempt is made against the
// kind-appropriate endpoint, and on success the original call is replayed
// once. A failed reissue or a second 401 discards the credential atomically
// and surfaces a session_expired error.
func (c *Client) do(ctx context.Context, method, path string, reqBody any, opts ...requestOption) (*response, error) {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	var cred identity.Credential
	hasCred := false
	if !options.unauthenticated {
		loaded, err := c.creds.LoadCredential(ctx)
		if err == nil && loaded.Valid() {
			cred = loaded
			hasCred = true
		} else if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "load credential")
		}
	}

	token := ""
	if hasCred {
		token = cred.AccessToken
	}
	resp, err := c.send(ctx, method, path, reqBody, token, options.headers)
	if err != nil {
		return nil, err
	}

	if resp.status != http.StatusUnauthorized || !hasCred {
		return resp, nil
	}

	newToken, err := c.reissueToken(ctx, cred.Kind)
	if err != nil {
		if clearErr := c.creds.ClearSession(ctx); clearErr != nil {
			c.logger.WarnContext(ctx, "clear session after failed reissue", "error", clearErr)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeSessionExpired, "session expired")
	}

	resp, err = c.send(ctx, method, path, reqBody, newToken, options.headers)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusUnauthorized {
		// Replay is attempted once; a second expiry means the reissued token
		// is unusable too.
		if clearErr := c.creds.ClearSession(ctx); clearErr != nil {
			c.logger.WarnContext(ctx, "clear session after replay rejection", "error", clearErr)
		}
		return nil, apperrors.SessionExpired("session expired")
	}
	return resp, nil
}

// send issues a single HTTP request without any retry behavior.
func (c *Client) send(ctx context.Context, method, path string, reqBody any, token string, headers map[string]string) (*response, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeTransport, "%s %s", method, path)
	}
	defer func() {
		if cerr := httpResp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "close response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeTransport, "read %s %s response", method, path)
	}

	return &response{status: httpResp.StatusCode, header: httpResp.Header, body: body}, nil
}

// reissueToken exchanges the refresh cookie for a new access token and
// persists it. Concurrent callers for the same kind share one attempt.
func (c *Client) reissueToken(ctx context.Context, kind identity.PrincipalKind) (string, error) {
	v, err, _ := c.reissue.Do(string(kind), func() (any, error) {
		resp, err := c.send(ctx, http.MethodPost, reissuePath(kind), nil, "", nil)
		if err != nil {
			return "", err
		}
		if resp.status < 200 || resp.status >= 300 {
			return "", &StatusError{StatusCode: resp.status, Message: serverMessage(resp.body)}
		}
		token, err := extractToken(resp.header, resp.body)
		if err != nil {
			return "", err
		}
		if saveErr := c.creds.SaveCredential(ctx, identity.Credential{AccessToken: token, Kind: kind}); saveErr != nil {
			return "", fmt.Errorf("persist reissued credential: %w", saveErr)
		}
		c.logger.InfoContext(ctx, "access token reissued", "kind", string(kind))
		return token, nil
	})
	if err != nil {
		return "", err
	}
	token, ok := v.(string)
	if !ok || token == "" {
		return "", errors.New("reissue yielded no token")
	}
	return token, nil
}

func reissuePath(kind identity.PrincipalKind) string {
	if kind == identity.KindStaff {
		return pathStaffReissue
	}
	return pathShopperReissue
}

// ok reports whether the buffered response carries a success status.
func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// statusError converts a non-2xx buffered response into a StatusError.
func (r *response) statusError() *StatusError {
	return &StatusError{StatusCode: r.status, Message: serverMessage(r.body)}
}
