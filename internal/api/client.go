// Package api is the single chokepoint for every backend interaction.
// No other package performs raw network I/O.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/matchdaycli/matchday/internal/errors"
	"github.com/matchdaycli/matchday/internal/log"
)

// httpDoer is the seam used to stub the transport in tests.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Config controls how the client reaches the backend.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
	Logger     *log.Logger
}

// Client talks to the fantasy backend. All calls flow through request,
// which attaches auth headers, encodes bodies, and normalizes errors.
type Client struct {
	baseURL    string
	httpClient httpDoer
	tokens     TokenSource
	logger     *log.Logger
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := httpDoer(http.DefaultClient)
	if cfg.HTTPClient != nil {
		httpClient = cfg.HTTPClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     cfg.Tokens,
		logger:     logger,
	}
}

// Encoding selects how a request body is serialized.
type Encoding int

const (
	// EncodingJSON serializes the body as JSON with a JSON content type.
	EncodingJSON Encoding = iota
	// EncodingForm url-encodes the body; the encoder owns the content type.
	EncodingForm
)

// requestOptions bundle the per-call knobs: body, auth requirement, and
// encoding.
type requestOptions struct {
	body         any
	requiresAuth bool
	encoding     Encoding
}

// request performs one backend call and decodes a JSON response into out.
//
// If requiresAuth is set and a token is present, a bearer Authorization
// header is attached; with no token the request proceeds unauthenticated
// and the backend rejects it. A body that is already url.Values is sent
// form-encoded regardless of the requested encoding. On a non-2xx status
// the normalized *Error is returned, never a partial result. On success
// out is only populated when the response declares a JSON content type.
func (c *Client) request(ctx context.Context, method, path string, opts requestOptions, out any) error {
	var (
		reader      io.Reader
		contentType string
	)

	if opts.body != nil {
		encoding := opts.encoding
		if _, isForm := opts.body.(url.Values); isForm {
			encoding = EncodingForm
		}
		switch encoding {
		case EncodingForm:
			values, ok := opts.body.(url.Values)
			if !ok {
				return errors.New(errors.ErrCodeAPIRequest, "form body must be url.Values")
			}
			reader = strings.NewReader(values.Encode())
			contentType = "application/x-www-form-urlencoded"
		default:
			payload, err := json.Marshal(opts.body)
			if err != nil {
				return errors.Wrap(errors.ErrCodeAPIRequest, "cannot encode request body", err)
			}
			reader = bytes.NewReader(payload)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPIRequest, "cannot build request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if opts.requiresAuth {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPIRequest, fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(resp)
		c.logger.Debug("api error", "method", method, "path", path,
			"status", resp.StatusCode, "detail", statusErr.Detail)
		return statusErr
	}

	if out == nil || !isJSON(resp.Header.Get("Content-Type")) {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewUnexpectedShapeError(path, err)
	}
	return nil
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

// ListPlayers fetches one market page.
func (c *Client) ListPlayers(ctx context.Context, skip, limit int) ([]Player, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var players []Player
	if err := c.request(ctx, http.MethodGet, "/players?"+q.Encode(), requestOptions{}, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// GetPlayer fetches a single player by id.
func (c *Client) GetPlayer(ctx context.Context, id int) (*Player, error) {
	var player Player
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/players/%d", id), requestOptions{}, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// GetTeam fetches the authenticated user's team.
func (c *Client) GetTeam(ctx context.Context) (*Team, error) {
	var team Team
	opts := requestOptions{requiresAuth: true}
	if err := c.request(ctx, http.MethodGet, "/team", opts, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// CreateTeam creates (or renames) the user's team.
func (c *Client) CreateTeam(ctx context.Context, name string) (*Team, error) {
	var team Team
	opts := requestOptions{body: createTeamRequest{Name: name}, requiresAuth: true}
	if err := c.request(ctx, http.MethodPost, "/team", opts, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// AddPlayers adds players to the team. The backend expects a list-shaped
// payload even for a single player.
func (c *Client) AddPlayers(ctx context.Context, ids []int) (*Team, error) {
	var team Team
	opts := requestOptions{body: ids, requiresAuth: true}
	if err := c.request(ctx, http.MethodPost, "/team/players", opts, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// RemovePlayer removes one player from the team by id.
func (c *Client) RemovePlayer(ctx context.Context, id int) error {
	opts := requestOptions{requiresAuth: true}
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/team/players/%d", id), opts, nil)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	var user User
	opts := requestOptions{body: registerRequest{Email: email, Password: password}}
	if err := c.request(ctx, http.MethodPost, "/auth/register", opts, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and returns the access token. The backend's login
// form expects url-encoded username/password fields.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token Token
	opts := requestOptions{body: form}
	if err := c.request(ctx, http.MethodPost, "/auth/login", opts, &token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}
