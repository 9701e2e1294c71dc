// Package apiclient is the typed HTTP client for the course API. Every call
// returns its payload or an *APIError; mutating calls refuse to run without
// a bearer token.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"lms/dto"
)

const defaultTimeout = 15 * time.Second

// TokenSource supplies the bearer token of the current session.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token; the empty value means "signed out".
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", ErrNoToken
	}
	return string(t), nil
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

type Client struct {
	http   *resty.Client
	tokens TokenSource
	log    zerolog.Logger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithHTTPClient swaps the transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.http.BaseURL
		timeout := c.http.GetClient().Timeout
		c.http = resty.NewWithClient(hc).SetBaseURL(base).SetTimeout(timeout)
	}
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
		tokens: tokens,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type call struct {
	method     string
	path       string
	pathParams map[string]string
	body       interface{}
	auth       bool
	file       *dto.UploadFile
}

func (c *Client) request(ctx context.Context, cl call) (*resty.Request, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if cl.pathParams != nil {
		req.SetPathParams(cl.pathParams)
	}

	token, err := c.token(ctx)
	if cl.auth && err != nil {
		return nil, err
	}
	if token != "" {
		req.SetAuthToken(token)
	}

	if cl.file != nil {
		req.SetFileReader("file", cl.file.Name, cl.file.Content)
	} else if cl.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(cl.body)
	}
	return req, nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", ErrNoToken
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// do runs the call and decodes the envelope's data into out (when non-nil).
func (c *Client) do(ctx context.Context, cl call, out interface{}) error {
	req, err := c.request(ctx, cl)
	if err != nil {
		return err
	}

	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		c.log.Error().Err(err).Str("method", cl.method).Str("path", cl.path).Msg("request failed")
		return &APIError{Message: networkErrorMessage, Err: err}
	}

	c.log.Debug().
		Str("method", cl.method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("api call")

	if resp.IsError() {
		return newAPIError(resp.StatusCode(), resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := decode(resp.Body(), out); err != nil {
		return errors.Wrapf(err, "decode %s %s", cl.method, cl.path)
	}
	return nil
}

// decode accepts both enveloped ({status, message, data}) and bare bodies.
func decode(body []byte, out interface{}) error {
	var env dto.Envelope
	if err := json.Unmarshal(body, &env); err == nil {
		data := bytes.TrimSpace(env.Data)
		if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
			return json.Unmarshal(data, out)
		}
		if env.Message != "" {
			// enveloped response without data
			return nil
		}
	}
	return json.Unmarshal(body, out)
}
