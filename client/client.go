package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avezina/inkwell/domain"
)

const (
	sessionTokenKey = "session_token"

	defaultHTTPTimeout = 15 * time.Second
)

// Client talks to the content API. It carries the admin session token and
// attaches it as a bearer header once logged in.
type Client struct {
	baseURL string
	http    *http.Client
	store   Store

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithStore sets the persistence for the session token.
func WithStore(s Store) Option {
	return func(c *Client) { c.store = s }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultHTTPTimeout},
		store:   NewMemStore(),
	}
	for _, opt := range opts {
		opt(c)
	}

	// resume a persisted session if one exists
	if token, err := c.store.Load(sessionTokenKey); err == nil && token != "" {
		c.token = token
	}

	return c
}

// apiError is the error payload of the content API.
type apiError struct {
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

// getPaged also returns the next-page cursor from the X-Cursor header.
func (c *Client) getPaged(ctx context.Context, path string, query url.Values, out any) (string, error) {
	header, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	if err != nil {
		return "", err
	}
	return header.Get("X-Cursor"), nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, in, out)
	return err
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, in, out)
	return err
}

func (c *Client) delete(ctx context.Context, path string, in any) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, in, nil)
	return err
}

// do runs one request against the API. A 401 clears the stored session
// before reporting the error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) (http.Header, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, c.asError(res)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode response of %s %s: %w", method, path, err)
		}
	}
	return res.Header, nil
}

// asError maps an API failure onto the domain sentinels.
func (c *Client) asError(res *http.Response) error {
	var payload apiError
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		payload.Message = res.Status
	}

	switch res.StatusCode {
	case http.StatusUnauthorized:
		// the session is dead, drop the token so the caller can re-login
		c.clearToken()
		return fmt.Errorf("%s: %w", payload.Message, domain.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", payload.Message, domain.ErrForbidden)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", payload.Message, domain.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", payload.Message, domain.ErrConflict)
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", payload.Message, domain.ErrBadParamInput)
	default:
		return fmt.Errorf("%s: %w", payload.Message, domain.ErrInternalServerError)
	}
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if err := c.store.Save(sessionTokenKey, token); err != nil {
		logrus.Warnf("failed to persist session token: %v", err)
	}
}

func (c *Client) clearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if err := c.store.Delete(sessionTokenKey); err != nil {
		logrus.Warnf("failed to drop persisted session token: %v", err)
	}
}

// uploadFile sends one file as a multipart form request.
func (c *Client) uploadFile(ctx context.Context, path, field, fileName string, data []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, fileName)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return c.asError(res)
	}
	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}
