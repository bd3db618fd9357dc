package Requests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// StatusError is a response outside the 2xx range. The body has already been
// read and is kept for the caller.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.Code)
}

// Client is a thin wrapper over http.Client for byte and JSON payloads.
type Client struct {
	hc  *http.Client
	log *zap.Logger
}

// New Client with the given per-request timeout. A nil logger disables
// logging.
func New(timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{hc: &http.Client{Timeout: timeout}, log: log}
}

// Get the body at url.
func (u *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return u.do(req)
}

// GetJSON decodes the body at url into out.
func (u *Client) GetJSON(ctx context.Context, url string, out any) error {
	b, err := u.Get(ctx, url)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// PostJSON sends in as a JSON body and, when out isn't nil and the response
// has a body, decodes the response into out.
func (u *Client) PostJSON(ctx context.Context, url string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	body, err := u.do(req)
	if err != nil || out == nil || len(body) == 0 {
		return err
	}
	return json.Unmarshal(body, out)
}

func (u *Client) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := u.hc.Do(req)
	if err != nil {
		u.log.Warn("request failed", zap.String("url", req.URL.String()), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	u.log.Debug("request done",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}
	return body, nil
}
