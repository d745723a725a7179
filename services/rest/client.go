// Package rest implements the domain API ports over the university backend's
// REST endpoints. All outbound traffic funnels through Client, which owns
// request construction, the credentialed cookie jar and uniform error
// translation. It never retries and never caches.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/campusdesk/campusdesk/core"
)

const requestTimeout = 30 * time.Second

type Client struct {
	base   *url.URL
	http   *http.Client
	logger core.Logger
}

func NewClient(conf *core.Config, logger core.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(conf.APIBaseURL, "/"))
	if err != nil {
		return nil, &core.ConfigError{Err: errors.Wrapf(err, "parsing API base URL %q", conf.APIBaseURL)}
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, &core.ConfigError{Err: err}
	}
	return &Client{
		base:   base,
		http:   &http.Client{Jar: jar, Timeout: requestTimeout},
		logger: logger,
	}, nil
}

// Do performs one request and decodes the JSON response into out (when
// non-nil). Failures are translated into exactly one of core.ConfigError
// (malformed before send), core.NetworkError (no response) or core.HTTPError
// (non-2xx response).
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	u, err := c.base.Parse(c.base.Path + path)
	if err != nil {
		return &core.ConfigError{Err: errors.Wrapf(err, "building URL for %s", path)}
	}

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &core.ConfigError{Err: errors.Wrap(err, "encoding request body")}
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), buf)
	if err != nil {
		return &core.ConfigError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.New().String()
	req.Header.Set("X-Request-ID", reqID)

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(fmt.Sprintf("%s %s [%s]: no response: %v", method, path, reqID, err))
		return &core.NetworkError{Err: err}
	}
	//goland:noinspection GoUnhandledErrorResult
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &core.NetworkError{Err: errors.Wrap(err, "reading response body")}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &core.HTTPError{Status: res.StatusCode, Message: extractMessage(data, res.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}

// SessionCookie returns the named cookie currently held for the API host, or
// "" when absent.
func (c *Client) SessionCookie(name string) string {
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

// extractMessage digs a human-readable message out of an error response body,
// falling back to the generic status text.
func extractMessage(data []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return http.StatusText(status)
}
