package transmission

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/jfxdev/go-transmission/rpc"
)

// New creates a Client for the daemon described by config.
func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}

	endpoint := config.ProxyURLPrefix + config.BaseURL
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, errors.Wrap(err, "invalid endpoint URL")
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: config.RequestTimeout}
	}

	return &Client{
		config:   config,
		client:   client,
		endpoint: endpoint,
	}, nil
}

// Close releases idle connections. It is safe to call more than once.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// newRequest builds the envelope for a call, attaching a correlation tag
// when the client is configured to tag requests.
func (c *Client) newRequest(method string, opts ...rpc.RequestOption) *rpc.Request {
	if c.config.TagRequests {
		opts = append(opts, rpc.WithTag(uuid.NewString()))
	}
	return rpc.NewRequest(method, opts...)
}

// do sends a request through the session pipeline: attach the current
// session identifier, post, and on a 409 adopt the replacement identifier
// and resend the same payload exactly once. A second 409 is surfaced as a
// SessionConflictError instead of retrying again.
func (c *Client) do(ctx context.Context, req *rpc.Request) (*rpc.Response, error) {
	payload, err := rpc.Encode(req)
	if err != nil {
		return nil, err
	}

	token := c.currentSession()
	body, status, replacement, err := c.post(ctx, payload, token)
	if err != nil {
		return nil, err
	}

	if status == http.StatusConflict {
		token = c.adoptSession(token, replacement)
		if c.config.Verbose {
			log.Printf("transmission: stale session id on %s, resending", req.Method)
		}
		body, status, _, err = c.post(ctx, payload, token)
		if err != nil {
			return nil, err
		}
		if status == http.StatusConflict {
			return nil, &SessionConflictError{Method: req.Method}
		}
	}

	if status != http.StatusOK {
		return nil, classifyHTTPStatusCode(status, string(body))
	}

	resp, err := rpc.Decode(body)
	if err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	if c.config.Verbose {
		log.Printf("transmission: %s -> %s", req.Method, resp.Result)
		if req.Tag != "" && resp.Tag != "" && resp.Tag != req.Tag {
			log.Printf("transmission: tag mismatch on %s: sent %q, got %q", req.Method, req.Tag, resp.Tag)
		}
	}

	return resp, nil
}

// post performs one HTTP exchange. Transport failures propagate unmodified;
// the returned replacement is the session header of the response, which is
// only meaningful on a 409.
func (c *Client) post(ctx context.Context, payload []byte, token string) (body []byte, status int, replacement string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, "", errors.Wrap(err, "building HTTP request")
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(SessionHeader, token)
	}
	if c.config.Username != "" || c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, "", err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, "", errors.Wrap(err, "reading response body")
	}

	return body, resp.StatusCode, resp.Header.Get(SessionHeader), nil
}

// currentSession returns the session identifier to attach, or empty before
// the first 409 has been observed.
func (c *Client) currentSession() string {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.sessionID
}

// adoptSession records the replacement identifier announced by a 409 and
// returns the identifier to resend with. sent is the identifier the failed
// request carried: when it no longer matches the stored one, another call
// already recovered this staleness episode and its identifier wins. A
// replacement equal to the stored identifier (server re-announcing rather
// than rotating) is a no-op.
func (c *Client) adoptSession(sent, replacement string) string {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	if c.sessionID != sent {
		return c.sessionID
	}
	if replacement != "" && replacement != c.sessionID {
		if c.config.Verbose {
			log.Printf("transmission: session id rotated")
		}
		c.sessionID = replacement
	}
	return c.sessionID
}
