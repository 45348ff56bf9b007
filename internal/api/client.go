// Package api implements the authenticated request pipeline: every call
// to the console backend goes through Dispatch, which attaches the
// bearer credential, sends the request, and normalizes the outcome into
// a typed result. It is the only place that reacts to session expiry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/accelleon/cloudmgmt/internal/ports"
	"github.com/accelleon/cloudmgmt/internal/session"
)

const (
	defaultTimeout   = 60 * time.Second
	maxResponseBytes = 1 << 20
)

type Config struct {
	// BaseURL is the API root, e.g. "http://10.0.0.5:8000/api/v1".
	BaseURL    string
	HTTPClient *http.Client
	Session    *session.Session
	// Notifier receives the session-expired side effects; nil disables
	// them (useful for non-interactive callers).
	Notifier ports.ExpiryNotifier
	Logger   zerolog.Logger
}

// Client dispatches logical request descriptors over HTTP. Safe for
// concurrent use; all in-flight requests share one Session.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	session    *session.Session
	notifier   ports.ExpiryNotifier
	log        zerolog.Logger

	// expiryMu serializes the 401 check-and-clear so a flood of
	// concurrent expiries notifies exactly once.
	expiryMu sync.Mutex
}

func New(cfg Config) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.Session == nil {
		return nil, errors.New("session is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &Client{
		base:       base,
		httpClient: httpClient,
		session:    cfg.Session,
		notifier:   notifier,
		log:        cfg.Logger,
	}, nil
}

// Dispatch sends the descriptor and returns immediately with the
// cancellation handle. The handle settles with the decoded status/body,
// a typed *Error, or ErrCancelled.
func (c *Client) Dispatch(ctx context.Context, desc Descriptor) *Call {
	callCtx, cancel := context.WithCancel(ctx)
	call := newCall(cancel)

	go c.run(callCtx, call, desc)

	return call
}

// do is the blocking form used by the typed service methods.
func (c *Client) do(ctx context.Context, desc Descriptor, out any) error {
	return c.Dispatch(ctx, desc).Into(out)
}

func (c *Client) run(ctx context.Context, call *Call, desc Descriptor) {
	defer call.cancel()

	req, authed, err := c.buildRequest(ctx, desc)
	if err != nil {
		call.settle(settlement{err: err})
		return
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)

	// A response that arrives after cancellation was requested is
	// discarded; cancelled is the outcome either way.
	if call.cancelled.Load() || ctx.Err() != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		call.settle(settlement{err: ErrCancelled})
		return
	}
	if err != nil {
		c.log.Debug().Str("method", desc.Method).Stringer("url", req.URL).Err(err).Msg("transport failure")
		call.settle(settlement{err: transportFailure(err)})
		return
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()

	c.log.Debug().
		Str("method", desc.Method).
		Stringer("url", req.URL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request")

	if call.cancelled.Load() {
		call.settle(settlement{err: ErrCancelled})
		return
	}
	if readErr != nil {
		call.settle(settlement{err: transportFailure(readErr)})
		return
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		call.settle(settlement{status: resp.StatusCode, body: body})
		return
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleAuthorityRevoked(ctx)
	}

	call.settle(settlement{
		status: resp.StatusCode,
		err:    classify(resp.StatusCode, desc.Errors, body, authed),
	})
}

func (c *Client) buildRequest(ctx context.Context, desc Descriptor) (*http.Request, bool, error) {
	u, err := desc.expandURL(c.base)
	if err != nil {
		return nil, false, fmt.Errorf("build request url: %w", err)
	}

	var bodyReader io.Reader
	if desc.Body != nil {
		payload, err := encodeBody(desc.Body)
		if err != nil {
			return nil, false, err
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, u.String(), bodyReader)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if desc.Body != nil {
		mediaType := desc.MediaType
		if mediaType == "" {
			mediaType = "application/json"
		}
		req.Header.Set("Content-Type", mediaType)
	}

	// The credential is attached only while the derived auth state says
	// the session is live; a stale or undecodable token is never sent.
	// authed also feeds classification later.
	authed := c.session.IsAuthenticated()
	if authed {
		if token, ok := c.session.CurrentToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, authed, nil
}

// handleAuthorityRevoked clears the session and fires the notify and
// redirect side effects, at most once per expiry: the first 401 clears
// the session under the lock, so every later one sees an
// unauthenticated session and skips the fan-out.
func (c *Client) handleAuthorityRevoked(ctx context.Context) {
	c.expiryMu.Lock()
	wasAuthenticated := c.session.IsAuthenticated()
	if wasAuthenticated {
		if err := c.session.Clear(ctx); err != nil {
			c.log.Error().Err(err).Msg("clear session after 401")
		}
	}
	c.expiryMu.Unlock()

	if wasAuthenticated {
		c.notifier.NotifySessionExpired()
		c.notifier.RedirectToLogin()
	}
}

func encodeBody(body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return payload, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("api base url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}
	return parsed, nil
}

type nopNotifier struct{}

func (nopNotifier) NotifySessionExpired() {}
func (nopNotifier) RedirectToLogin()      {}
