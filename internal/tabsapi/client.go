// Package tabsapi is the HTTP client for the remote tabs collection exposed at
// /api/tabs. It supports list, create and delete; there is no update.
package tabsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/oops"
)

const collectionPath = "/api/tabs"

var (
	// ErrUnexpectedStatus is wrapped by every error caused by a non-2xx response.
	ErrUnexpectedStatus = errors.New("tabsapi: unexpected status")
	// ErrMissingID is wrapped when the server answers with a tab that has no id.
	ErrMissingID = errors.New("tabsapi: tab without id")
)

// Tab is one dashboard content panel as stored by the remote resource.
type Tab struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type listResponse struct {
	Tabs []Tab `json:"tabs"`
}

// Client talks to the remote tabs resource.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL (scheme and host, optionally a path prefix)
// whose requests give up after timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"), http: hc}
}

// BaseURL returns the normalised base the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// List returns the current tabs in server order. A body without a tabs field
// yields an empty list; any entry without an id fails the whole list.
func (c *Client) List(ctx context.Context) ([]Tab, error) {
	var out listResponse
	if err := c.do(ctx, http.MethodGet, collectionPath, nil, &out); err != nil {
		return nil, err
	}
	for i, t := range out.Tabs {
		if t.ID == "" {
			return nil, missingID(http.MethodGet, collectionPath).
				With("index", i).
				Wrapf(ErrMissingID, "GET %s: entry %d", collectionPath, i)
		}
	}
	if out.Tabs == nil {
		return []Tab{}, nil
	}
	return out.Tabs, nil
}

// Create posts tab and returns the canonical tab the server sent back.
func (c *Client) Create(ctx context.Context, tab Tab) (Tab, error) {
	var saved Tab
	if err := c.do(ctx, http.MethodPost, collectionPath, tab, &saved); err != nil {
		return Tab{}, err
	}
	if saved.ID == "" {
		return Tab{}, missingID(http.MethodPost, collectionPath).
			With("candidate_id", tab.ID).
			Wrapf(ErrMissingID, "POST %s", collectionPath)
	}
	return saved, nil
}

func missingID(method, path string) oops.OopsErrorBuilder {
	return oops.In("tabsapi").
		With("method", method).
		With("path", path).
		Hint("server returned a tab without an id")
}

// Delete removes the tab with id. Only the status code is inspected.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, collectionPath+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	builder := oops.In("tabsapi").
		With("method", method).
		With("path", path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return builder.Wrapf(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return builder.Wrapf(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return builder.Hint("is the dashboard API reachable?").Wrapf(err, "%s %s", method, path)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return builder.
			With("status", res.StatusCode).
			Wrapf(ErrUnexpectedStatus, "%s %s: %s", method, path, res.Status)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return builder.
			With("status", res.StatusCode).
			Hint("response was not a JSON document").
			Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}
