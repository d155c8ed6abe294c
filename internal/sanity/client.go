// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sanity is a read-only client for the hosted content store. It sends
// GROQ projection queries to the HTTP query endpoint and decodes the result
// envelope into caller-supplied values. It also understands the store's image
// asset references so callers can build CDN URLs without another round-trip.
package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultAPIVersion is the dated API version used when none is configured.
	DefaultAPIVersion = "2024-01-01"

	defaultTimeout = 15 * time.Second
)

// ErrMissingIdentity is returned by New when the project id or dataset is empty.
var ErrMissingIdentity = errors.New("sanity: project id and dataset are required")

// Fetcher executes a projection query and decodes its result into dest.
// Query functions depend on this interface so tests can substitute a fake.
type Fetcher interface {
	Fetch(ctx context.Context, query string, params map[string]any, dest any) error
}

// Identity names the project and dataset a client reads from.
type Identity struct {
	ProjectID string
	Dataset   string
}

// Options configures a Client.
type Options struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string // optional, sent as a bearer token
	UseCDN     bool   // read through the API CDN instead of the live API

	// BaseURL replaces the scheme and host derived from ProjectID/UseCDN.
	// Used by tests and when running behind a proxy.
	BaseURL string

	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a handle to one project/dataset pair. It holds no mutable state
// and is safe for concurrent use.
type Client struct {
	identity   Identity
	apiVersion string
	token      string
	useCDN     bool
	baseURL    string
	http       *http.Client
}

// New creates a content client. It fails fast when the identity is incomplete.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.ProjectID) == "" || strings.TrimSpace(opts.Dataset) == "" {
		return nil, ErrMissingIdentity
	}

	if opts.APIVersion == "" {
		opts.APIVersion = DefaultAPIVersion
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		host := "api.sanity.io"
		if opts.UseCDN {
			host = "apicdn.sanity.io"
		}
		baseURL = fmt.Sprintf("https://%s.%s", opts.ProjectID, host)
	}

	return &Client{
		identity:   Identity{ProjectID: opts.ProjectID, Dataset: opts.Dataset},
		apiVersion: strings.TrimPrefix(opts.APIVersion, "v"),
		token:      opts.Token,
		useCDN:     opts.UseCDN,
		baseURL:    baseURL,
		http:       httpClient,
	}, nil
}

// Identity returns the project and dataset this client reads from.
func (c *Client) Identity() Identity { return c.identity }

// UsesCDN reports whether the client reads through the API CDN.
func (c *Client) UsesCDN() bool { return c.useCDN }

// HTTPClient exposes the underlying transport client.
func (c *Client) HTTPClient() *http.Client { return c.http }

// QueryURL builds the GET URL for a query. Parameters are encoded as
// $name=<json value>, which is how the query endpoint expects them.
func (c *Client) QueryURL(query string, params map[string]any) (string, error) {
	values := url.Values{}
	values.Set("query", query)

	// Sorted for stable URLs (and stable cache keys downstream).
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		encoded, err := json.Marshal(params[name])
		if err != nil {
			return "", fmt.Errorf("sanity encode param %s: %w", name, err)
		}
		values.Set("$"+strings.TrimPrefix(name, "$"), string(encoded))
	}

	return fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.baseURL, c.apiVersion, url.PathEscape(c.identity.Dataset), values.Encode()), nil
}

// Fetch runs a query and decodes the "result" member of the response into
// dest. A missing document decodes as JSON null.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, dest any) error {
	raw, err := c.FetchRaw(ctx, query, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("sanity decode result: %w", err)
	}
	return nil
}

// FetchRaw runs a query and returns the undecoded "result" JSON.
func (c *Client) FetchRaw(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	endpoint, err := c.QueryURL(query, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sanity request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sanity http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sanity read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("sanity unmarshal: %w", err)
	}
	if len(envelope.Result) == 0 {
		return json.RawMessage("null"), nil
	}
	return envelope.Result, nil
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}
