// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sanity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liveQueryURL = `=~^https://abc123\.api\.sanity\.io/v2024-01-01/data/query/production`

// newMockedClient returns a client whose transport is an httpmock transport.
func newMockedClient(t *testing.T, opts Options) (*Client, *httpmock.MockTransport) {
	t.Helper()

	mt := httpmock.NewMockTransport()
	if opts.ProjectID == "" {
		opts.ProjectID = "abc123"
	}
	if opts.Dataset == "" {
		opts.Dataset = "production"
	}
	opts.HTTPClient = &http.Client{Transport: mt}

	c, err := New(opts)
	require.NoError(t, err)
	return c, mt
}

func TestNew_RequiresIdentity(t *testing.T) {
	_, err := New(Options{Dataset: "production"})
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = New(Options{ProjectID: "abc123"})
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = New(Options{ProjectID: "  ", Dataset: "production"})
	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{ProjectID: "abc123", Dataset: "production"})
	require.NoError(t, err)

	assert.Equal(t, Identity{ProjectID: "abc123", Dataset: "production"}, c.Identity())
	assert.False(t, c.UsesCDN())
	assert.Equal(t, defaultTimeout, c.HTTPClient().Timeout)
}

func TestQueryURL(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantHost string
	}{
		{"live api", Options{ProjectID: "abc123", Dataset: "production"}, "abc123.api.sanity.io"},
		{"cdn", Options{ProjectID: "abc123", Dataset: "production", UseCDN: true}, "abc123.apicdn.sanity.io"},
		{"override", Options{ProjectID: "abc123", Dataset: "production", BaseURL: "http://localhost:9999/"}, "localhost:9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts)
			require.NoError(t, err)

			raw, err := c.QueryURL(`*[_type == "faq"]`, map[string]any{"slug": "front-door"})
			require.NoError(t, err)

			u, err := url.Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, u.Host)
			assert.Equal(t, "/v2024-01-01/data/query/production", u.Path)
			assert.Equal(t, `*[_type == "faq"]`, u.Query().Get("query"))
			assert.Equal(t, `"front-door"`, u.Query().Get("$slug"))
		})
	}
}

func TestQueryURL_StableParamOrder(t *testing.T) {
	c, err := New(Options{ProjectID: "abc123", Dataset: "production"})
	require.NoError(t, err)

	params := map[string]any{"b": 2, "a": "x", "c": true}
	first, err := c.QueryURL("*", params)
	require.NoError(t, err)
	for range 10 {
		again, err := c.QueryURL("*", params)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQueryURL_AcceptsDollarPrefixedParams(t *testing.T) {
	c, err := New(Options{ProjectID: "abc123", Dataset: "production"})
	require.NoError(t, err)

	raw, err := c.QueryURL("*", map[string]any{"$slug": "x"})
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, `"x"`, u.Query().Get("$slug"))
}

func TestFetch_Success(t *testing.T) {
	c, mt := newMockedClient(t, Options{})

	mt.RegisterResponder(http.MethodGet, liveQueryURL,
		httpmock.NewStringResponder(http.StatusOK, `{"ms":3,"query":"*","result":[{"question":"Q1"},{"question":"Q2"}]}`))

	var got []struct {
		Question string `json:"question"`
	}
	err := c.Fetch(context.Background(), `*[_type == "faq"]`, nil, &got)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Q1", got[0].Question)
	assert.Equal(t, 1, mt.GetTotalCallCount())
}

func TestFetch_NullResult(t *testing.T) {
	c, mt := newMockedClient(t, Options{})
	mt.RegisterResponder(http.MethodGet, liveQueryURL,
		httpmock.NewStringResponder(http.StatusOK, `{"ms":1,"result":null}`))

	var got *struct{ Title string }
	require.NoError(t, c.Fetch(context.Background(), "*[0]", nil, &got))
	assert.Nil(t, got)
}

func TestFetch_MissingResultMember(t *testing.T) {
	c, mt := newMockedClient(t, Options{})
	mt.RegisterResponder(http.MethodGet, liveQueryURL,
		httpmock.NewStringResponder(http.StatusOK, `{"ms":1}`))

	raw, err := c.FetchRaw(context.Background(), "*", nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestFetch_SendsTokenAndParams(t *testing.T) {
	c, mt := newMockedClient(t, Options{Token: "sk-read"})

	var gotAuth, gotSlug string
	mt.RegisterResponder(http.MethodGet, liveQueryURL,
		func(req *http.Request) (*http.Response, error) {
			gotAuth = req.Header.Get("Authorization")
			gotSlug = req.URL.Query().Get("$slug")
			return httpmock.NewStringResponse(http.StatusOK, `{"result":null}`), nil
		})

	var dest any
	require.NoError(t, c.Fetch(context.Background(), "*[slug.current == $slug][0]", map[string]any{"slug": "oak"}, &dest))
	assert.Equal(t, "Bearer sk-read", gotAuth)
	assert.Equal(t, `"oak"`, gotSlug)
}

func TestFetch_NoTokenNoAuthHeader(t *testing.T) {
	c, mt := newMockedClient(t, Options{})

	var gotAuth string
	mt.RegisterResponder(http.MethodGet, liveQueryURL,
		func(req *http.Request) (*http.Response, error) {
			gotAuth = req.Header.Get("Authorization")
			return httpmock.NewStringResponse(http.StatusOK, `{"result":[]}`), nil
		})

	var dest []any
	require.NoError(t, c.Fetch(context.Background(), "*", nil, &dest))
	assert.Empty(t, gotAuth)
}

func TestFetch_APIError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantDesc string
	}{
		{"structured description", http.StatusBadRequest, `{"error":{"description":"expected '}' following object body","type":"queryParseError"}}`, "expected '}' following object body"},
		{"structured message", http.StatusUnauthorized, `{"error":{"message":"Unauthorized - Session not found"}}`, "Unauthorized - Session not found"},
		{"top-level message", http.StatusNotFound, `{"message":"Project not found"}`, "Project not found"},
		{"plain body", http.StatusBadGateway, `upstream unavailable`, "upstream unavailable"},
		{"empty body", http.StatusServiceUnavailable, ``, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mt := newMockedClient(t, Options{})
			mt.RegisterResponder(http.MethodGet, liveQueryURL, httpmock.NewStringResponder(tt.status, tt.body))

			var dest any
			err := c.Fetch(context.Background(), "*", nil, &dest)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDesc, apiErr.Description)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, IsNotFound(&APIError{StatusCode: http.StatusBadRequest}))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestFetch_TransportError(t *testing.T) {
	c, mt := newMockedClient(t, Options{})
	mt.RegisterResponder(http.MethodGet, liveQueryURL, httpmock.NewErrorResponder(errors.New("connection refused")))

	var dest any
	err := c.Fetch(context.Background(), "*", nil, &dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFetch_InvalidJSON(t *testing.T) {
	c, mt := newMockedClient(t, Options{})
	mt.RegisterResponder(http.MethodGet, liveQueryURL, httpmock.NewStringResponder(http.StatusOK, `{invalid`))

	var dest any
	require.Error(t, c.Fetch(context.Background(), "*", nil, &dest))
}

func TestFetch_ResultTypeMismatch(t *testing.T) {
	c, mt := newMockedClient(t, Options{})
	mt.RegisterResponder(http.MethodGet, liveQueryURL, httpmock.NewStringResponder(http.StatusOK, `{"result":{"a":1}}`))

	var dest []string
	err := c.Fetch(context.Background(), "*", nil, &dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sanity decode result")
}

func TestFetch_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c, err := New(Options{ProjectID: "abc123", Dataset: "production", BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var dest any
	err = c.Fetch(ctx, "*", nil, &dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetch_AgainstHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2024-01-01/data/query/staging", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"phone":"555-0100"}}`))
	}))
	defer srv.Close()

	c, err := New(Options{ProjectID: "abc123", Dataset: "staging", APIVersion: "v2024-01-01", BaseURL: srv.URL})
	require.NoError(t, err)

	var got struct {
		Phone string `json:"phone"`
	}
	require.NoError(t, c.Fetch(context.Background(), "*[0]", nil, &got))
	assert.Equal(t, "555-0100", got.Phone)
}
