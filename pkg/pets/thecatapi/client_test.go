package thecatapi_test

import (
	"context"
	"io"
	"net/http"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/pets/thecatapi"
	"pubapis/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *thecatapi.Client {
	t.Helper()
	api, err := apiclient.New(apiclient.Options{HTTPClient: &http.Client{Transport: fn}})
	require.NoError(t, err)

	return thecatapi.New(api, thecatapi.Options{})
}

func body(code int, s string) *http.Response {
	return &http.Response{StatusCode: code, Header: http.Header{}, Body: io.NopCloser(strings.NewReader(s))}
}

func TestClient_RandomImage_success(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "api.thecatapi.com", r.URL.Host)
		require.Equal(t, "/v1/images/search", r.URL.Path)

		return body(http.StatusOK, `[{"id":"b1","url":"x","width":500,"height":375}]`), nil
	})

	got, err := c.RandomImage(context.Background())
	require.NoError(t, err)
	require.Equal(t, "x", got)
}

func TestClient_RandomImage_empty(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return body(http.StatusOK, `[]`), nil
	})

	_, err := c.RandomImage(context.Background())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_RandomImage_serverError(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return body(http.StatusInternalServerError, `oops`), nil
	})

	got, err := c.RandomImage(context.Background())
	require.Error(t, err)
	require.Empty(t, got)
	require.Contains(t, err.Error(), "status 500")
}

func TestClient_RandomFact(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "catfact.ninja", r.URL.Host)
		require.Equal(t, "/fact", r.URL.Path)

		return body(http.StatusOK, `{"fact":"Cats have five toes on their front paws.","length":40}`), nil
	})

	got, err := c.RandomFact(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Cats have five toes on their front paws.", got)
}

func TestClient_RandomFact_customEndpoint(t *testing.T) {
	api, err := apiclient.New(apiclient.Options{HTTPClient: &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "mirror.local", r.URL.Host)

		return body(http.StatusOK, `{"fact":""}`), nil
	})}})
	require.NoError(t, err)
	c := thecatapi.New(api, thecatapi.Options{FactURL: "http://mirror.local/fact"})

	_, err = c.RandomFact(context.Background())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
