package dogceo_test

import (
	"context"
	"io"
	"net/http"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/pets/dogceo"
	"pubapis/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *dogceo.Client {
	t.Helper()
	api, err := apiclient.New(apiclient.Options{HTTPClient: &http.Client{Transport: fn}})
	require.NoError(t, err)

	return dogceo.New(api, dogceo.Options{})
}

func body(code int, s string) *http.Response {
	return &http.Response{StatusCode: code, Header: http.Header{}, Body: io.NopCloser(strings.NewReader(s))}
}

func TestClient_RandomImage(t *testing.T) {
	const img = "https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg"
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "dog.ceo", r.URL.Host)
		require.Equal(t, "/api/breeds/image/random", r.URL.Path)

		return body(http.StatusOK, `{"message":"`+img+`","status":"success"}`), nil
	})

	got, err := c.RandomImage(context.Background())
	require.NoError(t, err)
	require.Equal(t, img, got)
}

func TestClient_RandomImage_errorStatusField(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return body(http.StatusOK, `{"message":"Breed not found","status":"error"}`), nil
	})

	_, err := c.RandomImage(context.Background())
	require.ErrorIs(t, err, serrors.ErrUpstream)
}

func TestClient_RandomImage_non2xx(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return body(http.StatusBadGateway, `bad gateway`), nil
	})

	got, err := c.RandomImage(context.Background())
	require.Error(t, err)
	require.Empty(t, got)
}

func TestClient_RandomFact(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "dogapi.dog", r.URL.Host)
		require.Equal(t, "/api/v2/facts", r.URL.Path)

		return body(http.StatusOK, `{"data":[{"id":"1","type":"fact","attributes":{"body":"Dogs have three eyelids."}}]}`), nil
	})

	got, err := c.RandomFact(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Dogs have three eyelids.", got)
}

func TestClient_RandomFact_empty(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return body(http.StatusOK, `{"data":[]}`), nil
	})

	_, err := c.RandomFact(context.Background())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
