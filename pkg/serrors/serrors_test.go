package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"pubapis/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
		serrors.ErrUpstream,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "could not find city: %s", "Atlantis")
	require.Equal(t, "could not find city: Atlantis", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "cat api")
	require.Equal(t, "cat api: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrRateLimited)
	require.Equal(t, "RATE_LIMITED", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrTimeout)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUpstream, base, "bad body")
	require.Equal(t, serrors.ErrUpstream, e.Kind())
	require.Equal(t, "bad body", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("fetching prices: %w", serrors.With(serrors.ErrRateLimited, "slow down"))
	require.Equal(t, serrors.ErrRateLimited, serrors.KindOf(wrapped))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
}

func TestForStatus(t *testing.T) {
	cases := map[int]serrors.Kind{
		http.StatusOK:                  nil,
		http.StatusNoContent:           nil,
		http.StatusNotFound:            serrors.ErrNotFound,
		http.StatusTooManyRequests:     serrors.ErrRateLimited,
		http.StatusGatewayTimeout:      serrors.ErrTimeout,
		http.StatusServiceUnavailable:  serrors.ErrUnavailable,
		http.StatusBadRequest:          serrors.ErrBadRequest,
		http.StatusInternalServerError: serrors.ErrUpstream,
		http.StatusForbidden:           serrors.ErrUpstream,
	}
	for code, want := range cases {
		require.Equal(t, want, serrors.ForStatus(code), "status %d", code)
	}
}

func TestFromTransport(t *testing.T) {
	require.NoError(t, serrors.FromTransport(nil, "x"))

	err := serrors.FromTransport(context.DeadlineExceeded, "dog api")
	require.ErrorIs(t, err, serrors.ErrTimeout)

	err = serrors.FromTransport(fmt.Errorf("dial: %w", timeoutError{}), "dog api")
	require.ErrorIs(t, err, serrors.ErrTimeout)

	err = serrors.FromTransport(errors.New("no such host"), "dog api")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "dog api")

	err = serrors.FromTransport(context.Canceled, "dog api")
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, serrors.KindOf(err))
}
