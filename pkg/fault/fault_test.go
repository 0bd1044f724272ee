package fault

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestConstructorsCarryKindAndMessage(t *testing.T) {
	cases := []struct {
		err    *Fault
		kind   Kind
		status int
		code   codes.Code
	}{
		{InvalidInput("bad"), KindInvalidInput, http.StatusBadRequest, codes.InvalidArgument},
		{NotFound("missing"), KindNotFound, http.StatusNotFound, codes.NotFound},
		{Conflict("dup"), KindConflict, http.StatusConflict, codes.AlreadyExists},
		{Internal("boom"), KindInternal, http.StatusInternalServerError, codes.Internal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.err.Kind())
		assert.Equal(t, tc.status, tc.err.StatusCode())
		assert.Equal(t, tc.code, tc.err.GRPCCode())
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("failed to save order", WithCause(cause))

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save order")
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NotFound("customer not found"))

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindInvalidInput))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestFromWrapsUnknownErrorsAsInternal(t *testing.T) {
	plain := errors.New("connection reset")

	appErr := From(plain)
	assert.Equal(t, KindInternal, appErr.Kind())
	require.ErrorIs(t, appErr, plain)

	typed := NotFound("product not found")
	assert.Same(t, typed, From(typed))
}
