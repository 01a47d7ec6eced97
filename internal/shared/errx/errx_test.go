package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessage(t *testing.T) {
	cause := errors.New("pq: password authentication failed for user portal")

	tests := []struct {
		err     error
		status  int
		message string
	}{
		{Authentication("Unauthorized"), http.StatusUnauthorized, "Unauthorized"},
		{Validation("Messages required"), http.StatusBadRequest, "Messages required"},
		{Upstream(cause), http.StatusInternalServerError, UpstreamErrorMessage},
		{Persistence(cause), http.StatusInternalServerError, SystemErrorMessage},
		{NotFound("no such account"), http.StatusNotFound, "no such account"},
		{RateLimited("slow down"), http.StatusTooManyRequests, "slow down"},
		{cause, http.StatusInternalServerError, SystemErrorMessage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusOf(tt.err))
		assert.Equal(t, tt.message, MessageOf(tt.err))
		assert.NotContains(t, MessageOf(tt.err), "password")
	}
}

func TestWrappingKeepsKindAndCause(t *testing.T) {
	cause := errors.New("timeout")
	err := fmt.Errorf("handle turn: %w", Upstream(cause))

	assert.True(t, IsKind(err, KindUpstream))
	assert.False(t, IsKind(err, KindPersistence))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
}
