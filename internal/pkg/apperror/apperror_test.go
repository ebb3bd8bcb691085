package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedSentinelMatches(t *testing.T) {
	sentinel := New(http.StatusBadRequest, "Invalid mobile number")
	wrapped := fmt.Errorf("submit: %w", Wrap(errors.New("regex mismatch"), http.StatusBadRequest, "Invalid mobile number"))

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, New(http.StatusBadRequest, "Invalid date format"))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(New(http.StatusNotFound, "booking not found"), http.StatusInternalServerError))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("disk full"), http.StatusInternalServerError))
}
