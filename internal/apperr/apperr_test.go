package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Validation, KindOf(New(Validation, "bad input")))
	assert.Equal(t, Upload, KindOf(Wrap(Upload, "upload failed", errors.New("boom"))))

	wrapped := fmt.Errorf("handler: %w", New(NotAuthenticated, "sign in"))
	assert.Equal(t, NotAuthenticated, KindOf(wrapped))

	assert.Equal(t, Kind(0), KindOf(errors.New("untyped")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestWrapKeepsCauseForUnwrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(Persistence, "Failed to create pickup request", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to create pickup request: connection reset", err.Error())
}

func TestWrapNilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(Persistence, "never happens", nil))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Please select a waste type",
		UserMessage(New(Validation, "Please select a waste type")))

	assert.Equal(t, "Upload failed: timeout",
		UserMessage(Wrap(Upload, "Upload failed", errors.New("timeout"))))

	assert.Equal(t, "Something went wrong. Please try again.",
		UserMessage(errors.New("raw driver error")))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Upload, http.StatusBadRequest},
		{NotAuthenticated, http.StatusUnauthorized},
		{Persistence, http.StatusInternalServerError},
		{Configuration, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(New(tc.kind, "x")))
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("untyped")))
}
