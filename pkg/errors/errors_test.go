package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsCodeAndStatus(t *testing.T) {
	clone := Clone(ErrValidation, "month must be between 1 and 12")

	assert.Equal(t, "VALIDATION_ERROR", clone.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, clone.Status)
	assert.Equal(t, "month must be between 1 and 12", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
}

func TestIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", Clone(ErrReportNotFound, "unknown report"))

	assert.True(t, errors.Is(wrapped, ErrReportNotFound))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(errors.New("boom"))

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Nil(t, FromError(nil))
}

func TestStoreWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store(cause, "failed to resolve report")

	assert.Equal(t, ErrStore.Code, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
