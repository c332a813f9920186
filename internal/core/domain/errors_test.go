package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrMissingAPIKey", ErrMissingAPIKey},
		{"ErrInvalidProvider", ErrInvalidProvider},
		{"ErrInvalidChunking", ErrInvalidChunking},
		{"ErrLLMUnavailable", ErrLLMUnavailable},
		{"ErrEmbeddingUnavailable", ErrEmbeddingUnavailable},
		{"ErrVectorStoreUnavailable", ErrVectorStoreUnavailable},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrDimensionMismatch", ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrMissingAPIKey,
		ErrInvalidProvider,
		ErrInvalidChunking,
		ErrLLMUnavailable,
		ErrEmbeddingUnavailable,
		ErrVectorStoreUnavailable,
		ErrRateLimited,
		ErrDimensionMismatch,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests error wrapping behavior
func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading settings: %w", ErrMissingAPIKey)

	assert.True(t, errors.Is(wrapped, ErrMissingAPIKey))
	assert.Contains(t, wrapped.Error(), "missing API key")
}

// TestErrors_ConfigurationErrors tests that configuration errors are
// identifiable as a group via errors.Is
func TestErrors_ConfigurationErrors(t *testing.T) {
	configErrors := []error{
		ErrMissingAPIKey,
		ErrInvalidProvider,
		ErrInvalidChunking,
	}

	for _, err := range configErrors {
		assert.NotNil(t, err)
		assert.True(t, errors.Is(err, err))
	}
}

// TestErrors_ServiceErrors tests service-availability errors
func TestErrors_ServiceErrors(t *testing.T) {
	serviceErrors := []error{
		ErrLLMUnavailable,
		ErrEmbeddingUnavailable,
		ErrVectorStoreUnavailable,
	}

	for _, err := range serviceErrors {
		assert.Contains(t, err.Error(), "unavailable",
			"Service error %v should mention unavailable", err)
	}
}
