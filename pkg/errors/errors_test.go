package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeSurvivesWrapping(t *testing.T) {
	err := InvalidPatient("42")
	wrapped := fmt.Errorf("creating appointment: %w", err)

	assert.True(t, Is(wrapped, ErrInvalidPatient))
	assert.False(t, Is(wrapped, ErrNotFound))
	assert.Equal(t, ErrInvalidPatient, CodeOf(wrapped))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, ErrStorage, CodeOf(fmt.Errorf("boom")))
}
