package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseError_MessageFormat tests the user-facing error text
func TestParseError_MessageFormat(t *testing.T) {
	err := NewDateParseError("dates", "31/31/2021", fmt.Errorf("month 31 out of range"))
	assert.Contains(t, err.Error(), "DATE_PARSE")
	assert.Contains(t, err.Error(), `"31/31/2021"`)
	assert.Contains(t, err.Diagnostic(), "31/31/2021")
	assert.NotContains(t, err.Diagnostic(), "DATE_PARSE")
}

// TestParseError_KindHelpers tests IsKind and KindOf
func TestParseError_KindHelpers(t *testing.T) {
	err := NewEmptyInputError("tabular")
	assert.True(t, IsKind(err, KindEmptyInput))
	assert.False(t, IsKind(err, KindNoDataRows))
	assert.Equal(t, KindEmptyInput, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(fmt.Errorf("plain")))
}

// TestParseError_Unwrap tests underlying error exposure
func TestParseError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("boom")
	err := NewDateParseError("dates", "x", underlying)
	assert.Equal(t, underlying, err.Unwrap())
}
