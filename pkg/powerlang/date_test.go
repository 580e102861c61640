package powerlang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestEncodeDate_After2000 tests the "1" century prefix
func TestEncodeDate_After2000(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1240305", EncodeDate(d))
}

// TestEncodeDate_Before2000 tests the "0" century prefix
func TestEncodeDate_Before2000(t *testing.T) {
	d := time.Date(1998, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "0980305", EncodeDate(d))
}

// TestEncodeDate_ZeroPadding tests two-digit padding of all fields
func TestEncodeDate_ZeroPadding(t *testing.T) {
	d := time.Date(2001, 1, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1010109", EncodeDate(d))
}

// TestCleanName tests variable name cleanup
func TestCleanName(t *testing.T) {
	assert.Equal(t, "JnBarExit", CleanName(" JnBarExit "))
	assert.Equal(t, "stop_loss", CleanName("stop loss"))
}
