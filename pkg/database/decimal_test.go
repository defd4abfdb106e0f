package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareDecimal(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"10", "10.00", 0},
		{"9.99", "10", -1},
		{"90071992547409930.02", "90071992547409930.01", 1},
		{"90071992547409930.01", "90071992547409930.02", -1},
	}
	for _, tt := range tests {
		got, err := CompareDecimal(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.a, tt.b)
	}

	_, err := CompareDecimal("abc", "1")
	assert.Error(t, err)
}
