package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in     float64
		expect string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.567, "$1,234.57"},
		{25088.25, "$25,088.25"},
		{-260, "-$260.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, Format(tt.in))
	}
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+$100.00", Signed(100))
	assert.Equal(t, "-$5.00", Signed(-5))
	assert.Equal(t, "$0.00", Signed(0))
}
