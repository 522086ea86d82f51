package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name string
		text string
		min  int
		want int
	}{
		{"non-numeric clamps to minimum", "abc", 10, 10},
		{"empty clamps to minimum", "", 10, 10},
		{"below minimum", "5", 10, 10},
		{"valid", "75", 10, 75},
		{"strips non-digits", "1,200 pcs", 1, 1200},
		{"minus sign stripped", "-3", 1, 3},
		{"zero minimum treated as one", "0", 0, 1},
		{"overflow clamps to minimum", "99999999999999999999999", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampQuantity(tt.text, tt.min))
		})
	}
}
