package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback int
		want     int
	}{
		{"plain number", "3", 1, 3},
		{"surrounding spaces", " 2 ", 1, 2},
		{"non-numeric", "abc", 1, 1},
		{"non-numeric keeps prior", "abc", 4, 4},
		{"zero", "0", 1, 1},
		{"zero keeps prior", "0", 7, 7},
		{"negative", "-5", 1, 1},
		{"negative keeps prior", "-5", 2, 2},
		{"empty", "", 3, 3},
		{"float", "2.5", 6, 6},
		{"huge is fine", "999", 1, 999},
		{"bad fallback clamps to one", "abc", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.raw, tt.fallback))
		})
	}
}
