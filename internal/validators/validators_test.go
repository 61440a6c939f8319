package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"416-555-0134", true},
		{"(416) 555 0134", true},
		{"+1 416.555.0134", true},
		{"5550134", true},
		{"", false},
		{"   ", false},
		{"555-013", false},
		{"call me maybe", false},
		{"416-555-0134 ext 2", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPhoneValid(tt.phone), "phone %q", tt.phone)
	}
}
