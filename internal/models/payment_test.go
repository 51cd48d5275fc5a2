package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastFour(t *testing.T) {
	tests := []struct {
		card string
		want string
	}{
		{"4532015112830369", "0369"},
		{"4532015112830069", "0069"},
		{"00000000000000", "0000"},
		{"123", "123"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LastFour(tt.card), "card %q", tt.card)
	}
}
