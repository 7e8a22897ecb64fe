package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSKU(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"ABC-123", "abc-123"},
		{"  abc-123  ", "abc-123"},
		{"MiXeD", "mixed"},
		{"already-normal", "already-normal"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSKU(tt.raw))
		})
	}
}
