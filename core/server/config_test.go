package server_test

import (
	"testing"

	"mini-reconcile/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimitBytes(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Configured", 16, 16 * 1024 * 1024},
		{"Zero falls back", 0, 64 * 1024 * 1024},
		{"Negative falls back", -1, 64 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimitBytes())
		})
	}
}
