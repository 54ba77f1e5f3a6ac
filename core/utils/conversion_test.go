package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeScalar(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"string", "OK", "OK"},
		{"bytes", []byte("OK"), "OK"},
		{"int", int(7), int64(7)},
		{"int32", int32(7), int64(7)},
		{"uint8", uint8(7), int64(7)},
		{"uint64 in range", uint64(7), int64(7)},
		{"uint64 beyond int64 keeps string form", uint64(math.MaxUint64), "18446744073709551615"},
		{"float32", float32(1.5), float64(1.5)},
		{"float64", 2.5, 2.5},
		{"bool", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeScalar(tt.in))
		})
	}
}

func TestInferScalar(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"empty is nil", "", nil},
		{"integer", "100", int64(100)},
		{"negative", "-3", int64(-3)},
		{"float", "99.95", 99.95},
		{"bool true", "true", true},
		{"bool upper", "FALSE", false},
		{"string", "PENDING", "PENDING"},
		{"reference keeps leading letter", "T100", "T100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferScalar(tt.in))
		})
	}
}

func TestFormatScalar(t *testing.T) {
	assert.Equal(t, "", FormatScalar(nil))
	assert.Equal(t, "100", FormatScalar(int64(100)))
	assert.Equal(t, "99.95", FormatScalar(99.95))
	assert.Equal(t, "true", FormatScalar(true))
	assert.Equal(t, "OK", FormatScalar("OK"))
}
