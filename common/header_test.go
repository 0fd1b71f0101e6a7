package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rickbassham/fitsmeta/common"
)

func TestHeaderGet(t *testing.T) {
	hdr := common.Header{
		"RA":       10.5,
		"dec":      -5.0,
		"EXPTIME":  nil,
		"DATE-OBS": "2023-01-01T03:04:05 ",
	}

	assert.Equal(t, "10.5", hdr.Get("RA", common.NA).String())
	assert.Equal(t, "-5.0", hdr.Get("DEC", common.NA).String())
	assert.Equal(t, "2023-01-01T03:04:05", hdr.Get("DATE-OBS", common.NA).String())

	assert.True(t, hdr.Get("EXPTIME", common.NA).IsNA())
	assert.True(t, hdr.Get("OBJECT", common.NA).IsNA())
	assert.Equal(t, "N/A", hdr.Get("OBJECT", common.NA).String())
}

func TestHeaderGetPrefersExactMatch(t *testing.T) {
	hdr := common.Header{
		"Ra": "lower",
		"RA": "exact",
	}

	assert.Equal(t, "exact", hdr.Get("RA", common.NA).String())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want string
	}{
		{"integral float", 30.0, "30.0"},
		{"fractional float", 10.5, "10.5"},
		{"negative float", -5.0, "-5.0"},
		{"float32", float32(2.5), "2.5"},
		{"large float", 123456789.0, "123456789.0"},
		{"tiny float", 0.00001, "1e-05"},
		{"huge float", 1e20, "1e+20"},
		{"int", 30, "30"},
		{"int64", int64(-7), "-7"},
		{"uint8", uint8(8), "8"},
		{"bool true", true, "True"},
		{"bool false", false, "False"},
		{"padded string", "  M31  ", "M31"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, common.NewValue(tt.raw).String())
		})
	}
}
