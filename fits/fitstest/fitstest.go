// Package fitstest writes minimal FITS files for tests.
package fitstest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	cardSize  = 80
	blockSize = 2880
)

// Card is a single header keyword. Value may be a string, bool, int or
// float64.
type Card struct {
	Key   string
	Value interface{}
}

// Encode returns a primary HDU with NAXIS=0 holding the given cards after
// the mandatory SIMPLE, BITPIX and NAXIS keywords.
func Encode(cards ...Card) []byte {
	all := append([]Card{
		{Key: "SIMPLE", Value: true},
		{Key: "BITPIX", Value: 8},
		{Key: "NAXIS", Value: 0},
	}, cards...)

	var b strings.Builder
	for _, c := range all {
		b.WriteString(formatCard(c))
	}
	b.WriteString(fmt.Sprintf("%-80s", "END"))

	out := []byte(b.String())
	if pad := len(out) % blockSize; pad != 0 {
		out = append(out, []byte(strings.Repeat(" ", blockSize-pad))...)
	}

	return out
}

// WriteFile writes a FITS file named name under dir and returns its path.
func WriteFile(t testing.TB, dir, name string, cards ...Card) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, Encode(cards...), 0644))

	return path
}

// WriteRaw writes arbitrary bytes to dir/name, for files that should fail
// to parse.
func WriteRaw(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))

	return path
}

func formatCard(c Card) string {
	var val string
	switch v := c.Value.(type) {
	case string:
		val = fmt.Sprintf("'%-8s'", strings.ReplaceAll(v, "'", "''"))
	case bool:
		if v {
			val = fmt.Sprintf("%20s", "T")
		} else {
			val = fmt.Sprintf("%20s", "F")
		}
	case int:
		val = fmt.Sprintf("%20d", v)
	case float64:
		s := fmt.Sprintf("%G", v)
		if !strings.ContainsAny(s, ".E") {
			s += ".0"
		}
		val = fmt.Sprintf("%20s", s)
	default:
		panic(fmt.Sprintf("fitstest: unsupported value type %T for %s", v, c.Key))
	}

	line := fmt.Sprintf("%-8s= %s", c.Key, val)
	if len(line) > cardSize {
		line = line[:cardSize]
	}

	return fmt.Sprintf("%-80s", line)
}
