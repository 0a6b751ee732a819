package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qr "github.com/unixdj/qrgen"
)

func TestLoadConfigDefaults(t *testing.T) {
	c, err := loadConfig("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config{
		Level:  level(qr.L),
		Min:    1,
		Max:    40,
		Border: 4,
		Scale:  8,
	}, c)
}

func TestLoadConfigEnv(t *testing.T) {
	c, err := loadConfig("", map[string]string{
		"QR_LEVEL":       "q",
		"QR_MIN_VERSION": "3",
		"QR_MAX_VERSION": "10",
		"QR_QUIET":       "0",
		"QR_SCALE":       "2",
		"QR_FORMAT":      "ascii",
	})
	require.NoError(t, err)
	assert.Equal(t, config{
		Level:  level(qr.Q),
		Min:    3,
		Max:    10,
		Border: 0,
		Scale:  2,
		Format: "ascii",
	}, c)

	_, err = loadConfig("", map[string]string{"QR_LEVEL": "z"})
	assert.Error(t, err)
	_, err = loadConfig("", map[string]string{"QR_SCALE": "big"})
	assert.Error(t, err)
}

func TestLoadConfigDotenv(t *testing.T) {
	fn := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(fn,
		[]byte("QR_LEVEL=H\nQR_SCALE=3\n"), 0644))
	c, err := loadConfig(fn, map[string]string{"QR_SCALE": "5"})
	require.NoError(t, err)
	assert.Equal(t, level(qr.H), c.Level)
	assert.Equal(t, 5, c.Scale)

	c, err = loadConfig(filepath.Join(t.TempDir(), "missing"), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 8, c.Scale)
}

func TestLevelFlag(t *testing.T) {
	var l level
	require.NoError(t, l.Set("m", nil))
	assert.Equal(t, "M", l.String())
	assert.Error(t, l.Set("x", nil))
}

func TestUTF16Units(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   []byte
		want []uint16
	}{
		{"big endian", []byte{0, 'H', 0, 'i'}, []uint16{'H', 'i'}},
		{"big endian mark", []byte{0xfe, 0xff, 0, 'H'}, []uint16{'H'}},
		{"little endian mark", []byte{0xff, 0xfe, 'H', 0, 0x3d, 0xd8}, []uint16{'H', 0xd83d}},
		{"odd byte", []byte{0, 'H', 0}, []uint16{'H'}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utf16Units(tt.in))
		})
	}
}

func TestTrimUnits(t *testing.T) {
	assert.Equal(t, []uint16{'a'}, trimUnits([]uint16{'a', '\n'}))
	assert.Equal(t, []uint16{'a'}, trimUnits([]uint16{'a', '\r', '\n'}))
	assert.Equal(t, []uint16{'a', '\n', 'b'}, trimUnits([]uint16{'a', '\n', 'b'}))
	assert.Equal(t, []uint16{}, trimUnits([]uint16{'\n'}))
}
