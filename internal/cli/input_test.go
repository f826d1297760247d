package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  value \nnext\n"))

	got, err := GetSimpleText(r, "Name:", &out)
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Equal(t, "Name:\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("tail"))
	got, err := GetSimpleText(r, "p", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	_, err := GetSimpleText(r, "p", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestHandleLabel(t *testing.T) {
	assert.Equal(t, "_wAAAAAA(0xff)", handleLabel("_wAAAAAA"))
	assert.Equal(t, "***", handleLabel("***"))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"42", 42, false},
		{"0x2a", 42, false},
		{"18446744073709551615", ^uint64(0), false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseKey(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
