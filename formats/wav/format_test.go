// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"
)

func TestParseAudioFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   uint16
		want   AudioFormat
		wantOK bool
	}{
		{1, FormatPCM, true},
		{3, FormatPCMFloat, true},
		{65534, FormatExtensible, true},
		{0, 0, false},
		{2, 0, false},
		{1028, 0, false},
		{65535, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAudioFormat(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseAudioFormat(%d) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAudioFormat_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format AudioFormat
		want   string
	}{
		{FormatPCM, "PCM"},
		{FormatPCMFloat, "PCM float"},
		{FormatExtensible, "WAVE_FORMAT_EXTENSIBLE"},
		{AudioFormat(7), "AudioFormat(7)"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAudioFormat_MarshalText(t *testing.T) {
	t.Parallel()

	text, err := FormatPCMFloat.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "PCM float" {
		t.Errorf("MarshalText() = %q, want %q", text, "PCM float")
	}

	if _, err := AudioFormat(2).MarshalText(); !errors.Is(err, ErrInvalidAudioFormat) {
		t.Errorf("MarshalText() error = %v, want ErrInvalidAudioFormat", err)
	}
}
