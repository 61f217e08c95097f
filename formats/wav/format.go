// SPDX-License-Identifier: EPL-2.0

package wav

import "fmt"

// AudioFormat is the encoding code stored in the fmt chunk.
type AudioFormat uint16

const (
	FormatPCM        AudioFormat = 1
	FormatPCMFloat   AudioFormat = 3
	FormatExtensible AudioFormat = 0xFFFE
)

// ParseAudioFormat maps a raw fmt chunk code to a known AudioFormat.
// ok is false for any code outside the recognized set.
func ParseAudioFormat(code uint16) (format AudioFormat, ok bool) {
	switch f := AudioFormat(code); f {
	case FormatPCM, FormatPCMFloat, FormatExtensible:
		return f, true
	}
	return 0, false
}

func (f AudioFormat) String() string {
	switch f {
	case FormatPCM:
		return "PCM"
	case FormatPCMFloat:
		return "PCM float"
	case FormatExtensible:
		return "WAVE_FORMAT_EXTENSIBLE"
	default:
		return fmt.Sprintf("AudioFormat(%d)", uint16(f))
	}
}

// MarshalText renders the format name, so JSON output carries "PCM" rather than 1.
func (f AudioFormat) MarshalText() ([]byte, error) {
	if _, ok := ParseAudioFormat(uint16(f)); !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAudioFormat, uint16(f))
	}
	return []byte(f.String()), nil
}
