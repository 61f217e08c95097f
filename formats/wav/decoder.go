// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Fixed offsets of the canonical 44-byte header. No chunk skipping is done:
// "fmt " must follow "WAVE" and "data" must follow the 16-byte fmt body.
const (
	offRIFFID        = 0
	offRIFFSize      = 4
	offWaveID        = 8
	offFmtID         = 12
	offAudioFormat   = 20
	offChannels      = 22
	offFrequency     = 24
	offBitsPerSample = 34
	offDataID        = 36

	riffPreamble = 8 // "RIFF" + size field, not counted by the size field
)

// Parse validates a complete WAV file held in data and decodes its header.
//
// Checks run in header order and the first failing one decides the returned
// Error. Info is only returned once every check has passed.
//
// The sample rate is read as a 16-bit value from bytes 24..26, so rates above
// 65535 Hz come back truncated.
func Parse(data []byte) (Info, error) {
	if !hasChunkID(data, offRIFFID, riff.RiffID) {
		return Info{}, ErrInvalidRIFFHeader
	}

	declaredSize, ok := uint32At(data, offRIFFSize)
	if !ok {
		return Info{}, ErrTruncatedHeader
	}
	if uint64(declaredSize)+riffPreamble != uint64(len(data)) {
		return Info{}, ErrInvalidFileSize
	}

	if !hasChunkID(data, offWaveID, riff.WavFormatID) {
		return Info{}, ErrInvalidFileFormatID
	}

	if !hasChunkID(data, offFmtID, riff.FmtID) {
		return Info{}, ErrInvalidFormatBlocID
	}

	// the fmt chunk size at 16..20 is not checked against the layout

	code, ok := uint16At(data, offAudioFormat)
	if !ok {
		return Info{}, ErrTruncatedHeader
	}
	format, ok := ParseAudioFormat(code)
	if !ok {
		return Info{}, ErrInvalidAudioFormat
	}

	channels, ok := uint16At(data, offChannels)
	if !ok {
		return Info{}, ErrTruncatedHeader
	}

	frequency, ok := uint16At(data, offFrequency)
	if !ok {
		return Info{}, ErrTruncatedHeader
	}

	// byte rate and block align (28..34) are not used

	bitsPerSample, ok := uint16At(data, offBitsPerSample)
	if !ok {
		return Info{}, ErrTruncatedHeader
	}

	if !hasChunkID(data, offDataID, riff.DataFormatID) {
		return Info{}, ErrInvalidDataBloc
	}

	return Info{
		Format:        format,
		Channels:      channels,
		Frequency:     frequency,
		BitsPerSample: bitsPerSample,
	}, nil
}

// hasChunkID reports whether data holds id at off. A buffer too short to hold
// the id does not match.
func hasChunkID(data []byte, off int, id [4]byte) bool {
	if len(data) < off+len(id) {
		return false
	}
	return [4]byte(data[off:off+4]) == id
}

func uint16At(data []byte, off int) (uint16, bool) {
	if len(data) < off+2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(data[off : off+2]), true
}

func uint32At(data []byte, off int) (uint32, bool) {
	if len(data) < off+4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[off : off+4]), true
}

// Decoder reads a whole WAV file from a reader and validates its header.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, fmt.Errorf("reading wav data: %w", err)
	}

	return Parse(data)
}
