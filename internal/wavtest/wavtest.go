// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// HeaderSize is the size of the canonical RIFF + fmt + data chunk headers.
const HeaderSize = 44

// File describes a canonical WAV file to build.
// FormatCode is raw so tests can write codes the decoder must reject.
type File struct {
	FormatCode    uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
	Data          []byte
}

// PCM16 returns a 16-bit PCM File with the given rate and channel count and
// a few frames of silence.
func PCM16(sampleRate uint32, channels uint16) File {
	return File{
		FormatCode:    1,
		Channels:      channels,
		SampleRate:    sampleRate,
		BitsPerSample: 16,
		Data:          make([]byte, 8*int(channels)),
	}
}

// Bytes encodes f with a 44-byte header and a RIFF size equal to len-8.
func (f File) Bytes() []byte {
	bytesPerFrame := uint32(f.Channels) * uint32(f.BitsPerSample/8)
	byteRate := f.SampleRate * bytesPerFrame
	blockAlign := uint16(bytesPerFrame)
	dataSize := uint32(len(f.Data))

	buf := make([]byte, HeaderSize, HeaderSize+len(f.Data))

	// RIFF header (12 bytes)
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], 36+dataSize)
	copy(buf[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], f.FormatCode)
	binary.LittleEndian.PutUint16(buf[22:24], f.Channels)
	binary.LittleEndian.PutUint32(buf[24:28], f.SampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], byteRate)
	binary.LittleEndian.PutUint16(buf[32:34], blockAlign)
	binary.LittleEndian.PutUint16(buf[34:36], f.BitsPerSample)

	// data chunk header (8 bytes)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)

	return append(buf, f.Data...)
}

// WriteFile writes data to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
	return path
}
