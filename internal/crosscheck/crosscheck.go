// SPDX-License-Identifier: EPL-2.0

package crosscheck

import (
	"bytes"
	"errors"
	"fmt"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavinfo/formats/wav"
)

var (
	// ErrReferenceRejected indicates the reference decoder could not read the file
	ErrReferenceRejected = errors.New("reference decoder rejected file")
)

// Mismatch is a header field where the fixed-offset decode and the reference
// decoder disagree.
type Mismatch struct {
	Field     string `json:"field"`
	Header    uint32 `json:"header"`
	Reference uint32 `json:"reference"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s header=%d reference=%d", m.Field, m.Header, m.Reference)
}

// Report is the result of comparing one file.
type Report struct {
	// Format is the channel count and full 32-bit sample rate the reference
	// decoder found.
	Format     *goaudio.Format `json:"-"`
	Mismatches []Mismatch      `json:"mismatches"`
}

// OK reports whether both decoders agree on every field.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Check decodes data with the go-audio chunk-walking decoder and compares the
// result with info, which must come from wav.Parse on the same data.
func Check(data []byte, info wav.Info) (Report, error) {
	dec := gowav.NewDecoder(bytes.NewReader(data))
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrReferenceRejected, err)
	}

	// a zero format code only happens when no fmt chunk was decoded; a zero
	// channel count is a real header value and is compared like any other
	format := dec.Format()
	if format == nil || dec.WavAudioFormat == 0 {
		return Report{}, fmt.Errorf("%w: no fmt chunk", ErrReferenceRejected)
	}

	report := Report{Format: format}
	compare := func(field string, header, reference uint32) {
		if header != reference {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Field:     field,
				Header:    header,
				Reference: reference,
			})
		}
	}

	compare("format", uint32(info.Format), uint32(dec.WavAudioFormat))
	compare("channels", uint32(info.Channels), uint32(format.NumChannels))
	compare("frequency", uint32(info.Frequency), uint32(format.SampleRate))
	compare("bits per sample", uint32(info.BitsPerSample), uint32(dec.BitDepth))

	return report, nil
}
