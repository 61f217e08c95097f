// SPDX-License-Identifier: EPL-2.0

// Package wavinfo inspects WAV files and reports their header metadata.
//
// The package loads a file into memory and hands it to the header decoder in
// formats/wav, which validates the RIFF/WAVE layout and returns the audio
// format, channel count, sample rate and bit depth.
//
// # Quick Start
//
// The simplest way to inspect a file is InspectFile:
//
//	info, err := wavinfo.InspectFile("audio.wav")
//	if err != nil {
//	    // either an I/O error or a wav.Error naming the failed check
//	}
//	fmt.Print(info)
//
// which prints:
//
//	format            PCM
//	channels          2
//	frequency         44100 Hz
//	bits per sample   16
//
// # Readers
//
// When the data is already open, use Inspect:
//
//	resp, _ := http.Get(url)
//	info, err := wavinfo.Inspect(resp.Body)
//
// # Errors
//
// I/O failures are wrapped, so errors.Is(err, fs.ErrNotExist) works on a
// missing file. Header defects are wav.Error values:
//
//	if errors.Is(err, wav.ErrInvalidFileSize) {
//	    // the RIFF size field does not match the file length
//	}
//
// # Command Line
//
// The cmd/wavinfo program wraps this package:
//
//	wavinfo info song.wav
//	wavinfo verify --output json *.wav
//
// See the formats/wav package for the exact header checks.
package wavinfo
