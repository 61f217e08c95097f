// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/wavinfo/formats/wav"
	"github.com/ik5/wavinfo/internal/wavtest"
)

// Example_parse demonstrates decoding a header held in memory.
func Example_parse() {
	data := wavtest.PCM16(16000, 1).Bytes()

	info, err := wav.Parse(data)
	if err != nil {
		fmt.Printf("Parse error: %v\n", err)
		return
	}

	fmt.Print(info)
	// Output:
	// format            PCM
	// channels          1
	// frequency         16000 Hz
	// bits per sample   16
}

// Example_decoder demonstrates decoding from an io.Reader.
func Example_decoder() {
	f := wavtest.File{FormatCode: 3, Channels: 2, SampleRate: 48000, BitsPerSample: 32}

	decoder := wav.Decoder{}
	info, err := decoder.Decode(bytes.NewReader(f.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("%s, %d channels, %d Hz\n", info.Format, info.Channels, info.Frequency)
	// Output: PCM float, 2 channels, 48000 Hz
}

// Example_errors shows that each structural defect has its own error.
func Example_errors() {
	inputs := [][]byte{
		[]byte("RAFF"),
		[]byte("RIFF\x00\x00\x00\x00blablabla"),
		[]byte("RIFF\x04\x00\x00\x00WOVE"),
		[]byte("RIFF\x08\x00\x00\x00WAVE...."),
		[]byte("RIFF\x0e\x00\x00\x00WAVEfmt \x00\x00\x00\x00\x04\x04"),
	}

	for _, in := range inputs {
		_, err := wav.Parse(in)
		fmt.Println(err)
	}
	// Output:
	// Invalid RIFF header
	// Invalid file size
	// Invalid file format ID
	// Invalid file format bloc ID
	// Invalid audio format
}

// Example_errorsIs shows matching a specific defect.
func Example_errorsIs() {
	data := wavtest.PCM16(8000, 1).Bytes()
	data = data[:len(data)-2] // size field no longer matches

	_, err := wav.Parse(data)
	if errors.Is(err, wav.ErrInvalidFileSize) {
		fmt.Println("Detected: size field does not match the file")
	}
	// Output: Detected: size field does not match the file
}

// Example_frequencyWidth shows the 16-bit sample rate read.
func Example_frequencyWidth() {
	for _, rate := range []uint32{44100, 48000, 96000} {
		info, _ := wav.Parse(wavtest.PCM16(rate, 2).Bytes())
		fmt.Printf("Rate: %5d Hz → %5d Hz\n", rate, info.Frequency)
	}
	// Output:
	// Rate: 44100 Hz → 44100 Hz
	// Rate: 48000 Hz → 48000 Hz
	// Rate: 96000 Hz → 30464 Hz
}
