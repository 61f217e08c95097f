// SPDX-License-Identifier: EPL-2.0

// Package wav validates RIFF/WAVE file headers and decodes their metadata.
//
// The decoder works on the minimal canonical layout: a 12-byte RIFF header,
// a 16-byte "fmt " chunk body and a "data" chunk header, all at fixed offsets.
// Extension chunks such as "fact" or "LIST" are not skipped, and the sample
// data itself is never read.
//
// # Decoding
//
// Use Parse on a buffer holding the whole file:
//
//	data, _ := os.ReadFile("audio.wav")
//	info, err := wav.Parse(data)
//	if err != nil {
//	    // err is a wav.Error naming the first failed check
//	}
//	fmt.Print(info)
//
// or the Decoder when the file is behind a reader:
//
//	file, _ := os.Open("audio.wav")
//	info, err := wav.Decoder{}.Decode(file)
//
// The returned Info carries the audio format, channel count, sample rate and
// bit depth. Its String method renders the four-line text report.
//
// # Validation Order
//
// Checks run in header order and stop at the first failure:
//   - ErrInvalidRIFFHeader: bytes 0..4 are not "RIFF"
//   - ErrInvalidFileSize: the RIFF size field plus 8 is not the buffer length
//   - ErrInvalidFileFormatID: bytes 8..12 are not "WAVE"
//   - ErrInvalidFormatBlocID: bytes 12..16 are not "fmt "
//   - ErrInvalidAudioFormat: the format code is not PCM (1), PCM float (3)
//     or WAVE_FORMAT_EXTENSIBLE (65534)
//   - ErrInvalidDataBloc: bytes 36..40 are not "data"
//
// A buffer that ends before a numeric field can be read fails with
// ErrTruncatedHeader. A buffer that ends before a chunk marker fails with the
// marker's own error.
//
// All errors are values of type Error and compare with errors.Is:
//
//	if errors.Is(err, wav.ErrInvalidFileSize) {
//	    fmt.Println("size field does not match the file")
//	}
//
// # Known Limitations
//
// The sample rate is read as 16 bits from bytes 24..26 although the field is
// 32 bits wide, so rates above 65535 Hz are reported truncated (96000 Hz reads
// as 30464 Hz). The fmt chunk size at bytes 16..20 is not validated.
package wav
