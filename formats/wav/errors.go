// SPDX-License-Identifier: EPL-2.0

package wav

// Error identifies the structural check a WAV header failed.
// The set is closed; Parse returns exactly one of these per failing call.
type Error uint8

const (
	// ErrInvalidRIFFHeader indicates the buffer does not start with "RIFF"
	ErrInvalidRIFFHeader Error = iota + 1

	// ErrInvalidFileSize indicates the RIFF size field plus 8 is not the buffer length
	ErrInvalidFileSize

	// ErrInvalidFileFormatID indicates bytes 8..12 are not "WAVE"
	ErrInvalidFileFormatID

	// ErrInvalidFormatBlocID indicates bytes 12..16 are not "fmt "
	ErrInvalidFormatBlocID

	// ErrInvalidAudioFormat indicates an unknown audio format code
	ErrInvalidAudioFormat

	// ErrInvalidDataBloc indicates bytes 36..40 are not "data"
	ErrInvalidDataBloc

	// ErrTruncatedHeader indicates the buffer ends before a numeric header field
	ErrTruncatedHeader
)

func (e Error) Error() string {
	switch e {
	case ErrInvalidRIFFHeader:
		return "Invalid RIFF header"
	case ErrInvalidFileSize:
		return "Invalid file size"
	case ErrInvalidFileFormatID:
		return "Invalid file format ID"
	case ErrInvalidFormatBlocID:
		return "Invalid file format bloc ID"
	case ErrInvalidAudioFormat:
		return "Invalid audio format"
	case ErrInvalidDataBloc:
		return "Invalid data bloc"
	case ErrTruncatedHeader:
		return "Truncated header"
	default:
		return "Unknown WAV error"
	}
}
