package wav

import (
	"errors"
	"fmt"
	"testing"
)

var allErrors = []Error{
	ErrInvalidRIFFHeader,
	ErrInvalidFileSize,
	ErrInvalidFileFormatID,
	ErrInvalidFormatBlocID,
	ErrInvalidAudioFormat,
	ErrInvalidDataBloc,
	ErrTruncatedHeader,
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  Error
		want string
	}{
		{ErrInvalidRIFFHeader, "Invalid RIFF header"},
		{ErrInvalidFileSize, "Invalid file size"},
		{ErrInvalidFileFormatID, "Invalid file format ID"},
		{ErrInvalidFormatBlocID, "Invalid file format bloc ID"},
		{ErrInvalidAudioFormat, "Invalid audio format"},
		{ErrInvalidDataBloc, "Invalid data bloc"},
		{ErrTruncatedHeader, "Truncated header"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_UnknownValue(t *testing.T) {
	t.Parallel()

	if got := Error(0).Error(); got != "Unknown WAV error" {
		t.Errorf("Error(0).Error() = %q, want %q", got, "Unknown WAV error")
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	messages := make(map[string]Error)
	for _, err := range allErrors {
		if err == 0 {
			t.Errorf("%q has the zero value", err.Error())
		}
		if existing, found := messages[err.Error()]; found {
			t.Errorf("%d has same message as %d: %q", err, existing, err.Error())
		}
		messages[err.Error()] = err
	}
}

func TestErrors_IsComparison(t *testing.T) {
	t.Parallel()

	for _, err := range allErrors {
		t.Run(err.Error(), func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("song.wav: %w", err)
			if !errors.Is(wrapped, err) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", err)
			}

			for _, other := range allErrors {
				if other != err && errors.Is(wrapped, other) {
					t.Errorf("errors.Is(wrapped %v, %v) = true, want false", err, other)
				}
			}

			var target Error
			if !errors.As(wrapped, &target) || target != err {
				t.Errorf("errors.As() target = %v, want %v", target, err)
			}
		})
	}
}
