// SPDX-License-Identifier: EPL-2.0

package wavinfo

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavinfo/formats/wav"
)

// ReadFile loads the whole file at path into memory.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wav file: %w", err)
	}
	return data, nil
}

// InspectFile reads the file at path and decodes its WAV header.
//
// The returned error is either an I/O error from reading the file or a
// wav.Error naming the first header check that failed.
func InspectFile(path string) (wav.Info, error) {
	data, err := ReadFile(path)
	if err != nil {
		return wav.Info{}, err
	}

	return wav.Parse(data)
}

// Inspect reads r to the end and decodes its WAV header.
func Inspect(r io.Reader) (wav.Info, error) {
	return wav.Decoder{}.Decode(r)
}
