// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"strings"
)

// Info is the metadata decoded from a valid WAV header.
type Info struct {
	Format        AudioFormat `json:"format"`
	Channels      uint16      `json:"channels"`
	Frequency     uint16      `json:"frequency"`
	BitsPerSample uint16      `json:"bits_per_sample"`
}

func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "format            %s\n", i.Format)
	fmt.Fprintf(&b, "channels          %d\n", i.Channels)
	fmt.Fprintf(&b, "frequency         %d Hz\n", i.Frequency)
	fmt.Fprintf(&b, "bits per sample   %d\n", i.BitsPerSample)
	return b.String()
}
