// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ik5/wavinfo/formats/wav"
	"github.com/ik5/wavinfo/internal/crosscheck"
)

type infoRecord struct {
	File string   `json:"file"`
	Info wav.Info `json:"info"`
}

type verifyRecord struct {
	File       string                `json:"file"`
	Info       wav.Info              `json:"info"`
	OK         bool                  `json:"ok"`
	Mismatches []crosscheck.Mismatch `json:"mismatches,omitempty"`
}

// printer renders reports to stdout in the configured format.
// JSON output is one object per line.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) info(path string, info wav.Info) error {
	if p.format == OutputJSON {
		return json.NewEncoder(p.w).Encode(infoRecord{File: path, Info: info})
	}

	_, err := fmt.Fprintf(p.w, "%s\n\n%s\n", filepath.Base(path), info)
	return err
}

func (p *printer) verify(path string, info wav.Info, report crosscheck.Report) error {
	if p.format == OutputJSON {
		return json.NewEncoder(p.w).Encode(verifyRecord{
			File:       path,
			Info:       info,
			OK:         report.OK(),
			Mismatches: report.Mismatches,
		})
	}

	if report.OK() {
		_, err := fmt.Fprintf(p.w, "%s: OK\n", path)
		return err
	}

	for _, m := range report.Mismatches {
		if _, err := fmt.Fprintf(p.w, "%s: %s\n", path, m); err != nil {
			return err
		}
	}
	return nil
}

// failure reports a file that could not be processed. It always goes to
// stderr as plain text.
func failure(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s: %v\n", path, err)
}
