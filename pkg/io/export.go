package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteSeries encodes s as an indented JSON object.
func WriteSeries(s Series, w io.Writer) error {
	if s.Values == nil {
		s.Values = []int{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportSeries writes s to a JSON file at path, replacing any existing file.
func ExportSeries(s Series, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WriteSeries(s, f)
}
