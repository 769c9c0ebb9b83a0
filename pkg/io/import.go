package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/monthgraph/pkg/core/calendar"
	"github.com/matzehuels/monthgraph/pkg/errors"
)

// Series is a run of daily values and the date of the first one.
type Series struct {
	Start  string `json:"start_date,omitempty"`
	Values []int  `json:"values"`
}

// StartDate parses Start. It returns nil when no start date is set.
func (s Series) StartDate() (*calendar.Date, error) {
	if s.Start == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(s.Start)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the series length and start date.
func (s Series) Validate() error {
	if err := errors.ValidateSeriesLength(len(s.Values)); err != nil {
		return err
	}
	if s.Start != "" {
		if err := errors.ValidateDate(s.Start); err != nil {
			return err
		}
	}
	return nil
}

// ReadSeries decodes a series from r in any of the supported formats.
// ReadSeries does not close r.
func ReadSeries(r io.Reader) (Series, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Series{}, fmt.Errorf("read: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Series{}, errors.New(errors.ErrCodeInvalidSeries, "empty input")
	}

	var s Series
	switch data[0] {
	case '{':
		if err := json.Unmarshal(data, &s); err != nil {
			return Series{}, errors.Wrap(errors.ErrCodeInvalidSeries, err, "decode series object")
		}
		if s.Values == nil {
			return Series{}, errors.New(errors.ErrCodeInvalidSeries, `series object has no "values"`)
		}
	case '[':
		if err := json.Unmarshal(data, &s.Values); err != nil {
			return Series{}, errors.Wrap(errors.ErrCodeInvalidSeries, err, "decode series array")
		}
	default:
		if s.Values, err = readLines(data); err != nil {
			return Series{}, err
		}
	}

	if err := s.Validate(); err != nil {
		return Series{}, err
	}
	return s, nil
}

func readLines(data []byte) ([]int, error) {
	values := []int{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		v, err := strconv.Atoi(string(text))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSeries, err, "line %d: not an integer: %q", line, text)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return values, nil
}

// ImportSeries reads the series file at path.
func ImportSeries(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Series{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "series file not found: %s", path)
		}
		return Series{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSeries(f)
}
