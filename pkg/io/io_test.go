package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/monthgraph/pkg/errors"
)

func TestReadSeries(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart string
		want      []int
	}{
		{"object", `{"start_date":"2024-03-01","values":[1,-2,3]}`, "2024-03-01", []int{1, -2, 3}},
		{"object without start", `{"values":[]}`, "", []int{}},
		{"array", ` [4, 5, 6] `, "", []int{4, 5, 6}},
		{"lines", "# march\n7\n\n 8 \n9\n", "", []int{7, 8, 9}},
		{"single line", "42", "", []int{42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ReadSeries(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadSeries: %v", err)
			}
			if s.Start != tt.wantStart {
				t.Errorf("Start = %q, want %q", s.Start, tt.wantStart)
			}
			if !reflect.DeepEqual(s.Values, tt.want) {
				t.Errorf("Values = %v, want %v", s.Values, tt.want)
			}
		})
	}
}

func TestReadSeriesErrors(t *testing.T) {
	long := "[" + strings.Repeat("1,", errors.MaxSeriesLength) + "1]"
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty", "  \n", errors.ErrCodeInvalidSeries},
		{"bad json", `{"values":`, errors.ErrCodeInvalidSeries},
		{"missing values", `{"start_date":"2024-03-01"}`, errors.ErrCodeInvalidSeries},
		{"bad line", "1\ntwo\n", errors.ErrCodeInvalidSeries},
		{"too long", long, errors.ErrCodeInvalidSeries},
		{"bad date", `{"start_date":"03/01/2024","values":[1]}`, errors.ErrCodeInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSeries(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestStartDate(t *testing.T) {
	d, err := Series{Start: "2024-02-28"}.StartDate()
	if err != nil {
		t.Fatalf("StartDate: %v", err)
	}
	if d.Year != 2024 || d.Month != time.February || d.Day != 28 {
		t.Errorf("StartDate = %v", d)
	}
	if d, err := (Series{}).StartDate(); d != nil || err != nil {
		t.Errorf("empty StartDate = %v, %v", d, err)
	}
}

func TestSeriesRoundTrip(t *testing.T) {
	in := Series{Start: "2024-01-30", Values: []int{3, 0, 9}}
	path := filepath.Join(t.TempDir(), "series.json")
	if err := ExportSeries(in, path); err != nil {
		t.Fatalf("ExportSeries: %v", err)
	}
	out, err := ImportSeries(path)
	if err != nil {
		t.Fatalf("ImportSeries: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestWriteSeriesNilValues(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeries(Series{}, &buf); err != nil {
		t.Fatalf("WriteSeries: %v", err)
	}
	if !strings.Contains(buf.String(), `"values": []`) {
		t.Errorf("output = %s", buf.String())
	}
}

func TestImportSeriesMissing(t *testing.T) {
	_, err := ImportSeries(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want file not found", err)
	}
}

func TestImportExampleSeries(t *testing.T) {
	tests := []struct {
		file  string
		start string
		days  int
	}{
		{"march-2024.json", "2024-03-01", 31},
		{"mid-month.txt", "", 14},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			s, err := ImportSeries(filepath.Join("..", "..", "examples", "series", tt.file))
			if err != nil {
				t.Fatalf("ImportSeries() error = %v", err)
			}
			if s.Start != tt.start || len(s.Values) != tt.days {
				t.Errorf("got start %q with %d values, want %q with %d", s.Start, len(s.Values), tt.start, tt.days)
			}
		})
	}
}
