package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/monthgraph/pkg/observability"
)

var logLine = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} (INFO|DEBU|WARN) `)

func TestNewLoggerFormat(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  string // empty means no output
	}{
		{"info passes info", log.InfoLevel, func(l *log.Logger) { l.Info("rendered", "days", 31) }, "INFO rendered days=31"},
		{"info drops debug", log.InfoLevel, func(l *log.Logger) { l.Debug("loaded config") }, ""},
		{"debug passes debug", log.DebugLevel, func(l *log.Logger) { l.Debug("loaded config") }, "DEBU loaded config"},
		{"warn drops info", log.WarnLevel, func(l *log.Logger) { l.Info("rendered") }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			got := buf.String()
			if tt.want == "" {
				if got != "" {
					t.Errorf("unexpected output %q", got)
				}
				return
			}
			if !logLine.MatchString(got) {
				t.Errorf("output %q does not start with a HH:MM:SS.cc timestamp and level", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q missing %q", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	tests := []struct {
		name    string
		ago     time.Duration
		keyvals []any
		want    []string
		elapsed *regexp.Regexp
	}{
		{
			name:    "render summary",
			ago:     2 * time.Second,
			keyvals: []any{"cached", false},
			want:    []string{"rendered", "cached=false"},
			elapsed: regexp.MustCompile(`elapsed=2(\.\d+)?s`),
		},
		{
			name:    "no extra fields",
			ago:     0,
			want:    []string{"rendered"},
			elapsed: regexp.MustCompile(`elapsed=\d+(\.\d+)?m?s`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := newProgress(newLogger(&buf, log.InfoLevel))
			p.start = p.start.Add(-tt.ago)
			p.done("rendered", tt.keyvals...)

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			if !tt.elapsed.MatchString(out) {
				t.Errorf("output %q: elapsed does not match %s", out, tt.elapsed)
			}
			if strings.Contains(out, "µs") || strings.Contains(out, "ns") {
				t.Errorf("elapsed not rounded to milliseconds: %q", out)
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	custom := newLogger(&bytes.Buffer{}, log.InfoLevel)

	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Errorf("bare context = %p, want log.Default()", got)
	}
	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Errorf("attached logger = %p, want %p", got, custom)
	}
}

func TestSetupVerbose(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLevel log.Level
		wantHooks bool
	}{
		{"quiet", []string{"cache", "path"}, log.InfoLevel, false},
		{"verbose", []string{"-v", "cache", "path"}, log.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Cleanup(observability.Reset)

			var logs bytes.Buffer
			c := New(&logs, LogInfo)
			root := c.RootCommand()
			root.SetOut(&bytes.Buffer{})
			root.SetArgs(tt.args)
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatal(err)
			}

			if got := c.Logger.GetLevel(); got != tt.wantLevel {
				t.Errorf("level = %v, want %v", got, tt.wantLevel)
			}
			if got := strings.Contains(logs.String(), "loaded config"); got != tt.wantHooks {
				t.Errorf("debug output = %v, want %v: %q", got, tt.wantHooks, logs.String())
			}
			_, hooked := observability.Pipeline().(*observability.LogHooks)
			if hooked != tt.wantHooks {
				t.Errorf("log hooks registered = %v, want %v", hooked, tt.wantHooks)
			}
		})
	}
}
