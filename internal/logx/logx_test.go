package logx

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

// savingLogger helps writing tests for [PrefixLogger].
type savingLogger struct {
	debug []string
	info  []string
	warn  []string
}

func (sl *savingLogger) Debug(message string) {
	sl.debug = append(sl.debug, message)
}

func (sl *savingLogger) Debugf(format string, v ...interface{}) {
	sl.Debug(fmt.Sprintf(format, v...))
}

func (sl *savingLogger) Info(message string) {
	sl.info = append(sl.info, message)
}

func (sl *savingLogger) Infof(format string, v ...interface{}) {
	sl.Info(fmt.Sprintf(format, v...))
}

func (sl *savingLogger) Warn(message string) {
	sl.warn = append(sl.warn, message)
}

func (sl *savingLogger) Warnf(format string, v ...interface{}) {
	sl.Warn(fmt.Sprintf(format, v...))
}

func TestPrefixLogger(t *testing.T) {
	saver := &savingLogger{}
	logger := &PrefixLogger{
		Prefix: "checkin: ",
		Logger: saver,
	}
	logger.Debug("a")
	logger.Debugf("%s", "b")
	logger.Info("c")
	logger.Infof("%s", "d")
	logger.Warn("e")
	logger.Warnf("%s", "f")

	if diff := cmp.Diff([]string{"checkin: a", "checkin: b"}, saver.debug); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"checkin: c", "checkin: d"}, saver.info); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"checkin: e", "checkin: f"}, saver.warn); diff != "" {
		t.Fatal(diff)
	}
}

func TestHandler(t *testing.T) {
	t.Run("without fields", func(t *testing.T) {
		w := &bytes.Buffer{}
		handler := &Handler{StartTime: time.Now(), Writer: w}
		logger := &log.Logger{Level: log.DebugLevel, Handler: handler}
		logger.Warnf("cannot find %s in v1 response", "tor")
		got := w.String()
		if !strings.HasSuffix(got, "<warn> cannot find tor in v1 response\n") {
			t.Fatal("unexpected log line", got)
		}
		if !strings.HasPrefix(got, "[") {
			t.Fatal("expected the elapsed time prefix", got)
		}
	})

	t.Run("with fields", func(t *testing.T) {
		w := &bytes.Buffer{}
		handler := &Handler{StartTime: time.Now(), Writer: w}
		logger := &log.Logger{Level: log.DebugLevel, Handler: handler}
		logger.WithField("nettest", "tor").Info("running")
		got := w.String()
		if !strings.HasSuffix(got, "<info> running: map[nettest:tor]\n") {
			t.Fatal("unexpected log line", got)
		}
	})
}

func TestNewHandlerWithDefaultSettings(t *testing.T) {
	handler := NewHandlerWithDefaultSettings()
	if handler.Writer == nil || handler.StartTime.IsZero() {
		t.Fatal("expected initialized fields")
	}
}

func TestWriteJSONLines(t *testing.T) {
	color.NoColor = true
	w := &bytes.Buffer{}
	WriteJSONLines(w, "v1request>", map[string]any{
		"web_connectivity": map[string]any{
			"category_codes": []string{"NEWS"},
		},
	})
	expect := strings.Join([]string{
		"v1request> {",
		`v1request>     "web_connectivity": {`,
		`v1request>         "category_codes": [`,
		`v1request>             "NEWS"`,
		"v1request>         ]",
		"v1request>     }",
		"v1request> }",
		"",
	}, "\n")
	if diff := cmp.Diff(expect, w.String()); diff != "" {
		t.Fatal(diff)
	}
}
