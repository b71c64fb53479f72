// Package logx contains logging extensions: an [apex/log] handler, a
// logger adding a prefix to messages, and helpers to log JSON documents.
//
// [apex/log]: https://github.com/apex/log
package logx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/ooni/checkinv2/internal/model"
	"github.com/ooni/checkinv2/internal/must"
)

// Handler implements the log handler required by github.com/apex/log.
type Handler struct {
	// StartTime is the time when we started logging.
	StartTime time.Time

	// Writer is the underlying writer.
	Writer io.Writer
}

var _ log.Handler = &Handler{}

// NewHandlerWithDefaultSettings creates a [*Handler] writing to
// the standard error and measuring time from now.
func NewHandlerWithDefaultSettings() *Handler {
	return &Handler{
		StartTime: time.Now(),
		Writer:    os.Stderr,
	}
}

// HandleLog implements log.Handler
func (h *Handler) HandleLog(e *log.Entry) (err error) {
	s := fmt.Sprintf("[%14.6f] <%s> %s", time.Since(h.StartTime).Seconds(), e.Level, e.Message)
	if len(e.Fields) > 0 {
		s += fmt.Sprintf(": %+v", e.Fields)
	}
	s += "\n"
	_, err = h.Writer.Write([]byte(s))
	return
}

// PrefixLogger is a [model.Logger] with a prefix.
type PrefixLogger struct {
	// Prefix is the prefix to prepend to each message.
	Prefix string

	// Logger is the underlying logger.
	Logger model.Logger
}

var _ model.Logger = &PrefixLogger{}

// Debug implements model.Logger.
func (p *PrefixLogger) Debug(message string) {
	p.Logger.Debug(p.Prefix + message)
}

// Debugf implements model.Logger.
func (p *PrefixLogger) Debugf(format string, v ...interface{}) {
	p.Logger.Debugf(p.Prefix+format, v...)
}

// Info implements model.Logger.
func (p *PrefixLogger) Info(message string) {
	p.Logger.Info(p.Prefix + message)
}

// Infof implements model.Logger.
func (p *PrefixLogger) Infof(format string, v ...interface{}) {
	p.Logger.Infof(p.Prefix+format, v...)
}

// Warn implements model.Logger.
func (p *PrefixLogger) Warn(message string) {
	p.Logger.Warn(p.Prefix + message)
}

// Warnf implements model.Logger.
func (p *PrefixLogger) Warnf(format string, v ...interface{}) {
	p.Logger.Warnf(p.Prefix+format, v...)
}

// jsonPrefixColor is the color used for the prefix of JSON lines.
var jsonPrefixColor = color.New(color.FgCyan)

// WriteJSONLines serializes v as indented JSON and writes each line of
// the result to w, preceded by the given prefix and a space. The prefix
// is colorized unless [color.NoColor] is true.
func WriteJSONLines(w io.Writer, prefix string, v any) {
	data := must.MarshalAndIndentJSON(v, "", "    ")
	for _, line := range bytes.Split(data, []byte("\n")) {
		must.Fprintf(w, "%s %s\n", jsonPrefixColor.Sprint(prefix), line)
	}
}
