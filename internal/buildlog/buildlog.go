// Package buildlog provides the append-only timestamped log of a pipeline run.
package buildlog

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Entry is a single log line, optionally tagged with the stage that produced it.
type Entry struct {
	Time    time.Time `json:"time"`
	Stage   string    `json:"stage,omitempty"`
	Message string    `json:"message"`
}

// Log accumulates entries for one pipeline run. Entries are append-only and
// mirrored to a console logger the moment they are recorded; nothing is ever
// removed or rewritten after a run starts.
type Log struct {
	entries []Entry
	logger  zerolog.Logger
	now     func() time.Time
}

// Options configure a Log.
type Options struct {
	Out io.Writer
	Now func() time.Time
}

// New creates a Log mirroring entries to opts.Out as they are appended.
func New(opts Options) *Log {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	writer := zerolog.ConsoleWriter{
		Out:        opts.Out,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return &Log{
		logger: zerolog.New(writer),
		now:    opts.Now,
	}
}

// Append records message under the given stage tag. An empty stage leaves the
// entry untagged.
func (l *Log) Append(stage, message string) {
	entry := Entry{Time: l.now(), Stage: stage, Message: message}
	l.entries = append(l.entries, entry)

	event := l.logger.Info().Time(zerolog.TimestampFieldName, entry.Time)
	if stage != "" {
		event = event.Str("stage", stage)
	}
	event.Msg(message)
}

// Appendf records a formatted message under the given stage tag.
func (l *Log) Appendf(stage, format string, args ...any) {
	l.Append(stage, fmt.Sprintf(format, args...))
}

// Entries returns a snapshot of the recorded entries in append order.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}
