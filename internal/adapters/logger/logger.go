// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/dummit/internal/core/ports"
	"go.trai.ch/dummit/internal/ui/output"
	"go.trai.ch/dummit/internal/ui/style"
)

// detailer describes an error that can report its own message and metadata
// without the chain. *zerr.Error satisfies it.
type detailer interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain as rendered by the logger.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false)),
		output: os.Stderr,
	}
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return newConsoleHandler(w, opts.Level)
}

// levelStyle is the mark and color a console line gets for a level band.
type levelStyle struct {
	min   slog.Level
	mark  string
	color lipgloss.Color
}

// levelStyles is ordered from the most to the least severe band.
var levelStyles = []levelStyle{
	{min: slog.LevelError, mark: style.Cross, color: style.Red},
	{min: slog.LevelWarn, mark: style.Warning, color: style.Yellow},
	{min: slog.LevelDebug - 4, color: style.Slate},
}

func styleFor(level slog.Level) levelStyle {
	for _, ls := range levelStyles {
		if level >= ls.min {
			return ls
		}
	}
	return levelStyles[len(levelStyles)-1]
}

// consoleHandler writes one colored line per record: an optional mark, the
// message, then key=value pairs. Attributes bound through WithAttrs are
// rendered once, qualified by the groups open at the time.
type consoleHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	bound  string
	prefix string
}

func newConsoleHandler(w io.Writer, level slog.Leveler) *consoleHandler {
	if w == nil {
		w = os.Stderr
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &consoleHandler{out: output.New(w), level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	var sb strings.Builder
	if ls.mark != "" {
		sb.WriteString(ls.mark + " ")
	}
	sb.WriteString(r.Message)
	sb.WriteString(h.bound)
	r.Attrs(func(attr slog.Attr) bool {
		sb.WriteString(renderAttr(h.prefix, attr))
		return true
	})

	line := h.out.String(sb.String()).Foreground(termenv.RGBColor(string(ls.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	var sb strings.Builder
	sb.WriteString(h.bound)
	for _, attr := range attrs {
		sb.WriteString(renderAttr(h.prefix, attr))
	}
	next.bound = sb.String()
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// renderAttr formats one attribute as " key=value". Group values expand
// into their members; empty attributes render as nothing.
func renderAttr(prefix string, attr slog.Attr) string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return ""
	}
	if attr.Value.Kind() != slog.KindGroup {
		return " " + prefix + attr.Key + "=" + attr.Value.String()
	}

	inner := prefix
	if attr.Key != "" {
		inner += attr.Key + "."
	}
	var sb strings.Builder
	for _, member := range attr.Value.Group() {
		sb.WriteString(renderAttr(inner, member))
	}
	return sb.String()
}

// SetOutput updates the logger's output destination, keeping the current mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable

	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w, enable))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks the chain. zerr links contribute their own message
// and metadata; the first standard error ends the walk with its full text.
// Links with an empty message only carry metadata, which moves to the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)

	for current := err; current != nil; {
		d, ok := current.(detailer)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		meta := d.Metadata()
		if d.Message() == "" {
			pending = mergeMetadata(pending, meta)
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, ErrorEntry{Message: d.Message(), Metadata: mergeMetadata(pending, meta)})
		pending = nil
		current = errors.Unwrap(current)
	}

	return entries
}

func mergeMetadata(pending, meta map[string]any) map[string]any {
	if len(pending) == 0 {
		return meta
	}
	out := make(map[string]any, len(pending)+len(meta))
	for k, v := range pending {
		out[k] = v
	}
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// formatErrorEntries renders entries as the main error followed by a
// "Caused by:" list. Metadata is printed one sorted key per line under its message.
func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			head, indent = "    → ", "      "
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
