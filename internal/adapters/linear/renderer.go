// Package linear renders traversal results line by line, as text or JSON.
package linear

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/asyncwalk/internal/ui/output"
	"go.trai.ch/asyncwalk/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Format selects between human-readable lines and JSON lines.
type Format uint8

const (
	// FormatText prints one colored line per entry.
	FormatText Format = iota
	// FormatJSON prints one JSON object per entry, error and summary.
	FormatJSON
)

// Renderer implements ports.Renderer for pipes, CI and scripts.
// Entries go to stdout; errors and the summary go to stderr in text mode.
// In JSON mode everything is a record on stdout.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output
	format Format

	mu  sync.Mutex
	enc *json.Encoder
}

// NewRenderer creates a renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer, format Format) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.NewWithProfile(stdout, output.ColorProfileANSI),
		errOut: output.NewWithProfile(stderr, output.ColorProfileANSI),
		format: format,
		enc:    json.NewEncoder(stdout),
	}
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop is a no-op; every line is written as it arrives.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op for the linear renderer.
func (r *Renderer) Wait() error {
	return nil
}

type entryRecord struct {
	Type    string     `json:"type"`
	Path    string     `json:"path"`
	Name    string     `json:"name"`
	Kind    string     `json:"kind"`
	Depth   int        `json:"depth"`
	Mode    string     `json:"mode,omitempty"`
	Size    *int64     `json:"size,omitempty"`
	ModTime *time.Time `json:"mod_time,omitempty"`
}

type errorRecord struct {
	Type  string `json:"type"`
	Path  string `json:"path,omitempty"`
	Op    string `json:"op,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Root  bool   `json:"root,omitempty"`
	Error string `json:"error"`
}

type summaryRecord struct {
	Type string `json:"type"`
	domain.Summary
	ElapsedMS int64 `json:"elapsed_ms"`
}

// OnEntry prints one entry. meta is nil unless metadata was requested.
func (r *Renderer) OnEntry(entry *domain.Entry, meta *domain.Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format == FormatJSON {
		rec := entryRecord{
			Type:  "entry",
			Path:  entry.Path(),
			Name:  entry.Name(),
			Kind:  entry.Kind().String(),
			Depth: entry.Depth(),
		}
		if meta != nil {
			size, mod := meta.Size, meta.ModTime.UTC()
			rec.Mode = meta.Mode.String()
			rec.Size = &size
			rec.ModTime = &mod
		}
		_ = r.enc.Encode(rec)
		return
	}

	name := entry.Path()
	switch entry.Kind() {
	case domain.KindDir:
		name += "/"
	case domain.KindSymlink:
		name += "@"
	default:
	}
	name = r.out.String(name).Foreground(r.out.Color(string(style.KindColor(entry.Kind().String())))).String()

	if meta == nil {
		_, _ = fmt.Fprintln(r.stdout, name)
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "%s %10d %s %s\n",
		meta.Mode.String(), meta.Size, meta.ModTime.UTC().Format("2006-01-02 15:04"), name)
}

// OnError prints one per-path error.
func (r *Renderer) OnError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var te *domain.TraversalError
	isTraversal := errors.As(err, &te)

	if r.format == FormatJSON {
		rec := errorRecord{Type: "error", Error: err.Error()}
		if isTraversal {
			rec.Path = te.Path
			rec.Op = string(te.Op)
			rec.Kind = te.Kind().String()
			rec.Root = te.Root
			rec.Error = te.Err.Error()
		}
		_ = r.enc.Encode(rec)
		return
	}

	symbol := r.errOut.String(style.Cross).Foreground(termenv.ANSIRed).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %v\n", symbol, err)
}

// OnSummary prints the closing summary.
func (r *Renderer) OnSummary(s domain.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format == FormatJSON {
		_ = r.enc.Encode(summaryRecord{Type: "summary", Summary: s, ElapsedMS: s.Elapsed.Milliseconds()})
		return
	}

	_, _ = fmt.Fprintln(r.stderr, r.summaryLine(s))
}

func (r *Renderer) summaryLine(s domain.Summary) string {
	symbol := r.errOut.String(style.Check).Foreground(termenv.ANSIGreen).String()
	if s.Errors > 0 {
		symbol = r.errOut.String(style.Cross).Foreground(termenv.ANSIRed).String()
	}

	line := fmt.Sprintf("%s %d entries (%d dirs, %d files, %d symlinks, %d other), %d errors",
		symbol, s.Entries, s.Dirs, s.Files, s.Symlinks, s.Other, s.Errors)
	if s.Bytes > 0 {
		line += ", " + humanize.IBytes(uint64(s.Bytes))
	}
	return line + " in " + s.Elapsed.Round(time.Millisecond).String()
}
