// Package fetch supplies the system information text block shown next to
// the animation.
package fetch

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// DefaultCommand is the command line used when none is configured.
const DefaultCommand = "fastfetch -l none --pipe false"

// Builtin selects the in-process System source instead of a command.
const Builtin = "builtin"

// Block is an ordered snapshot of text lines. A refresh replaces it whole.
type Block []string

// Source produces a fresh Block. Failures yield an empty block.
type Source interface {
	Lines(ctx context.Context) Block
}

// Static always returns the same lines.
type Static Block

func (s Static) Lines(context.Context) Block {
	out := make(Block, len(s))
	copy(out, s)
	return out
}

// Split breaks command output into lines, dropping trailing blank lines and
// trailing whitespace at the end of the output.
func Split(out string) Block {
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.TrimRight(out, " \t\r\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// ParseCommand splits a command line on whitespace.
func ParseCommand(line string) []string {
	return strings.Fields(line)
}

// New picks the source for a configured command line: the builtin
// gopsutil source, nothing for an empty line, or an external command.
func New(line string, logger *slog.Logger) Source {
	switch strings.TrimSpace(line) {
	case "":
		return Static(nil)
	case Builtin:
		return NewSystem(logger)
	default:
		return NewCommand(line, logger)
	}
}

type primed struct {
	once  sync.Once
	first Block
	src   Source
}

// Lines is safe for concurrent use. Exactly one caller gets the primed
// block; everyone else reads src.
func (p *primed) Lines(ctx context.Context) Block {
	first := false
	p.once.Do(func() { first = true })
	if first {
		return p.first
	}
	return p.src.Lines(ctx)
}

// Prime reads src once and returns that block together with a source that
// hands the same block back on its first call. Callers that size things
// from the text block use it to avoid running the command twice.
func Prime(ctx context.Context, src Source) (Block, Source) {
	first := src.Lines(ctx)
	return first, &primed{first: first, src: src}
}
