package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/san-kum/animfetch/internal/logging"
)

var ErrNoCommand = errors.New("fetch: empty command")

// Command runs an external program and uses its standard output.
// No timeout is applied; a hanging command stalls the caller.
type Command struct {
	Args   []string
	Logger *slog.Logger
}

func NewCommand(line string, logger *slog.Logger) *Command {
	return &Command{Args: ParseCommand(line), Logger: logging.OrNop(logger)}
}

// Run executes the command and returns its split output.
func (c *Command) Run(ctx context.Context) (Block, error) {
	if len(c.Args) == 0 {
		return nil, ErrNoCommand
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("fetch: %s: %w (stderr: %q)", c.Args[0], err, bytes.TrimSpace(stderr.Bytes()))
	}
	return Split(stdout.String()), nil
}

// Lines runs the command, logging and swallowing any failure so the
// animation keeps going with an empty panel.
func (c *Command) Lines(ctx context.Context) Block {
	lines, err := c.Run(ctx)
	if err != nil {
		logging.OrNop(c.Logger).Warn("system info unavailable", "cmd", c.Args, "error", err)
		return nil
	}
	return lines
}
