// Package notification delivers order notification links to the operator.
package notification

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// LinkPrinter writes each link on its own line
type LinkPrinter struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
}

// NewLinkPrinter creates a LinkPrinter. prefix is written before every link.
func NewLinkPrinter(w io.Writer, prefix string) *LinkPrinter {
	return &LinkPrinter{w: w, prefix: prefix}
}

// Open prints the link
func (p *LinkPrinter) Open(ctx context.Context, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintf(p.w, "%s%s\n", p.prefix, link)
	return err
}

// CommandOpener launches the platform URL handler and falls back to a
// LinkPrinter when that fails
type CommandOpener struct {
	name     string
	args     []string
	fallback *LinkPrinter
	logger   *zap.Logger
}

// NewCommandOpener picks the URL handler of the running OS
func NewCommandOpener(fallback *LinkPrinter, logger *zap.Logger) *CommandOpener {
	name, args := browserCommand(runtime.GOOS)
	return &CommandOpener{name: name, args: args, fallback: fallback, logger: logger}
}

func browserCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// Open starts the handler without waiting for it to exit. The process
// outlives ctx.
func (o *CommandOpener) Open(ctx context.Context, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	args := append(append([]string(nil), o.args...), link)
	cmd := exec.Command(o.name, args...)
	if err := cmd.Start(); err != nil {
		o.logger.Debug("URL handler unavailable",
			zap.String("command", o.name),
			zap.Error(err),
		)
		if o.fallback == nil {
			return fmt.Errorf("open link with %s: %w", o.name, err)
		}
		return o.fallback.Open(ctx, link)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
