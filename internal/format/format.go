// Package format applies the code-formatting transform with a
// local-tool-first policy: the configured rustfmt binary is tried first and
// the remote formatter backend only steps in when the local tool cannot be
// executed at all. A formatting failure reported by a tool that did run is
// a result, not a reason to fall back.
package format

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"playbot/internal/errors"
	"playbot/internal/logging"
	"playbot/internal/playground"
)

// Func is one formatting attempt in the fallback chain
type Func func(ctx context.Context, code, edition string) (*playground.PlayResult, error)

// LocalRustfmt runs the rustfmt binary with the code on stdin
type LocalRustfmt struct {
	// Command is the rustfmt binary; resolved via PATH when not absolute
	Command string
}

// Format runs rustfmt. A non-zero exit is a reported formatting failure
// (Success=false, diagnostics in Stderr); a failure to execute the binary at
// all surfaces as LOCAL_TOOL_UNAVAILABLE so the caller can fall back.
func (f *LocalRustfmt) Format(ctx context.Context, code, edition string) (*playground.PlayResult, error) {
	cmd := exec.CommandContext(ctx, f.Command, "--edition", edition, "--color", "never")
	cmd.Stdin = strings.NewReader(code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return &playground.PlayResult{
				Success: false,
				Stdout:  stdout.String(),
				Stderr:  stderr.String(),
			}, nil
		}
		return nil, errors.Wrap(errors.LocalToolUnavailable, "could not execute "+f.Command, err)
	}

	return &playground.PlayResult{
		Success: true,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}, nil
}

// Formatter drives an ordered chain of formatting attempts
type Formatter struct {
	attempts []attempt
	logger   *logging.Logger
}

type attempt struct {
	name string
	fn   Func
}

// RemoteFormatter is the remote fallback contract, satisfied by the
// playground client
type RemoteFormatter interface {
	Format(ctx context.Context, code, edition string) (*playground.PlayResult, error)
}

// NewFormatter builds the standard local-then-remote chain
func NewFormatter(local *LocalRustfmt, remote RemoteFormatter, logger *logging.Logger) *Formatter {
	return &Formatter{
		attempts: []attempt{
			{name: "local rustfmt", fn: local.Format},
			{name: "playground format backend", fn: remote.Format},
		},
		logger: logger,
	}
}

// Format tries each attempt in order. A LOCAL_TOOL_UNAVAILABLE failure is
// soft: it is logged and the next attempt runs. Any other error propagates
// as the invocation's terminal error, as does exhausting the chain.
func (f *Formatter) Format(ctx context.Context, code, edition string) (*playground.PlayResult, error) {
	var lastErr error
	for _, a := range f.attempts {
		result, err := a.fn(ctx, code, edition)
		if err == nil {
			return result, nil
		}
		if !errors.IsCode(err, errors.LocalToolUnavailable) {
			return nil, err
		}
		f.logger.Warn("Formatting attempt unavailable, falling back", map[string]interface{}{
			"attempt": a.name,
			"error":   err.Error(),
		})
		lastErr = err
	}
	return nil, lastErr
}
