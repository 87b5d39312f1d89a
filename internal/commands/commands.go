// Package commands implements the invocation pipelines behind the four
// playground commands: miri, expand, clippy and fmt. Each invocation is
// independent: it parses its own flags, wraps its own code, owns its result
// and shares nothing with concurrent invocations except the HTTP client's
// connection pool.
package commands

import (
	"context"

	"github.com/google/uuid"

	"playbot/internal/codeblock"
	"playbot/internal/flags"
	"playbot/internal/format"
	"playbot/internal/logging"
	"playbot/internal/playground"
	"playbot/internal/reply"
	"playbot/internal/sanitize"
	"playbot/internal/wrap"
)

// Backend is what the pipelines need from the playground client
type Backend interface {
	Miri(ctx context.Context, code, edition string) (*playground.PlayResult, error)
	MacroExpansion(ctx context.Context, code, edition string) (*playground.PlayResult, error)
	Clippy(ctx context.Context, code, edition string) (*playground.PlayResult, error)
	Format(ctx context.Context, code, edition string) (*playground.PlayResult, error)
}

// Runner holds the collaborators shared by all invocations
type Runner struct {
	client    Backend
	local     *format.LocalRustfmt
	formatter *format.Formatter
	logger    *logging.Logger
}

// NewRunner wires the pipelines to a backend client and a local formatter
func NewRunner(client Backend, local *format.LocalRustfmt, logger *logging.Logger) *Runner {
	return &Runner{
		client:    client,
		local:     local,
		formatter: format.NewFormatter(local, client, logger),
		logger:    logger,
	}
}

// Invocation is one user request as delivered by the transport boundary:
// an ordered key=value flag bag and a (possibly fenced) code block.
type Invocation struct {
	Flags []flags.Pair
	Code  string
}

func (r *Runner) invocationLogger(command string) *logging.Logger {
	return r.logger.With(map[string]interface{}{
		"invocation": uuid.NewString(),
		"command":    command,
	})
}

// Miri runs the code under the undefined-behavior interpreter
func (r *Runner) Miri(ctx context.Context, inv Invocation) (string, error) {
	log := r.invocationLogger("miri")

	code := wrap.MaybeWrap(codeblock.Parse(inv.Code).Code, wrap.Discard)
	fs, parseErrors := flags.Parse(inv.Flags)

	result, err := r.client.Miri(ctx, code.Text(), string(fs.Edition))
	if err != nil {
		log.Error("Miri backend failed", map[string]interface{}{"error": err.Error()})
		return "", err
	}

	result.Stderr = sanitize.ExtractRelevantLines(result.Stderr,
		sanitize.MiriStartMarkers, sanitize.MiriStopMarkers)

	return reply.Render(result, fs, parseErrors), nil
}

// Expand expands the code's macros to their desugared form. Successful
// output is additionally run through the local formatter; any local
// formatting trouble is logged and the unformatted expansion kept.
func (r *Runner) Expand(ctx context.Context, inv Invocation) (string, error) {
	log := r.invocationLogger("expand")

	code := wrap.MaybeWrap(codeblock.Parse(inv.Code).Code, wrap.None)
	fs, parseErrors := flags.Parse(inv.Flags)

	result, err := r.client.MacroExpansion(ctx, code.Text(), string(fs.Edition))
	if err != nil {
		log.Error("Macro expansion backend failed", map[string]interface{}{"error": err.Error()})
		return "", err
	}

	result.Stderr = sanitize.ExtractRelevantLines(result.Stderr,
		sanitize.ExpandStartMarkers, sanitize.ExpandStopMarkers)

	if result.Success {
		formatted, err := r.local.Format(ctx, result.Stdout, string(fs.Edition))
		switch {
		case err != nil:
			log.Warn("Could not run local rustfmt on expansion", map[string]interface{}{
				"error": err.Error(),
			})
		case !formatted.Success:
			log.Warn("Local rustfmt rejected expanded code", map[string]interface{}{
				"stderr": formatted.Stderr,
			})
		default:
			result.Stdout = formatted.Stdout
		}
	}

	if code.Wrapped() && result.Success {
		result.Stdout = wrap.StripMainBoilerplate(result.Stdout, wrap.None)
	}

	return reply.Render(result, fs, parseErrors), nil
}

// Clippy lints the code
func (r *Runner) Clippy(ctx context.Context, inv Invocation) (string, error) {
	log := r.invocationLogger("clippy")

	code := wrap.MaybeWrap(codeblock.Parse(inv.Code).Code, wrap.Discard)
	fs, parseErrors := flags.Parse(inv.Flags)

	result, err := r.client.Clippy(ctx, code.Text(), string(fs.Edition))
	if err != nil {
		log.Error("Clippy backend failed", map[string]interface{}{"error": err.Error()})
		return "", err
	}

	result.Stderr = sanitize.ExtractRelevantLines(result.Stderr,
		sanitize.ClippyStartMarkers, sanitize.ClippyStopMarkers)

	return reply.Render(result, fs, parseErrors), nil
}

// Fmt formats the code, local tool first with remote fallback
func (r *Runner) Fmt(ctx context.Context, inv Invocation) (string, error) {
	log := r.invocationLogger("fmt")

	code := wrap.MaybeWrap(codeblock.Parse(inv.Code).Code, wrap.None)
	fs, parseErrors := flags.Parse(inv.Flags)

	result, err := r.formatter.Format(ctx, code.Text(), string(fs.Edition))
	if err != nil {
		log.Error("Formatting failed", map[string]interface{}{"error": err.Error()})
		return "", err
	}

	if code.Wrapped() && result.Success {
		result.Stdout = wrap.StripMainBoilerplate(result.Stdout, wrap.None)
	}

	return reply.Render(result, fs, parseErrors), nil
}
