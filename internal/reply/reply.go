// Package reply renders the final outcome of an invocation into the message
// handed to the transport layer. It is the outer boundary of the pipeline:
// everything here is presentation, the transport only has to deliver the
// string (and truncate it if its medium demands that).
package reply

import (
	"strings"

	"playbot/internal/flags"
	"playbot/internal/playground"
)

// Render builds the user-facing message from the sanitized result, the
// parsed flags and any soft flag-parse errors. On success stdout is the
// primary content and stderr is only surfaced as warnings when asked for;
// on failure the diagnostics lead.
func Render(result *playground.PlayResult, fs flags.FlagSet, parseErrors []string) string {
	var sections []string

	if result.Success {
		if result.Stdout != "" {
			sections = append(sections, fence(result.Stdout))
		}
		if fs.Warn && result.Stderr != "" {
			sections = append(sections, "Warnings:\n"+fence(result.Stderr))
		}
	} else {
		if result.Stderr != "" {
			sections = append(sections, fence(result.Stderr))
		}
		if result.Stdout != "" {
			sections = append(sections, fence(result.Stdout))
		}
	}

	if len(sections) == 0 {
		sections = append(sections, "Empty result, no diagnostics")
	}

	for _, e := range parseErrors {
		sections = append(sections, "Warning: "+e)
	}

	return strings.Join(sections, "\n")
}

func fence(text string) string {
	return "```rust\n" + strings.TrimRight(text, "\n") + "\n```"
}

// GenericHelp is the static help metadata exposed per command
type GenericHelp struct {
	// Command is the invocation name, e.g. "clippy"
	Command string
	// Desc is the one-line description
	Desc string
	// ModeAndChannel controls whether mode/channel flags are documented
	ModeAndChannel bool
	// Warn controls whether the warn flag is documented
	Warn bool
	// ExampleCode is the snippet shown in the usage example
	ExampleCode string
}

// Render produces the command's help text with its documented flags
func (h GenericHelp) Render() string {
	var b strings.Builder
	b.WriteString(h.Desc)
	b.WriteString(". All code is executed on the playground.\n")
	b.WriteString("```rust\n?")
	b.WriteString(h.Command)
	b.WriteString(" ")
	if h.ModeAndChannel {
		b.WriteString("mode={} channel={} ")
	}
	b.WriteString("edition={} ")
	if h.Warn {
		b.WriteString("warn={} ")
	}
	b.WriteString(h.ExampleCode)
	b.WriteString("\n```")
	return b.String()
}
