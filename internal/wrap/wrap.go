// Package wrap decides whether a submitted snippet needs a synthesized
// fn main around it, and can later strip that wrapper back out of formatted
// output. Whether wrapping happened is carried as an explicit tag on the
// Code value, not re-derived from the text, so the stripping step only ever
// runs on code this package actually wrapped.
package wrap

import "strings"

// mainSignature is the textual entry-point heuristic. Deliberately a
// containment check, not a parse; the lint backend's crate-type inference
// relies on the exact same check.
const mainSignature = "fn main"

const (
	wrapperOpen  = "fn main() {"
	wrapperClose = "}"
	discardOpen  = "let _ = {"
	discardClose = "};"
	indent       = "    "
)

// ResultHandling governs what the synthesized wrapper does with the value of
// the snippet's final expression.
type ResultHandling int

const (
	// None preserves the body unchanged, leaving the final expression's
	// value visible to the backend
	None ResultHandling = iota
	// Discard consumes the value with a `let _ = { ... };` block
	Discard
)

// Code is a snippet plus the record of whether it was wrapped.
type Code struct {
	text    string
	wrapped bool
}

// Original tags text as user code that was left untouched
func Original(text string) Code {
	return Code{text: text}
}

// Text returns the code text, wrapped or not
func (c Code) Text() string {
	return c.text
}

// Wrapped reports whether the entry-point wrapper was synthesized
func (c Code) Wrapped() bool {
	return c.wrapped
}

// ContainsMain reports whether code textually contains an entry-point
// function signature.
func ContainsMain(code string) bool {
	return strings.Contains(code, mainSignature)
}

// MaybeWrap wraps code in a synthesized fn main unless it already has one.
// Inner attributes (#![...]) at the top of the snippet are hoisted above the
// wrapper so they stay at crate level.
func MaybeWrap(code string, handling ResultHandling) Code {
	if ContainsMain(code) {
		return Original(code)
	}

	lines := strings.Split(code, "\n")

	var b strings.Builder

	// hoist leading inner attributes out of the future function body
	i := 0
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#![") {
			if trimmed != "" {
				b.WriteString(trimmed)
				b.WriteString("\n")
			}
			continue
		}
		break
	}

	b.WriteString(wrapperOpen)
	b.WriteString("\n")

	depth := 1
	if handling == Discard {
		b.WriteString(indent)
		b.WriteString(discardOpen)
		b.WriteString("\n")
		depth = 2
	}

	for _, line := range lines[i:] {
		if line != "" {
			b.WriteString(strings.Repeat(indent, depth))
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if handling == Discard {
		b.WriteString(indent)
		b.WriteString(discardClose)
		b.WriteString("\n")
	}
	b.WriteString(wrapperClose)

	return Code{text: b.String(), wrapped: true}
}

// StripMainBoilerplate removes the synthesized fn main shell from formatted
// output, undoing the wrapper's indentation. The inner discard shell is only
// unwrapped when handling is Discard, the sole mode that injects one; a
// user's own `let _ = { ... };` statement is indistinguishable by text
// alone and must survive. Text without a recognizable shell is returned
// unchanged, so the function is safe on output the formatter rewrote beyond
// recognition.
func StripMainBoilerplate(text string, handling ResultHandling) string {
	open := strings.Index(text, wrapperOpen)
	if open < 0 {
		return text
	}
	end := strings.LastIndex(text, wrapperClose)
	if end < open+len(wrapperOpen) {
		return text
	}

	// anything hoisted above the wrapper stays
	prefix := text[:open]

	body := strings.Trim(text[open+len(wrapperOpen):end], "\n")
	lines := dedent(strings.Split(body, "\n"))

	// unwrap the discard shell only when this wrapper injected one
	if handling == Discard && len(lines) >= 2 &&
		strings.TrimSpace(lines[0]) == discardOpen &&
		strings.TrimSpace(lines[len(lines)-1]) == discardClose {
		lines = dedent(lines[1 : len(lines)-1])
	}

	return prefix + strings.Join(lines, "\n")
}

// dedent strips one indent level where present
func dedent(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, indent)
	}
	return out
}
