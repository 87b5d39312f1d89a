// Package codeblock extracts the code out of a fenced snippet as delivered
// by the command boundary. A leading language tag on the opening fence is
// recognized and dropped; text without fences passes through unchanged.
package codeblock

import "strings"

// CodeBlock represents a fenced code snippet
type CodeBlock struct {
	// Language is the declared language tag, e.g. "rust"; may be empty.
	// Downstream stages ignore it.
	Language string
	// Code is the snippet with fences stripped
	Code string
}

// Parse strips a surrounding ``` fence pair (and an optional language tag on
// the opening fence) or a surrounding inline ` pair from raw. Unfenced input
// is returned as-is with an empty language.
func Parse(raw string) CodeBlock {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") && len(text) > 6 {
		inner := text[3 : len(text)-3]
		lang := ""
		if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
			head := strings.TrimSpace(inner[:nl])
			if head != "" && !strings.ContainsAny(head, " \t") {
				lang = head
				inner = inner[nl+1:]
			}
		}
		return CodeBlock{Language: lang, Code: strings.Trim(inner, "\n")}
	}

	if strings.HasPrefix(text, "`") && strings.HasSuffix(text, "`") && len(text) > 2 {
		return CodeBlock{Code: strings.Trim(text, "`")}
	}

	return CodeBlock{Code: text}
}
