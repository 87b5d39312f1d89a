// Package sanitize reduces a backend's noisy diagnostic text to the window
// the user cares about: the lines between a known start marker and a known
// stop marker, with the compiler chatter outside that window discarded.
package sanitize

import "strings"

// Marker sets per backend, matching the diagnostic framing each one emits.
var (
	// MiriStartMarkers open the window on the interpreter's run line
	MiriStartMarkers = []string{"Running `/playground"}
	// MiriStopMarkers close the window at the aborting diagnostic
	MiriStopMarkers = []string{"error: aborting"}

	ExpandStartMarkers = []string{"Finished ", "Compiling playground"}
	ExpandStopMarkers  = []string{"error: aborting"}

	ClippyStartMarkers = []string{"Checking playground", "Running `/playground"}
	ClippyStopMarkers  = []string{
		"error: aborting",
		"1 warning emitted",
		"warnings emitted",
		"Finished ",
	}
)

// ExtractRelevantLines keeps the window between a start-marker line and a
// stop-marker line. The window opens after the last line containing any
// start marker (several marker lines in a row are all compiler chatter, so
// only the final one counts) and closes before the first stop-marker line
// after that; both marker lines are consumed.
//
// When no start marker occurs anywhere the window opens at the top instead,
// so sanitizing never silently drops all output; stop markers then apply
// from line 0. A line matching both a start and a stop marker counts as the
// start. Text containing no markers at all comes back unchanged, which
// makes the function idempotent on already-sanitized output.
func ExtractRelevantLines(text string, startMarkers, stopMarkers []string) string {
	lines := strings.Split(text, "\n")

	// start-match wins on a line containing both kinds of marker: start
	// lines are located first and stop markers only scanned after them
	start := 0
	for i := len(lines) - 1; i >= 0; i-- {
		if containsAny(lines[i], startMarkers) {
			start = i + 1
			break
		}
	}

	stop := len(lines)
	for i := start; i < len(lines); i++ {
		if containsAny(lines[i], stopMarkers) {
			stop = i
			break
		}
	}

	if start == 0 && stop == len(lines) {
		return text
	}

	return strings.Trim(strings.Join(lines[start:stop], "\n"), "\n")
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
