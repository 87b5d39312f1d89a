package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playbot/internal/errors"
	"playbot/internal/flags"
	"playbot/internal/format"
	"playbot/internal/logging"
	"playbot/internal/playground"
)

// backendFake records what each pipeline sends and answers with canned results
type backendFake struct {
	lastCode    string
	lastEdition string
	result      *playground.PlayResult
	err         error
	formatCalls int
}

func (b *backendFake) record(code, edition string) (*playground.PlayResult, error) {
	b.lastCode = code
	b.lastEdition = edition
	if b.err != nil {
		return nil, b.err
	}
	// copy so pipelines can mutate their own result
	r := *b.result
	return &r, nil
}

func (b *backendFake) Miri(ctx context.Context, code, edition string) (*playground.PlayResult, error) {
	return b.record(code, edition)
}

func (b *backendFake) MacroExpansion(ctx context.Context, code, edition string) (*playground.PlayResult, error) {
	return b.record(code, edition)
}

func (b *backendFake) Clippy(ctx context.Context, code, edition string) (*playground.PlayResult, error) {
	return b.record(code, edition)
}

func (b *backendFake) Format(ctx context.Context, code, edition string) (*playground.PlayResult, error) {
	b.formatCalls++
	return b.record(code, edition)
}

func newTestRunner(backend *backendFake) *Runner {
	logger := logging.NewLogger(logging.Config{Level: logging.ErrorLevel})
	local := &format.LocalRustfmt{Command: "definitely-not-a-real-binary-xyz"}
	return NewRunner(backend, local, logger)
}

func TestMiriWrapsBareSnippet(t *testing.T) {
	backend := &backendFake{result: &playground.PlayResult{Success: true, Stdout: "ok"}}
	r := newTestRunner(backend)

	_, err := r.Miri(context.Background(), Invocation{Code: "1 + 1"})
	require.NoError(t, err)

	assert.Contains(t, backend.lastCode, "fn main() {")
	assert.Contains(t, backend.lastCode, "let _ = {")
	assert.Contains(t, backend.lastCode, "1 + 1")
	assert.Equal(t, string(flags.DefaultEdition), backend.lastEdition)
}

func TestMiriSanitizesStderr(t *testing.T) {
	backend := &backendFake{result: &playground.PlayResult{
		Success: false,
		Stderr: "   Compiling playground v0.0.1\n" +
			"     Running `/playground/target/debug/playground`\n" +
			"error: Undefined Behavior: out-of-bounds pointer use\n" +
			"error: aborting due to previous error\n" +
			"extra chatter\n",
	}}
	r := newTestRunner(backend)

	got, err := r.Miri(context.Background(), Invocation{Code: "1 + 1"})
	require.NoError(t, err)

	assert.Contains(t, got, "Undefined Behavior")
	assert.NotContains(t, got, "Compiling playground")
	assert.NotContains(t, got, "aborting")
	assert.NotContains(t, got, "extra chatter")
}

func TestMiriHardErrorGivesNoPartialReply(t *testing.T) {
	backend := &backendFake{err: errors.New(errors.NetworkError, "down")}
	r := newTestRunner(backend)

	got, err := r.Miri(context.Background(), Invocation{Code: "1 + 1"})
	require.Error(t, err)
	assert.Empty(t, got)
	assert.True(t, errors.IsHard(err))
}

func TestExpandEndToEnd(t *testing.T) {
	// bare expression goes in, gets wrapped; the backend's stderr is pure
	// cargo chatter ending on the start marker, so the reply carries only
	// the (boilerplate-stripped) expansion
	backend := &backendFake{result: &playground.PlayResult{
		Success: true,
		Stdout:  "fn main() {\n    2\n}",
		Stderr:  "   Compiling playground v0.0.1\n    Finished dev [unoptimized + debuginfo] target(s)\n",
	}}
	r := newTestRunner(backend)

	got, err := r.Expand(context.Background(), Invocation{Code: "1 + 1"})
	require.NoError(t, err)

	assert.Contains(t, backend.lastCode, "fn main() {")
	assert.Contains(t, got, "2")
	assert.NotContains(t, got, "fn main", "wrapper boilerplate should be stripped")
	assert.NotContains(t, got, "Compiling")
	assert.NotContains(t, got, "Finished")
}

func TestExpandKeepsExistingMainUnstripped(t *testing.T) {
	backend := &backendFake{result: &playground.PlayResult{
		Success: true,
		Stdout:  "fn main() {\n    println!(\"hi\");\n}",
	}}
	r := newTestRunner(backend)

	got, err := r.Expand(context.Background(), Invocation{Code: "fn main() { println!(\"hi\") }"})
	require.NoError(t, err)

	assert.Contains(t, got, "fn main", "user's own fn main must survive")
}

func TestClippyFlagParseErrorsAreSoft(t *testing.T) {
	backend := &backendFake{result: &playground.PlayResult{Success: true, Stdout: "clean"}}
	r := newTestRunner(backend)

	got, err := r.Clippy(context.Background(), Invocation{
		Flags: []flags.Pair{{Key: "bogus", Value: "1"}},
		Code:  "1 + 1",
	})
	require.NoError(t, err, "unknown flags must not abort the invocation")
	assert.Contains(t, got, "clean")
	assert.Contains(t, got, "bogus")
}

func TestClippyHonorsEditionFlag(t *testing.T) {
	backend := &backendFake{result: &playground.PlayResult{Success: true}}
	r := newTestRunner(backend)

	_, err := r.Clippy(context.Background(), Invocation{
		Flags: []flags.Pair{{Key: "edition", Value: "2018"}},
		Code:  "1 + 1",
	})
	require.NoError(t, err)
	assert.Equal(t, "2018", backend.lastEdition)
}

func TestFmtFallsBackToRemoteOnce(t *testing.T) {
	// the local tool is unusable in newTestRunner, so fmt must hit the
	// remote formatter exactly once and strip the wrapper from its output
	backend := &backendFake{result: &playground.PlayResult{
		Success: true,
		Stdout:  "fn main() {\n    1 + 1\n}",
	}}
	r := newTestRunner(backend)

	got, err := r.Fmt(context.Background(), Invocation{Code: "1 + 1"})
	require.NoError(t, err)

	assert.Equal(t, 1, backend.formatCalls)
	assert.Contains(t, got, "1 + 1")
	assert.NotContains(t, got, "fn main")
}

func TestFmtKeepsUserDiscardBlock(t *testing.T) {
	// a snippet that is itself a `let _ = { ... };` statement gets wrapped
	// for formatting; stripping must remove only the synthesized fn main
	// shell, not the user's own block
	backend := &backendFake{result: &playground.PlayResult{
		Success: true,
		Stdout:  "fn main() {\n    let _ = {\n        1 + 1\n    };\n}",
	}}
	r := newTestRunner(backend)

	got, err := r.Fmt(context.Background(), Invocation{Code: "let _ = {\n    1 + 1\n};"})
	require.NoError(t, err)

	assert.Contains(t, got, "let _ = {")
	assert.Contains(t, got, "};")
	assert.NotContains(t, got, "fn main")
}

func TestFmtRemoteFailurePropagates(t *testing.T) {
	backend := &backendFake{err: errors.New(errors.NetworkError, "down")}
	r := newTestRunner(backend)

	got, err := r.Fmt(context.Background(), Invocation{Code: "1 + 1"})
	require.Error(t, err)
	assert.Empty(t, got)
}

func TestFmtStripsFencedInput(t *testing.T) {
	backend := &backendFake{result: &playground.PlayResult{Success: true, Stdout: "fn main() {}"}}
	r := newTestRunner(backend)

	_, err := r.Fmt(context.Background(), Invocation{Code: "```rust\nfn main() {}\n```"})
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}", backend.lastCode, "fences and language tag must be stripped")
}

func TestHelpDescriptors(t *testing.T) {
	for _, h := range []struct {
		name string
		help string
	}{
		{"miri", MiriHelp().Render()},
		{"expand", ExpandHelp().Render()},
		{"clippy", ClippyHelp().Render()},
		{"fmt", FmtHelp().Render()},
	} {
		if !strings.Contains(h.help, "?"+h.name) {
			t.Errorf("%s help missing usage line: %q", h.name, h.help)
		}
		if !strings.Contains(h.help, "edition={}") {
			t.Errorf("%s help missing edition flag: %q", h.name, h.help)
		}
	}
}
