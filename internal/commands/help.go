package commands

import "playbot/internal/reply"

// Help metadata per command, rendered by the transport's help surface.

func MiriHelp() reply.GenericHelp {
	return reply.GenericHelp{
		Command: "miri",
		Desc: "Execute this program in the Miri interpreter to detect certain cases of undefined " +
			"behavior (like out-of-bounds memory access)",
		ModeAndChannel: false,
		// miri mixes warnings, errors and output in one field, so there is
		// nothing to filter with warn
		Warn:        false,
		ExampleCode: "code",
	}
}

func ExpandHelp() reply.GenericHelp {
	return reply.GenericHelp{
		Command:        "expand",
		Desc:           "Expand macros to their raw desugared form",
		ModeAndChannel: false,
		Warn:           false,
		ExampleCode:    "code",
	}
}

func ClippyHelp() reply.GenericHelp {
	return reply.GenericHelp{
		Command:        "clippy",
		Desc:           "Catch common mistakes and improve the code using the Clippy linter",
		ModeAndChannel: false,
		Warn:           false,
		ExampleCode:    "code",
	}
}

func FmtHelp() reply.GenericHelp {
	return reply.GenericHelp{
		Command:        "fmt",
		Desc:           "Format code using rustfmt",
		ModeAndChannel: false,
		Warn:           false,
		ExampleCode:    "code",
	}
}
