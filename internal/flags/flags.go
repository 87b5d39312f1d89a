// Package flags turns the free-form key=value bag attached to a command
// into a typed FlagSet. Parsing never fails hard: bad values and unknown
// keys are collected as human-readable parse errors and reported alongside
// the FlagSet, which keeps its defaults for anything unparseable.
package flags

import "fmt"

// Edition identifies a Rust language edition
type Edition string

const (
	Edition2015 Edition = "2015"
	Edition2018 Edition = "2018"
	Edition2021 Edition = "2021"
	Edition2024 Edition = "2024"
)

// DefaultEdition is the latest stable edition
const DefaultEdition = Edition2024

// Channel identifies a Rust toolchain channel
type Channel string

const (
	ChannelStable  Channel = "stable"
	ChannelBeta    Channel = "beta"
	ChannelNightly Channel = "nightly"
)

// Mode identifies a build mode
type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

// FlagSet is the typed configuration parsed from a command's flag bag
type FlagSet struct {
	Edition Edition
	Channel Channel
	Mode    Mode
	// Warn controls whether compiler warnings are surfaced on success
	Warn bool
}

// Default returns a FlagSet with every field at its default
func Default() FlagSet {
	return FlagSet{
		Edition: DefaultEdition,
		Channel: ChannelStable,
		Mode:    ModeDebug,
		Warn:    false,
	}
}

// Pair is one key=value flag as delivered by the command boundary.
// Order is preserved so parse errors come out in encounter order.
type Pair struct {
	Key   string
	Value string
}

// Parse populates a FlagSet from the given pairs. Recognized keys with
// invalid values push the raw flag text onto the error list and leave the
// field at its default; unrecognized keys are reported verbatim. The error
// list is nil when everything parsed.
func Parse(pairs []Pair) (FlagSet, []string) {
	fs := Default()
	var parseErrors []string

	for _, p := range pairs {
		switch p.Key {
		case "edition":
			switch Edition(p.Value) {
			case Edition2015, Edition2018, Edition2021, Edition2024:
				fs.Edition = Edition(p.Value)
			default:
				parseErrors = append(parseErrors, fmt.Sprintf("invalid edition in `%s=%s`", p.Key, p.Value))
			}
		case "channel":
			switch Channel(p.Value) {
			case ChannelStable, ChannelBeta, ChannelNightly:
				fs.Channel = Channel(p.Value)
			default:
				parseErrors = append(parseErrors, fmt.Sprintf("invalid channel in `%s=%s`", p.Key, p.Value))
			}
		case "mode":
			switch Mode(p.Value) {
			case ModeDebug, ModeRelease:
				fs.Mode = Mode(p.Value)
			default:
				parseErrors = append(parseErrors, fmt.Sprintf("invalid mode in `%s=%s`", p.Key, p.Value))
			}
		case "warn":
			switch p.Value {
			case "true", "1", "yes":
				fs.Warn = true
			case "false", "0", "no":
				fs.Warn = false
			default:
				parseErrors = append(parseErrors, fmt.Sprintf("invalid bool in `%s=%s`", p.Key, p.Value))
			}
		default:
			parseErrors = append(parseErrors, fmt.Sprintf("unknown flag `%s=%s`", p.Key, p.Value))
		}
	}

	return fs, parseErrors
}
