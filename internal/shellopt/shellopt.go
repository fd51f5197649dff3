// Package shellopt represents the shell-or-direct-exec option for spawning
// benchmarked commands.
package shellopt

import (
	"runtime"

	"github.com/mattn/go-shellwords"
)

// Option is the tagged variant of how a command is launched: either
// directly (no intermediate shell) or through a named shell's argv.
type Option interface {
	isOption()
}

// Direct executes the tokenized command with no intermediate shell.
type Direct struct{}

func (Direct) isOption() {}

// Named launches commands through a configured shell program. Argv[0] is
// the shell binary; the remaining elements (if any) are extra arguments
// prepended before the "-c"/"/c" + command-string pair.
type Named struct {
	Argv []string
}

func (Named) isOption() {}

// Default returns the platform default shell option.
func Default() Named {
	if runtime.GOOS == "windows" {
		return Named{Argv: []string{"cmd.exe"}}
	}
	return Named{Argv: []string{"/bin/sh"}}
}

// Parse interprets a --shell flag value. "none" disables the shell;
// anything else is tokenized as an argv using POSIX-style quoting.
func Parse(raw string) (Option, error) {
	if raw == "none" {
		return Direct{}, nil
	}
	parser := shellwords.NewParser()
	argv, err := parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, errEmptyShell
	}
	return Named{Argv: argv}, nil
}

// BuildArgv constructs the process argv for launching commandString under
// the given shell option: for Direct, the tokenized command itself; for
// Named, the shell's argv plus the "-c"/"/c" switch and the command string.
func BuildArgv(opt Option, commandString string) ([]string, error) {
	switch o := opt.(type) {
	case Direct:
		parser := shellwords.NewParser()
		argv, err := parser.Parse(commandString)
		if err != nil {
			return nil, err
		}
		return argv, nil
	case Named:
		switchFlag := "-c"
		if runtime.GOOS == "windows" && len(o.Argv) > 0 && o.Argv[0] == "cmd.exe" {
			switchFlag = "/c"
		}
		argv := append([]string{}, o.Argv...)
		argv = append(argv, switchFlag, commandString)
		return argv, nil
	default:
		return nil, errUnknownShellOption
	}
}
