package shellopt

import "errors"

var (
	errEmptyShell         = errors.New("shell: empty shell command")
	errUnknownShellOption = errors.New("shell: unknown option variant")
)
