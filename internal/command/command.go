// Package command implements the benchmarked-command model: display name,
// substituted shell string, ordered parameter bindings, and the parameter
// expansion (list/scan) that produces the full cross-product of commands
// to benchmark.
package command

import (
	"strings"

	"github.com/khmarbaise/hyperfine/internal/paramvalue"
)

// Binding is one (name, value) parameter pair, in declaration order.
type Binding struct {
	Name  string
	Value paramvalue.Value
}

// Command is one immutable benchmark unit: its display name, the shell
// command string with all {placeholder} substitutions already applied, and
// the parameter bindings that produced it.
type Command struct {
	name       string
	shellCmd   string
	parameters []Binding
}

// New builds an unparametrized command. name may be empty, in which case
// GetName returns the shell command string itself.
func New(name, shellCommand string) Command {
	if name == "" {
		name = shellCommand
	}
	return Command{name: name, shellCmd: shellCommand}
}

// NewParametrized builds a command from a name template (optional) and a
// raw shell-command template, substituting every {name} occurrence found
// in parameters.
func NewParametrized(nameTemplate *string, shellCommandTemplate string, parameters []Binding) Command {
	substituted := substitute(shellCommandTemplate, parameters)
	var name string
	if nameTemplate != nil {
		name = substitute(*nameTemplate, parameters)
	} else {
		name = substituted
	}
	return Command{name: name, shellCmd: substituted, parameters: parameters}
}

// GetName returns the command's display name.
func (c Command) GetName() string { return c.name }

// GetShellCommand returns the substituted shell command string.
func (c Command) GetShellCommand() string { return c.shellCmd }

// Parameters returns the ordered parameter bindings used to build this
// command.
func (c Command) Parameters() []Binding {
	out := make([]Binding, len(c.parameters))
	copy(out, c.parameters)
	return out
}

// ParameterStrings returns an ordered name->display-string view of the
// bindings, suitable for export.
func (c Command) ParameterStrings() []NameValue {
	out := make([]NameValue, 0, len(c.parameters))
	for _, b := range c.parameters {
		out = append(out, NameValue{Name: b.Name, Value: b.Value.Display()})
	}
	return out
}

// NameValue is a rendered (name, display-string) pair.
type NameValue struct {
	Name  string
	Value string
}

func substitute(template string, parameters []Binding) string {
	result := template
	for _, b := range parameters {
		placeholder := "{" + b.Name + "}"
		result = strings.ReplaceAll(result, placeholder, b.Value.Display())
	}
	return result
}
