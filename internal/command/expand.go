package command

import (
	"fmt"
	"sort"

	"github.com/khmarbaise/hyperfine/internal/cmderr"
	"github.com/khmarbaise/hyperfine/internal/paramvalue"
	"github.com/shopspring/decimal"
)

// ParameterList is one expanded parameter declaration: a name and its
// ordered, already-typed values. --parameter-list produces paramvalue.Text
// entries; --parameter-scan produces paramvalue.Numeric entries so that
// exports retain the distinction.
type ParameterList struct {
	Name   string
	Values []paramvalue.Value
}

// ParameterScan is one --parameter-scan declaration: a numeric range
// [start, end] stepped by step (inclusive of end), in original textual
// form.
type ParameterScan struct {
	Name  string
	Start string
	End   string
	Step  string // empty means "default" (1 for integer bounds)
}

// Expand builds the full cross-product of command strings x parameter
// lists. Dimensions are ordered [commands, param1, param2, ...] in
// declaration order; iteration increments the command index fastest. An
// empty names slice means "no explicit --command-name"; a single entry
// means "shared across all"; otherwise the count must equal the
// cross-product size.
func Expand(commandStrings []string, names []string, lists []ParameterList) ([]Command, error) {
	if err := checkDuplicateNames(lists); err != nil {
		return nil, err
	}

	paramNamesAndValues := make([]ParameterList, len(lists))
	copy(paramNamesAndValues, lists)

	dimensions := make([]int, 0, len(paramNamesAndValues)+1)
	dimensions = append(dimensions, len(commandStrings))
	for _, p := range paramNamesAndValues {
		dimensions = append(dimensions, len(p.Values))
	}

	spaceSize := 1
	for _, d := range dimensions {
		spaceSize *= d
	}
	if spaceSize == 0 {
		return []Command{}, nil
	}

	if len(names) > 1 && len(names) != spaceSize {
		return nil, cmderr.New(cmderr.UserInput, fmt.Sprintf(
			"the '--command-name' option has to be provided exactly once or %d times, but it was provided %d times",
			spaceSize, len(names)))
	}

	commands := make([]Command, 0, spaceSize)
	index := make([]int, len(dimensions))
	i := 0
	for {
		var namePtr *string
		if len(names) > 0 {
			var n string
			if i < len(names) {
				n = names[i]
			} else {
				n = names[0]
			}
			namePtr = &n
		}
		i++

		commandIndex := index[0]
		paramsIndices := index[1:]

		bindings := make([]Binding, 0, len(paramNamesAndValues))
		for k, p := range paramNamesAndValues {
			bindings = append(bindings, Binding{
				Name:  p.Name,
				Value: p.Values[paramsIndices[k]],
			})
		}
		commands = append(commands, NewParametrized(namePtr, commandStrings[commandIndex], bindings))

		if !incrementIndex(index, dimensions) {
			break
		}
	}

	return commands, nil
}

// ExpandUnparametrized builds one Command per command string with no
// parameter substitution, honoring --command-name's "one or N" count
// rule.
func ExpandUnparametrized(commandStrings []string, names []string) ([]Command, error) {
	if len(names) > 1 && len(names) != len(commandStrings) {
		return nil, cmderr.New(cmderr.UserInput, fmt.Sprintf(
			"the '--command-name' option has to be provided exactly once or %d times, but it was provided %d times",
			len(commandStrings), len(names)))
	}
	commands := make([]Command, 0, len(commandStrings))
	for idx, s := range commandStrings {
		switch {
		case len(names) == 1:
			commands = append(commands, New(names[0], s))
		case idx < len(names):
			commands = append(commands, New(names[idx], s))
		default:
			commands = append(commands, New("", s))
		}
	}
	return commands, nil
}

// incrementIndex advances the leftmost dimension fastest, returning false
// once it overflows (i.e. the full space has been enumerated).
func incrementIndex(index []int, dimensions []int) bool {
	for i := range index {
		index[i]++
		if index[i] < dimensions[i] {
			return true
		}
		index[i] = 0
	}
	return false
}

func checkDuplicateNames(lists []ParameterList) error {
	seen := map[string]int{}
	for _, l := range lists {
		seen[l.Name]++
	}
	var dupes []string
	for name, count := range seen {
		if count > 1 {
			dupes = append(dupes, name)
		}
	}
	if len(dupes) == 0 {
		return nil
	}
	sort.Strings(dupes)
	return cmderr.New(cmderr.UserInput, fmt.Sprintf("duplicate parameter names: %v", dupes))
}

// BuildParameterScan expands a numeric range into a ParameterList, keeping
// each value's original textual form.
func BuildParameterScan(scan ParameterScan) (ParameterList, error) {
	start, err := decimal.NewFromString(scan.Start)
	if err != nil {
		return ParameterList{}, cmderr.New(cmderr.UserInput, fmt.Sprintf("invalid parameter-scan start %q: %v", scan.Start, err))
	}
	end, err := decimal.NewFromString(scan.End)
	if err != nil {
		return ParameterList{}, cmderr.New(cmderr.UserInput, fmt.Sprintf("invalid parameter-scan end %q: %v", scan.End, err))
	}

	stepLiteral := scan.Step
	if stepLiteral == "" {
		if !start.IsInteger() || !end.IsInteger() {
			return ParameterList{}, cmderr.New(cmderr.UserInput, "parameter-step-size is required when the parameter-scan bounds are not integers")
		}
		stepLiteral = "1"
	}
	step, err := decimal.NewFromString(stepLiteral)
	if err != nil {
		return ParameterList{}, cmderr.New(cmderr.UserInput, fmt.Sprintf("invalid parameter-step-size %q: %v", stepLiteral, err))
	}

	if step.IsZero() {
		return ParameterList{}, cmderr.New(cmderr.UserInput, "parameter-scan step size must not be zero")
	}

	diff := end.Sub(start)
	if step.IsPositive() && diff.IsNegative() {
		return ParameterList{}, cmderr.New(cmderr.UserInput, "parameter-scan step size must be negative when end < start")
	}
	if step.IsNegative() && diff.IsPositive() {
		return ParameterList{}, cmderr.New(cmderr.UserInput, "parameter-scan step size must be positive when end > start")
	}

	// literal keeps the scale of the inputs (String would drop trailing zeros).
	literal := func(d decimal.Decimal) string {
		if d.Exponent() < 0 {
			return d.StringFixed(-d.Exponent())
		}
		return d.String()
	}

	var values []paramvalue.Value
	current := start
	if step.IsPositive() {
		for current.LessThanOrEqual(end) {
			values = append(values, paramvalue.Numeric{D: current, Literal: literal(current)})
			current = current.Add(step)
		}
	} else {
		for current.GreaterThanOrEqual(end) {
			values = append(values, paramvalue.Numeric{D: current, Literal: literal(current)})
			current = current.Add(step)
		}
	}

	return ParameterList{Name: scan.Name, Values: values}, nil
}
