package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation tags every validator failure so callers can classify it
// without string matching.
var ErrValidation = errors.New("backend option validation")

// Validate walks the passthrough argument list and checks every flag-shaped
// token against the schema. Positional tokens pass through unchecked, and a
// literal "--" stops validation entirely. The argument list is never
// mutated.
func Validate(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return nil
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, inline, hasInline := splitInline(optionName(arg))
		spec, known := lookupOption(arg, name)
		if !known {
			return fmt.Errorf("%w: unknown option %s%s", ErrValidation, displayName(arg, name), suggestion(arg, name))
		}

		switch spec.Arity {
		case None:
			if hasInline {
				return fmt.Errorf("%w: option %s does not take a value (got %q)", ErrValidation, displayName(arg, name), inline)
			}
		case Required:
			if hasInline {
				continue
			}
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return fmt.Errorf("%w: option %s requires a value", ErrValidation, displayName(arg, name))
			}
			// The lookahead token is the value; skip it so it is not
			// re-validated as a flag.
			i++
		}
	}
	return nil
}

// Value finds the value of a long option in an already validated argument
// list, honoring both inline and lookahead forms. The last occurrence wins,
// matching how the backend itself resolves repeated options.
func Value(args []string, long string) (string, bool) {
	var value string
	var found bool
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name, inline, hasInline := splitInline(strings.TrimPrefix(arg, "--"))
		if name != long {
			continue
		}
		if hasInline {
			value, found = inline, true
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			value, found = args[i+1], true
			i++
		}
	}
	return value, found
}

func optionName(arg string) string {
	if strings.HasPrefix(arg, "--") {
		return strings.TrimPrefix(arg, "--")
	}
	return strings.TrimPrefix(arg, "-")
}

func splitInline(name string) (string, string, bool) {
	if idx := strings.Index(name, "="); idx >= 0 {
		return name[:idx], name[idx+1:], true
	}
	return name, "", false
}

func lookupOption(arg, name string) (Spec, bool) {
	if strings.HasPrefix(arg, "--") {
		spec, ok := longOptions[name]
		return spec, ok
	}
	spec, ok := shortOptions[name]
	return spec, ok
}

func displayName(arg, name string) string {
	if strings.HasPrefix(arg, "--") {
		return "--" + name
	}
	return "-" + name
}

// suggestion proposes the single known long option the given name is an
// unambiguous prefix of, or a generic help hint otherwise.
func suggestion(arg, name string) string {
	if strings.HasPrefix(arg, "--") && name != "" {
		var match string
		var count int
		for known := range longOptions {
			if strings.HasPrefix(known, name) {
				match = known
				count++
			}
		}
		if count == 1 {
			return fmt.Sprintf(" (did you mean --%s?)", match)
		}
	}
	return " (see --help for supported options)"
}
