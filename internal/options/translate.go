package options

import (
	"fmt"
	"strings"

	"cartadesk/internal/hostenv"
)

// TranslatePathValues rewrites the values of path-valued options for the
// active execution environment. The list must already have passed Validate.
// Non-path options and positionals are returned untouched; a translation
// failure aborts the launch since the backend would otherwise receive a
// path it cannot open.
func TranslatePathValues(env hostenv.Environment, args []string) ([]string, error) {
	if env == nil || !env.Bridged() {
		return args, nil
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") {
			out = append(out, arg)
			continue
		}

		name, inline, hasInline := splitInline(strings.TrimPrefix(arg, "--"))
		spec, known := longOptions[name]
		if !known || !spec.PathValued {
			out = append(out, arg)
			continue
		}

		if hasInline {
			translated, err := env.TranslatePath(inline)
			if err != nil {
				return nil, fmt.Errorf("option --%s: %w", name, err)
			}
			out = append(out, "--"+name+"="+translated)
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			translated, err := env.TranslatePath(args[i+1])
			if err != nil {
				return nil, fmt.Errorf("option --%s: %w", name, err)
			}
			out = append(out, arg, translated)
			i++
			continue
		}
		out = append(out, arg)
	}
	return out, nil
}
