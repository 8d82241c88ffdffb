package cliargs

import (
	"fmt"
	"strconv"
	"strings"
)

// Invocation is the parsed launcher command line. Built once at startup and
// treated as immutable afterwards.
type Invocation struct {
	InputPath   string
	Passthrough []string
	Inspect     bool
	Help        bool
	Version     bool

	// ExplicitPort is valid only when PortSet is true.
	ExplicitPort   int
	PortSet        bool
	PortParseError string
}

// macOS LaunchServices appends a process serial number argument when the app
// is started from Finder. It means nothing to the backend and is dropped.
const spuriousTokenPrefix = "-psn_"

// Parse consumes the argument vector (excluding the program name) and
// produces an Invocation. Pure function, no side effects.
func Parse(args []string) Invocation {
	var inv Invocation

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			// Everything after the separator is input path then
			// passthrough, verbatim, even if flag-shaped.
			for _, rest := range args[i+1:] {
				if inv.InputPath == "" {
					inv.InputPath = rest
					continue
				}
				inv.Passthrough = append(inv.Passthrough, rest)
			}
			return inv
		case arg == "--inspect":
			inv.Inspect = true
		case arg == "--help" || arg == "-h":
			inv.Help = true
		case arg == "--version" || arg == "-v":
			inv.Version = true
		case arg == "--port" || arg == "-p":
			if i+1 >= len(args) || isFlagShaped(args[i+1]) {
				inv.PortParseError = fmt.Sprintf("%s requires a value", arg)
				continue
			}
			i++
			inv.setPort(args[i])
		case strings.HasPrefix(arg, "--port="):
			inv.setPort(strings.TrimPrefix(arg, "--port="))
		case strings.HasPrefix(arg, spuriousTokenPrefix):
			// dropped, never forwarded
		case isFlagShaped(arg):
			inv.Passthrough = append(inv.Passthrough, arg)
			if !strings.Contains(arg, "=") && i+1 < len(args) && !isFlagShaped(args[i+1]) {
				i++
				inv.Passthrough = append(inv.Passthrough, args[i])
			}
		case inv.InputPath == "":
			inv.InputPath = arg
		default:
			inv.Passthrough = append(inv.Passthrough, arg)
		}
	}

	return inv
}

func (inv *Invocation) setPort(literal string) {
	if inv.PortParseError != "" {
		return
	}
	port, err := strconv.Atoi(literal)
	if err != nil || port < 0 || port > 65535 {
		inv.PortParseError = fmt.Sprintf("invalid port %q: expected an integer between 0 and 65535", literal)
		return
	}
	inv.ExplicitPort = port
	inv.PortSet = true
}

func isFlagShaped(arg string) bool {
	return strings.HasPrefix(arg, "-")
}
