package options

// Arity states whether an option consumes a value.
type Arity int

const (
	// None marks a flag-only option.
	None Arity = iota
	// Required marks an option that must be given a value, inline or as the
	// following token.
	Required
)

// Spec describes one recognized backend option.
type Spec struct {
	Arity Arity

	// PathValued options carry a host filesystem path that must be
	// translated before the backend runs through an execution bridge.
	PathValued bool
}

// longOptions is the schema for "--name" options accepted by carta_backend.
// Treat this table as configuration data: it tracks the backend release the
// launcher ships with.
var longOptions = map[string]Spec{
	"help":    {Arity: None},
	"version": {Arity: None},

	"verbosity":             {Arity: Required},
	"no_log":                {Arity: None},
	"log_performance":       {Arity: None},
	"log_protocol_messages": {Arity: None},

	"no_browser": {Arity: None},
	"browser":    {Arity: Required},

	"host": {Arity: Required},
	"port": {Arity: Required},

	"omp_threads": {Arity: Required},

	"top_level_folder": {Arity: Required, PathValued: true},
	"frontend_folder":  {Arity: Required, PathValued: true},

	"exit_timeout":    {Arity: Required},
	"initial_timeout": {Arity: Required},
	"idle_timeout":    {Arity: Required},

	"read_only_mode":   {Arity: None},
	"enable_scripting": {Arity: None},

	"no_http":               {Arity: None},
	"debug_no_auth":         {Arity: None},
	"no_user_config":        {Arity: None},
	"no_user_log":           {Arity: None},
	"no_system_config":      {Arity: None},
	"controller_deployment": {Arity: None},
}

// shortOptions is the schema for single-dash short options.
var shortOptions = map[string]Spec{
	"h": {Arity: None},
	"v": {Arity: None},
	"p": {Arity: Required},
}

// Lookup returns the spec for a long option name.
func Lookup(name string) (Spec, bool) {
	spec, ok := longOptions[name]
	return spec, ok
}
