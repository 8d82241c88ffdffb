package options

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAcceptsKnownOptions(t *testing.T) {
	args := []string{
		"--no_log",
		"--verbosity", "5",
		"--top_level_folder=/data",
		"-p", "3002",
		"--read_only_mode",
		"positional.fits",
	}
	if err := Validate(args); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestValidateUnknownOptionWithSuggestion(t *testing.T) {
	err := Validate([]string{"--top_level"})
	if err == nil {
		t.Fatal("expected error for unknown option")
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "did you mean --top_level_folder?") {
		t.Fatalf("expected prefix suggestion, got %q", err.Error())
	}
}

func TestValidateUnknownOptionAmbiguousPrefix(t *testing.T) {
	// "no_" prefixes several options, so no single suggestion applies.
	err := Validate([]string{"--no_"})
	if err == nil {
		t.Fatal("expected error for unknown option")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("ambiguous prefix must not suggest: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Fatalf("expected generic help hint, got %q", err.Error())
	}
}

func TestValidateUnknownOptionNames(t *testing.T) {
	err := Validate([]string{"--frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "--frobnicate") {
		t.Fatalf("expected error naming the option, got %v", err)
	}
}

func TestValidateRequiredValueMissing(t *testing.T) {
	for _, args := range [][]string{
		{"--verbosity"},
		{"--verbosity", "--no_log"},
		{"-p"},
	} {
		err := Validate(args)
		if err == nil {
			t.Fatalf("args %v: expected error", args)
		}
		if !strings.Contains(err.Error(), "requires a value") {
			t.Fatalf("args %v: expected requires-a-value message, got %q", args, err.Error())
		}
	}
}

func TestValidateNoValueOptionGivenValue(t *testing.T) {
	err := Validate([]string{"--no_log=true"})
	if err == nil || !strings.Contains(err.Error(), "does not take a value") {
		t.Fatalf("expected does-not-take-a-value message, got %v", err)
	}
}

func TestValidateLookaheadValueNotRevalidated(t *testing.T) {
	// "5" is consumed as the verbosity value, not treated as a positional
	// or re-checked as a flag.
	if err := Validate([]string{"--verbosity", "5", "--no_log"}); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestValidateStopsAtSeparator(t *testing.T) {
	if err := Validate([]string{"--no_log", "--", "--frobnicate"}); err != nil {
		t.Fatalf("tokens after separator must not be validated: %v", err)
	}
}

func TestValidateShortOptionUnknown(t *testing.T) {
	err := Validate([]string{"-z"})
	if err == nil || !strings.Contains(err.Error(), "-z") {
		t.Fatalf("expected error naming -z, got %v", err)
	}
}

// The spawn sequence hard-codes port, frontend_folder, and no_browser; the
// schema must keep recognizing them or user-supplied duplicates would be
// rejected before the backend ever sees them.
func TestSchemaCoversSpawnOptions(t *testing.T) {
	for name, wantArity := range map[string]Arity{
		"port":            Required,
		"frontend_folder": Required,
		"no_browser":      None,
	} {
		spec, ok := Lookup(name)
		if !ok {
			t.Fatalf("schema missing option %q", name)
		}
		if spec.Arity != wantArity {
			t.Fatalf("option %q: unexpected arity %v", name, spec.Arity)
		}
	}
}

func TestValueInlineAndLookahead(t *testing.T) {
	args := []string{"--top_level_folder", "/data", "--verbosity=4"}
	if v, ok := Value(args, "top_level_folder"); !ok || v != "/data" {
		t.Fatalf("unexpected lookahead value: %q %v", v, ok)
	}
	if v, ok := Value(args, "verbosity"); !ok || v != "4" {
		t.Fatalf("unexpected inline value: %q %v", v, ok)
	}
	if _, ok := Value(args, "browser"); ok {
		t.Fatal("expected absent option to report not found")
	}
}

func TestValueLastOccurrenceWins(t *testing.T) {
	args := []string{"--top_level_folder=/a", "--top_level_folder=/b"}
	if v, ok := Value(args, "top_level_folder"); !ok || v != "/b" {
		t.Fatalf("expected last occurrence, got %q %v", v, ok)
	}
}
