package hostenv

import (
	"errors"
	"strings"
	"testing"
)

func TestTranslateWindowsPathDriveLetter(t *testing.T) {
	cases := map[string]string{
		`C:\Users\alice\data`:              "/mnt/c/Users/alice/data",
		`D:\`:                              "/mnt/d",
		`d:\obs\night 1`:                   "/mnt/d/obs/night 1",
		`\\?\C:\Users\alice\data`:          "/mnt/c/Users/alice/data",
		`/already/posix`:                   "/already/posix",
		`\\wsl$\Ubuntu\home\alice`:         "/home/alice",
		`\\wsl.localhost\Ubuntu\opt\carta`: "/opt/carta",
	}
	for input, want := range cases {
		got, err := translateWindowsPath(input)
		if err != nil {
			t.Fatalf("translate %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("translate %q: got %q want %q", input, got, want)
		}
	}
}

func TestTranslateWindowsPathFailures(t *testing.T) {
	for _, input := range []string{"", `relative\path`, `..\up`} {
		_, err := translateWindowsPath(input)
		if err == nil {
			t.Fatalf("translate %q: expected error", input)
		}
		if !errors.Is(err, ErrPathTranslation) {
			t.Fatalf("translate %q: expected ErrPathTranslation, got %v", input, err)
		}
	}
}

func TestShellQuote(t *testing.T) {
	cases := map[string]string{
		"plain":       "'plain'",
		"with space":  "'with space'",
		"it's":        `'it'\''s'`,
		"$HOME `cmd`": "'$HOME `cmd`'",
	}
	for input, want := range cases {
		if got := shellQuote(input); got != want {
			t.Fatalf("quote %q: got %s want %s", input, got, want)
		}
	}
}

func TestBuildShellLine(t *testing.T) {
	line := buildShellLine(
		"/opt/carta/bin/carta_backend",
		[]string{"/mnt/c/data", "--port=3002", "--no_browser"},
		[]EnvVar{{Name: "CARTA_AUTH_TOKEN", Value: "tok"}, {Name: "CASAPATH", Value: "../../etc linux"}},
	)
	want := "CARTA_AUTH_TOKEN='tok' CASAPATH='../../etc linux' '/opt/carta/bin/carta_backend' '/mnt/c/data' '--port=3002' '--no_browser'"
	if line != want {
		t.Fatalf("unexpected shell line:\n got %s\nwant %s", line, want)
	}
}

func TestBridgeCommandShape(t *testing.T) {
	b := &Bridge{Distribution: "Ubuntu"}
	cmd := b.Command("/opt/bin/backend", []string{"--no_browser"}, nil)
	if base := cmd.Args[0]; !strings.Contains(base, "wsl.exe") {
		t.Fatalf("expected wsl.exe invocation, got %v", cmd.Args)
	}
	joined := strings.Join(cmd.Args, " ")
	if !strings.Contains(joined, "--distribution Ubuntu") {
		t.Fatalf("expected pinned distribution, got %v", cmd.Args)
	}
	if !strings.Contains(joined, "bash -c") {
		t.Fatalf("expected bash -c delegation, got %v", cmd.Args)
	}
}

func TestNativeTranslateIsIdentity(t *testing.T) {
	n := &Native{}
	got, err := n.TranslatePath("/some/dir with space")
	if err != nil {
		t.Fatalf("TranslatePath returned error: %v", err)
	}
	if got != "/some/dir with space" {
		t.Fatalf("unexpected translation: %q", got)
	}
}
