package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"colcrt/internal/colcrt"
	tu "colcrt/internal/testutil"
)

func runCLI(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	err := execute(args, strings.NewReader(stdin), &out, &errb)
	return out.String(), err
}

func TestExecute_Flags(t *testing.T) {
	tu.CleanEnv(t, "COLCRT_CHARSET", "UTF-8")
	cases := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{"default", nil, "a_b\n", "a b\n -\n"},
		{"lone hyphen", []string{"-"}, "a_b\n", "a b\n"},
		{"long no-underlining", []string{"--no-underlining"}, "a_b\n", "a b\n"},
		{"half lines short", []string{"-2"}, "a\n", "\na\n\n"},
		{"half lines long", []string{"--half-lines"}, "a\n", "\na\n\n"},
		{"hyphen with half lines", []string{"-2", "-"}, "a_\n", "\na\n\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runCLI(t, tc.args, tc.in)
			if err != nil {
				t.Fatalf("execute error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExecute_VersionAndHelp(t *testing.T) {
	tu.CleanEnv(t)
	for _, arg := range []string{"-V", "--version"} {
		got, err := runCLI(t, []string{arg}, "ignored\n")
		if err != nil || !strings.HasPrefix(got, "colcrt version ") {
			t.Fatalf("%s: got %q, %v", arg, got, err)
		}
	}
	for _, arg := range []string{"-h", "--help"} {
		got, err := runCLI(t, []string{arg}, "")
		if err != nil {
			t.Fatalf("%s: %v", arg, err)
		}
		if !strings.Contains(got, "--no-underlining") || !strings.Contains(got, "--half-lines") {
			t.Fatalf("%s: help missing flags:\n%s", arg, got)
		}
	}
}

func TestExecute_UnknownFlag(t *testing.T) {
	tu.CleanEnv(t)
	_, err := runCLI(t, []string{"--bogus"}, "")
	var uerr *usageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestExecute_Files(t *testing.T) {
	tu.CleanEnv(t, "COLCRT_CHARSET", "UTF-8")
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.WriteFile(a, []byte("one\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("two_\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := runCLI(t, []string{a, b}, "stdin is not read\n")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if got != "one\ntwo\n   -\n" {
		t.Fatalf("got %q", got)
	}

	_, err = runCLI(t, []string{a, filepath.Join(dir, "missing")}, "")
	var se *colcrt.SourceError
	if !errors.As(err, &se) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestExecute_Latin1(t *testing.T) {
	tu.CleanEnv(t, "LANG", "fr_FR.ISO-8859-1")
	got, err := runCLI(t, nil, "caf\xe9_\n")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if got != "caf\xe9\n    -\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStripLoneHyphen(t *testing.T) {
	args, found := stripLoneHyphen([]string{"-", "a", "--", "-", "-2"})
	if !found || strings.Join(args, " ") != "a -- -2" {
		t.Fatalf("got %v, %v", args, found)
	}
	if _, found := stripLoneHyphen([]string{"a"}); found {
		t.Fatalf("unexpected hyphen")
	}
}
