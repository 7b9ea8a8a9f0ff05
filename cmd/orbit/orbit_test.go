package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestOrbitCmd(t *testing.T) {
	cmd := mainCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--a", "0,0", "--b", "1,1"})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 4 orbit points and a summary:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[4], "escaped at iteration 2") {
		t.Errorf("summary = %q", lines[4])
	}
}

func TestOrbitCmdRejectsMissingMarker(t *testing.T) {
	cmd := mainCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--single", "--variable", "b"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute accepted variable b in single-marker mode")
	}
}
