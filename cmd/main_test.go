package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandListsSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"serve", "migrate", "ingest", "token"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("subcommand %q: cmd=%v err=%v", name, cmd, err)
		}
	}
}

func TestIngestRejectsBadProjectID(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"ingest", "--project", "nope", "--owner", "also-nope", "abc"})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "--project") {
		t.Fatalf("want --project error, got %v", err)
	}
}
