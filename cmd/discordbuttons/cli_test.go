package main

import (
	"reflect"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestNormalizeCLIArgsStripsGlobalFlags(t *testing.T) {
	t.Parallel()

	args := []string{"discordbuttons", "--debug", "--config", "/tmp/c.json", "demo", "--config=/x.json", "123"}
	got := normalizeCLIArgs(args)
	want := []string{"discordbuttons", "demo", "123"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeCLIArgs = %v, want %v", got, want)
	}
}

func TestDetectConfigPathFromArgs(t *testing.T) {
	t.Parallel()

	if got := detectConfigPathFromArgs([]string{"x", "--config", " /a.json "}); got != "/a.json" {
		t.Fatalf("got %q", got)
	}
	if got := detectConfigPathFromArgs([]string{"x", "--config=/b.json"}); got != "/b.json" {
		t.Fatalf("got %q", got)
	}
	if got := detectConfigPathFromArgs([]string{"x", "run"}); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildDemoRows(t *testing.T) {
	t.Parallel()

	rows, err := buildDemoRows()
	if err != nil {
		t.Fatalf("build demo rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	menuRow := rows[0].Component()
	menu, ok := menuRow.Components[0].(discordgo.SelectMenu)
	if !ok || menu.MaxValues != len(demoOptions) {
		t.Fatalf("unexpected menu row: %+v", menuRow)
	}
	if len(rows[0].Callbacks()) != 1 {
		t.Fatalf("menu row should register one callback")
	}

	if rows[1].Len() != 3 || len(rows[1].Callbacks()) != 2 {
		t.Fatalf("button row: %d elements, %d callbacks", rows[1].Len(), len(rows[1].Callbacks()))
	}
}

func TestEchoCustomID(t *testing.T) {
	t.Parallel()

	resp := echoCustomID(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "abc"},
	}})
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource || resp.Data.Content != "abc" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
