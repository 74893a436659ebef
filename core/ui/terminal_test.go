package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTableAlignsByRunes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Listing", "Monthly")
	table.SetAlign(1, AlignRight)
	table.AddRow("a", "¥52,000")
	table.AddRow("longer name", "¥9")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[2] != "a           │ ¥52,000" {
		t.Errorf("unexpected row: %q", lines[2])
	}
	if lines[3] != "longer name │      ¥9" {
		t.Errorf("unexpected row: %q", lines[3])
	}
	if !strings.HasPrefix(lines[1], "────────────┼─") {
		t.Errorf("unexpected separator: %q", lines[1])
	}
}

func TestColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Error("failed %d", 2)

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected no escape codes, got %q", buf.String())
	}
	if buf.String() != "✗ failed 2\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestColorEnabled(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, false)
	if got := w.Color(Green, "ok"); got != Green+"ok"+Reset {
		t.Errorf("unexpected colored text: %q", got)
	}
	if got := w.Color("", "plain"); got != "plain" {
		t.Errorf("empty color should leave text unchanged, got %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterKeepsFirstError(t *testing.T) {
	w := NewWriter(failingWriter{}, true)
	w.Println("one")
	w.Println("two")

	if w.Err() == nil || w.Err().Error() != "disk full" {
		t.Errorf("expected sticky write error, got %v", w.Err())
	}
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Header("Ranking")
	w.Success("cheapest: %s", "a")
	w.Warning("%d issues", 2)

	want := "━━━ Ranking ━━━\n\n✓ cheapest: a\n⚠ 2 issues\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}
