package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	Table(&buf, []string{"ID", "LABEL"}, [][]string{
		{"RT", "Routing"},
		{"PL", "Planning"},
	})

	want := "  ID  LABEL\n" +
		"  ──  ────────\n" +
		"  RT  Routing\n" +
		"  PL  Planning\n"
	if got := buf.String(); got != want {
		t.Errorf("Table() =\n%q\nwant\n%q", got, want)
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"ID"}, nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := parseHex("#7C3AED")
	if !ok || r != 0x7C || g != 0x3A || b != 0xED {
		t.Errorf("parseHex() = %d %d %d %v", r, g, b, ok)
	}
	for _, bad := range []string{"", "7C3AED", "#zzzzzz"} {
		if _, _, _, ok := parseHex(bad); ok {
			t.Errorf("parseHex(%q) should fail", bad)
		}
	}
	if !strings.Contains(Swatch("nope"), " ") {
		t.Error("invalid color should render blank")
	}
}
