package builder

import "testing"

func TestExtractHTMLLabelTextJoinsTextNodes(t *testing.T) {
	got := extractHTMLLabelText("<b>bold</b> and <i>italic</i>")
	want := "bold and italic"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractHTMLLabelTextTrimsPlainText(t *testing.T) {
	got := extractHTMLLabelText("   plain text   ")
	if got != "plain text" {
		t.Fatalf("got %q", got)
	}
}
