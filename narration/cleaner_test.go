package narration

import (
	"strings"
	"testing"
)

func TestCleanRemovesImagePrompts(t *testing.T) {
	in := "## The Hook\nBig opening line.\n\nIMAGE PROMPT: a dramatic skyline\n\nNext paragraph.\n"
	got := Clean(in)

	if strings.Contains(got, "IMAGE PROMPT") {
		t.Fatalf("prompt marker survived cleaning:\n%s", got)
	}
	if !strings.Contains(got, "The Hook") {
		t.Error("heading text should survive")
	}
	if strings.Contains(got, "##") {
		t.Error("heading marker should be stripped")
	}
	// The prompt line and its trailing blank collapse into the paragraph
	// break that preceded the prompt.
	if !strings.Contains(got, "Big opening line.\n\nNext paragraph.") {
		t.Errorf("unexpected spacing:\n%q", got)
	}
}

func TestCleanStripsMarkdown(t *testing.T) {
	in := "This is **bold** and *italic* and a [link](https://example.com)."
	got := Clean(in)
	want := "This is bold and italic and a link."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanCollapsesBlankRuns(t *testing.T) {
	in := "First.\n\n\n\n\nSecond."
	got := Clean(in)
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("blank run not collapsed:\n%q", got)
	}
}

func TestCleanPlainTextUnchanged(t *testing.T) {
	in := "Just two plain sentences. Nothing to strip here."
	if got := Clean(in); got != in {
		t.Fatalf("plain text altered: %q", got)
	}
}

func TestCleanIdempotent(t *testing.T) {
	in := "# Title\n\nSome **bold** text.\n\nIMAGE PROMPT: skyline\n\nMore text.\n"
	once := Clean(in)
	if twice := Clean(once); twice != once {
		t.Fatalf("cleaning is not idempotent:\nonce  %q\ntwice %q", once, twice)
	}
}
