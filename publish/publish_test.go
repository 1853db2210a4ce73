package publish

import (
	"strings"
	"testing"

	"motivation-pipeline/types"
)

func TestNextFolderNumber(t *testing.T) {
	cases := []struct {
		name  string
		names []string
		want  int
	}{
		{"empty parent", nil, 1},
		{"sequential", []string{"Video_001", "Video_002", "Video_003"}, 4},
		{"gaps use max", []string{"Video_001", "Video_007"}, 8},
		{"non-numbered ignored", []string{"Drafts", "Video_002", "notes_final"}, 3},
		{"only unnumbered", []string{"Drafts", "Archive"}, 1},
	}
	for _, tc := range cases {
		if got := NextFolderNumber(tc.names); got != tc.want {
			t.Errorf("%s: NextFolderNumber = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestBuildMetadataUsesScriptTitle(t *testing.T) {
	s := &types.Script{Text: "# The Rise of Humanoid Robots\n\nBody text."}
	md := BuildMetadata("Humanoid Robots", s, "thumb.png")

	if md.Title != "The Rise of Humanoid Robots" {
		t.Fatalf("unexpected title %q", md.Title)
	}
	if md.ThumbnailPath != "thumb.png" {
		t.Fatalf("thumbnail path lost: %q", md.ThumbnailPath)
	}
	if !strings.Contains(md.Description, "Humanoid Robots") {
		t.Error("description should mention the topic")
	}
}

func TestBuildMetadataTitleFallback(t *testing.T) {
	md := BuildMetadata("Neural Interfaces", &types.Script{Text: "no heading"}, "")
	if md.Title != "The Future of Neural Interfaces" {
		t.Fatalf("unexpected fallback title %q", md.Title)
	}
}

func TestBuildMetadataTags(t *testing.T) {
	md := BuildMetadata("Quantum Computing Breakthroughs", &types.Script{}, "")

	has := func(tag string) bool {
		for _, got := range md.Tags {
			if got == tag {
				return true
			}
		}
		return false
	}
	if !has("motivation") {
		t.Error("base tags missing")
	}
	if !has("quantum") || !has("computing") || !has("breakthroughs") {
		t.Errorf("topic words missing from tags: %v", md.Tags)
	}
}

func TestHashtag(t *testing.T) {
	if got := hashtag("Quantum Computing!"); got != "quantumcomputing" {
		t.Fatalf("hashtag = %q", got)
	}
}
