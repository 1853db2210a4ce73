package narration

import (
	"regexp"
	"strings"

	"motivation-pipeline/script"
)

var (
	headingRe    = regexp.MustCompile(`^#+\s+`)
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*`)
	linkRe       = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	multiBlankRe = regexp.MustCompile(`\n{3,}`)
)

// Clean turns a generated markdown script into narratable text: image
// prompt lines go away (with the one blank line that follows them),
// heading markers are stripped but the heading text stays, bold/italic
// markers and link targets are removed, and runs of 3+ blank lines
// collapse to 2.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	skipBlank := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, script.ImagePromptMarker) {
			skipBlank = true
			continue
		}
		if skipBlank && trimmed == "" {
			skipBlank = false
			continue
		}
		skipBlank = false

		if strings.HasPrefix(trimmed, "#") {
			cleaned = append(cleaned, headingRe.ReplaceAllString(trimmed, ""))
			continue
		}
		cleaned = append(cleaned, line)
	}

	out := strings.Join(cleaned, "\n")
	out = multiBlankRe.ReplaceAllString(out, "\n\n")
	out = boldRe.ReplaceAllString(out, "$1")
	out = italicRe.ReplaceAllString(out, "$1")
	out = linkRe.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}
