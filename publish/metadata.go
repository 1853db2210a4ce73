package publish

import (
	"fmt"
	"strings"

	"motivation-pipeline/script"
	"motivation-pipeline/types"
)

var baseTags = []string{
	"motivation", "inspiration", "success", "mindset",
	"personal growth", "self improvement", "future", "technology",
}

// BuildMetadata derives the video's side-file metadata from the script and
// topic. Title comes from the script's first heading when one exists.
func BuildMetadata(topic string, s *types.Script, thumbnailPath string) *types.VideoMetadata {
	title := script.Title(s.Text, topic)

	var desc strings.Builder
	fmt.Fprintf(&desc, "%s\n\n", title)
	fmt.Fprintf(&desc, "A short motivational journey into %s — what it means today and where it takes us next.\n\n", topic)
	desc.WriteString("Subscribe for a new video every day.\n\n")
	desc.WriteString("#motivation #inspiration #" + hashtag(topic))

	tags := make([]string, 0, len(baseTags)+4)
	tags = append(tags, baseTags...)
	for _, w := range strings.Fields(strings.ToLower(topic)) {
		if len(w) > 3 {
			tags = append(tags, w)
		}
	}

	return &types.VideoMetadata{
		Title:         title,
		Description:   desc.String(),
		Tags:          tags,
		ThumbnailPath: thumbnailPath,
	}
}

func hashtag(topic string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(topic) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
