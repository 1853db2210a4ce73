package script

import (
	"context"
	"fmt"
	"log"
	"strings"

	"motivation-pipeline/config"
	"motivation-pipeline/types"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
)

// ImagePromptMarker prefixes the lines of the generated script that carry
// an image description. Scene order in the final video is the order these
// lines appear in.
const ImagePromptMarker = "IMAGE PROMPT:"

const promptTemplate = `
Create a VIRAL, highly engaging script focused on the AI/technology topic of %q.

Make this content EXTREMELY compelling and shareable - the kind that would get millions of views
on social media platforms. It should have these characteristics:

1. An attention-grabbing, future-focused introduction that hooks the reader instantly
2. Use technology insights and recent advancements that feel cutting-edge and novel
3. Include 3-5 counterintuitive or surprising insights/predictions related to the topic
4. Use powerful storytelling elements that create a sense of wonder and possibility
5. Include viral-worthy phrases and quotes about technology that are highly shareable
6. Have a conclusion that creates excitement about future possibilities
7. For each section, generate a detailed image prompt that would create a stunning visual
   representation perfect for social media sharing

Format your response as follows:

# [VIRAL-WORTHY TITLE WITH EMOTIONAL IMPACT]

## The Hook
[Attention-grabbing opening that creates immediate emotional impact]

IMAGE PROMPT: [Detailed, visually striking image description that captures the essence of the hook]

## Mind-Shift #1: [Counterintuitive Insight Title]
[Content that challenges conventional wisdom and offers fresh perspective]

IMAGE PROMPT: [Detailed image description that visualizes this counterintuitive concept dramatically]

[Continue for all insights/steps...]

## The Transformation
[Emotionally powerful conclusion that creates urgency and desire for change]

IMAGE PROMPT: [Detailed image description that portrays the transformational outcome]

## Viral Quote
[A single, powerful, shareable quote that encapsulates the main message]

IMAGE PROMPT: [Detailed image description for quote visualization perfect for sharing]

Additional instructions for this specific technology topic:

1. Focus on the most surprising and counterintuitive aspects that most people don't know.
2. Include at least one recent technological breakthrough or research finding that feels cutting-edge.
3. Create a powerful "future vision" - something that challenges the reader's existing understanding.
4. Highlight a common misconception about the topic and replace it with a more accurate perspective.
5. Make the content feel exclusive, as if revealing insider knowledge from the tech industry.

The image prompts should be extremely detailed and visually striking - designed to stop scrolling
on social media. They should use futuristic visual elements, high-tech aesthetics, and compelling
technological imagery related to the topic.`

// Generator produces scripts via the Gemini streaming API.
type Generator struct {
	cfg    *config.Config
	client *genai.Client
}

// New creates a script Generator backed by an existing Gemini client.
func New(cfg *config.Config, client *genai.Client) *Generator {
	return &Generator{cfg: cfg, client: client}
}

// Run generates a script for the topic. The streamed fragments are fully
// concatenated before any parsing happens; streaming is transport-level
// only. An empty response is a soft failure: the returned Script has empty
// Text and no prompts, and err is nil.
func (g *Generator) Run(ctx context.Context, topic string) (*types.Script, error) {
	log.Printf("[script] Generating script via Gemini on topic: %s", topic)

	model := g.client.GenerativeModel(g.cfg.Script.GeminiModel)
	model.SetTemperature(g.cfg.Script.Temperature)
	model.SetTopK(g.cfg.Script.TopK)
	model.SetTopP(g.cfg.Script.TopP)

	prompt := fmt.Sprintf(promptTemplate, topic)

	var sb strings.Builder
	iter := model.GenerateContentStream(ctx, genai.Text(prompt))
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gemini stream: %w", err)
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					sb.WriteString(string(text))
				}
			}
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		log.Println("[script] ⚠️  Gemini returned no text — empty script")
		return &types.Script{}, nil
	}

	prompts := ExtractImagePrompts(text)
	log.Printf("[script] ✅ Script ready: %d characters, %d image prompts", len(text), len(prompts))
	return &types.Script{Text: text, ImagePrompts: prompts}, nil
}

// ExtractImagePrompts scans the script line by line and returns the suffix
// of every marker line, in source order, with the marker and surrounding
// whitespace stripped. Non-marker lines are ignored.
func ExtractImagePrompts(text string) []string {
	var prompts []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ImagePromptMarker) {
			prompt := strings.TrimSpace(strings.TrimPrefix(trimmed, ImagePromptMarker))
			prompts = append(prompts, prompt)
		}
	}
	return prompts
}

// Title returns the first markdown H1 line of the script, or a fallback
// built from the topic when the model skipped the heading.
func Title(text, topic string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return fmt.Sprintf("The Future of %s", topic)
}
