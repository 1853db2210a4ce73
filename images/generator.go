package images

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"motivation-pipeline/config"
	"motivation-pipeline/retry"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
)

const styleTemplate = `
Create a high-quality, inspiring image for a self-improvement and motivation context:

%s

Make the image vibrant, clear, and emotionally resonant. Include relevant visual elements
that communicate the meaning effectively. The style should be professional and inspirational.`

// Generator renders image prompts through the Gemini image model and
// persists the returned binary payloads.
type Generator struct {
	cfg    *config.Config
	client *genai.Client
	policy retry.Policy
}

// New creates an image Generator backed by an existing Gemini client.
func New(cfg *config.Config, client *genai.Client) *Generator {
	return &Generator{
		cfg:    cfg,
		client: client,
		policy: retry.Policy{
			MaxAttempts: cfg.Images.MaxRetries,
			BaseDelay:   time.Duration(cfg.Images.RetryDelaySec * float64(time.Second)),
			Retryable:   IsRecoverable,
		},
	}
}

// Generate renders one prompt and saves the first inline image payload to
// <images dir>/<baseName><ext>, extension chosen from the payload MIME
// type. A response that completes without error but carries no image data
// is success-with-empty-result: the returned path is "" and err is nil.
// That case is deliberately not retried — a prompt the model refuses once
// it tends to refuse forever.
func (g *Generator) Generate(ctx context.Context, prompt, baseName string) (string, error) {
	if err := os.MkdirAll(g.cfg.Paths.Images, 0755); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}

	model := g.client.GenerativeModel(g.cfg.Images.GeminiModel)
	enhanced := fmt.Sprintf(styleTemplate, prompt)

	var savedPath string
	err := g.policy.Do(ctx, func() error {
		path, err := g.generateOnce(ctx, model, enhanced, baseName)
		if err != nil {
			log.Printf("[images] Attempt failed for %q: %v", baseName, err)
			return err
		}
		savedPath = path
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("image generation for %q: %w", baseName, err)
	}

	if savedPath == "" {
		log.Printf("[images] ⚠️  Model returned no image data for %q — skipping", baseName)
		return "", nil
	}

	if g.cfg.Images.Letterbox {
		if err := Letterbox(savedPath); err != nil {
			log.Printf("[images] Warning: letterbox failed for %s: %v", savedPath, err)
		}
	}

	log.Printf("[images] ✅ Saved: %s", savedPath)
	return savedPath, nil
}

func (g *Generator) generateOnce(ctx context.Context, model *genai.GenerativeModel, prompt, baseName string) (string, error) {
	iter := model.GenerateContentStream(ctx, genai.Text(prompt))
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				switch p := part.(type) {
				case genai.Blob:
					path := filepath.Join(g.cfg.Paths.Images, baseName+ExtForMIME(p.MIMEType))
					if err := os.WriteFile(path, p.Data, 0644); err != nil {
						return "", fmt.Errorf("save image: %w", err)
					}
					// First inline payload wins; drain nothing further.
					return path, nil
				case genai.Text:
					if s := string(p); s != "" {
						log.Printf("[images] Model text for %q: %s", baseName, truncate(s, 120))
					}
				}
			}
		}
	}
}

// IsRecoverable reports whether a generation error is transient: rate
// limits and server-side failures are retried, everything else surfaces
// immediately.
func IsRecoverable(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == 429 || gerr.Code >= 500
	}
	return false
}

// ExtForMIME maps an image MIME type to a file extension, defaulting to
// .jpg for anything unrecognized.
func ExtForMIME(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
