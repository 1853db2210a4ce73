package narration

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"motivation-pipeline/config"
	"motivation-pipeline/retry"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Generator turns a raw script into one continuous narration WAV.
type Generator struct {
	cfg    *config.Config
	engine Engine
	policy retry.Policy
}

// New creates a narration Generator. A nil engine defaults to the Kokoro
// HTTP client configured in cfg.
func New(cfg *config.Config, engine Engine) *Generator {
	if engine == nil {
		engine = NewKokoroClient(cfg.Narration.EngineURL)
	}
	return &Generator{
		cfg:    cfg,
		engine: engine,
		policy: retry.Policy{
			MaxAttempts: cfg.Narration.MaxRetries,
			BaseDelay:   time.Duration(cfg.Narration.RetryDelaySec * float64(time.Second)),
			// Any synthesis error is retryable, not just server errors.
		},
	}
}

// Run cleans the script, synthesizes it in one submission, concatenates
// the returned waveform chunks in emission order and writes a single WAV
// named audioName.wav. An unknown voice silently falls back to the
// motivation default. No segments without an error is a soft failure:
// path "" and nil error.
func (g *Generator) Run(ctx context.Context, scriptText, voice, audioName string) (string, error) {
	log.Println("[narration] Starting text-to-speech generation...")

	if err := os.MkdirAll(g.cfg.Paths.Audio, 0755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	resolved := ResolveVoice(voice)
	if resolved != voice && voice != "" {
		log.Printf("[narration] Unknown voice %q — using default %q", voice, resolved)
	}

	cleaned := Clean(scriptText)
	log.Printf("[narration] Cleaned script: %d characters, voice %q", len(cleaned), resolved)

	var segments []Segment
	err := g.policy.Do(ctx, func() error {
		var synthErr error
		segments, synthErr = g.engine.Synthesize(ctx, cleaned, resolved, g.cfg.Narration.Language)
		if synthErr != nil {
			log.Printf("[narration] Synthesis attempt failed: %v", synthErr)
		}
		return synthErr
	})
	if err != nil {
		return "", fmt.Errorf("speech synthesis: %w", err)
	}

	if len(segments) == 0 {
		log.Println("[narration] ⚠️  Engine produced no audio segments")
		return "", nil
	}

	audioPath := filepath.Join(g.cfg.Paths.Audio, audioName+".wav")
	total, err := g.writeCombined(audioPath, segments)
	if err != nil {
		return "", err
	}

	log.Printf("[narration] ✅ Narration saved: %s (%d segments, %.2fs)", audioPath, len(segments), total)
	return audioPath, nil
}

// writeCombined concatenates all segment buffers into one waveform at the
// configured sample rate and writes it as a single 16-bit mono WAV.
func (g *Generator) writeCombined(path string, segments []Segment) (float64, error) {
	var samples []int
	var total float64
	for i, s := range segments {
		if s.Buffer == nil || len(s.Buffer.Data) == 0 {
			continue
		}
		samples = append(samples, s.Buffer.Data...)
		total += s.Duration
		log.Printf("[narration]   Segment %d: %d graphemes, %.2fs", i+1, s.Graphemes, s.Duration)
	}
	if len(samples) == 0 {
		return 0, fmt.Errorf("all segments empty")
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create audio file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, g.cfg.Narration.SampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: g.cfg.Narration.SampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return 0, fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("finalize wav: %w", err)
	}
	return total, nil
}
