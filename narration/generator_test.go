package narration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"motivation-pipeline/config"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

type fakeEngine struct {
	segments []Segment
	err      error
	calls    int
	lastText string
}

func (f *fakeEngine) Synthesize(ctx context.Context, text, voice, lang string) ([]Segment, error) {
	f.calls++
	f.lastText = text
	return f.segments, f.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.Audio = t.TempDir()
	cfg.Narration.MaxRetries = 2
	cfg.Narration.RetryDelaySec = 0
	return cfg
}

func pcmSegment(duration float64, samples ...int) Segment {
	return Segment{
		Graphemes: 10,
		Duration:  duration,
		Buffer: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 1, SampleRate: 24000},
			Data:           samples,
			SourceBitDepth: 16,
		},
	}
}

func TestRunConcatenatesSegments(t *testing.T) {
	engine := &fakeEngine{segments: []Segment{
		pcmSegment(0.5, 100, 200, 300),
		pcmSegment(0.3, -50, -60),
	}}
	g := New(testConfig(t), engine)

	path, err := g.Run(context.Background(), "Hello world.", "af_bella", "20250101_120000")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if path == "" {
		t.Fatal("expected an audio path")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got, want := len(buf.Data), 5; got != want {
		t.Fatalf("expected %d samples after concatenation, got %d", want, got)
	}
}

func TestRunCleansBeforeSynthesis(t *testing.T) {
	engine := &fakeEngine{segments: []Segment{pcmSegment(0.1, 1, 2)}}
	g := New(testConfig(t), engine)

	raw := "## Heading\nSome text.\n\nIMAGE PROMPT: should not be spoken\n"
	if _, err := g.Run(context.Background(), raw, "", "20250101_120001"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if engine.lastText != Clean(raw) {
		t.Fatalf("engine received uncleaned text:\n%q", engine.lastText)
	}
}

func TestRunNoSegmentsIsSoftFailure(t *testing.T) {
	g := New(testConfig(t), &fakeEngine{})

	path, err := g.Run(context.Background(), "text", "", "20250101_120002")
	if err != nil {
		t.Fatalf("expected soft failure, got error: %v", err)
	}
	if path != "" {
		t.Fatalf("expected empty path, got %q", path)
	}
}

func TestRunRetriesThenSurfaces(t *testing.T) {
	engine := &fakeEngine{err: fmt.Errorf("engine down")}
	cfg := testConfig(t)
	g := New(cfg, engine)

	if _, err := g.Run(context.Background(), "text", "", "20250101_120003"); err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if engine.calls != cfg.Narration.MaxRetries {
		t.Fatalf("expected %d attempts, got %d", cfg.Narration.MaxRetries, engine.calls)
	}
}
