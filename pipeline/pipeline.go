package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"motivation-pipeline/config"
	"motivation-pipeline/images"
	"motivation-pipeline/narration"
	"motivation-pipeline/publish"
	"motivation-pipeline/script"
	"motivation-pipeline/types"
	"motivation-pipeline/video"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
)

// Stage interfaces mirror the concrete generators so runs can be driven
// end-to-end against fakes.

type ScriptStage interface {
	Run(ctx context.Context, topic string) (*types.Script, error)
}

type ImageStage interface {
	Generate(ctx context.Context, prompt, baseName string) (string, error)
}

type NarrationStage interface {
	Run(ctx context.Context, scriptText, voice, audioName string) (string, error)
}

type VideoStage interface {
	Run(ctx context.Context, imagePaths []string, audioPath, videoName string) (string, error)
}

type PublishStage interface {
	Run(ctx context.Context, run *types.Run, md *types.VideoMetadata) (string, error)
}

// Options selects per-run behavior from the CLI.
type Options struct {
	Voice     string
	SkipAudio bool
	SkipVideo bool
}

// Pipeline drives one run through its stages in order: script, images,
// narration, video, publish. Stages run strictly forward; a stage that
// fails or produces nothing shrinks the artifact set of the stages after
// it instead of aborting the run.
type Pipeline struct {
	cfg       *config.Config
	Script    ScriptStage
	Images    ImageStage
	Narration NarrationStage
	Video     VideoStage
	Publish   PublishStage
}

// New wires a Pipeline from the real stage implementations. When ffmpeg is
// not installed the video stage is left nil and skipped at run time; the
// publisher is wired only when publishing is enabled.
func New(cfg *config.Config, client *genai.Client) *Pipeline {
	p := &Pipeline{
		cfg:       cfg,
		Script:    script.New(cfg, client),
		Images:    images.New(cfg, client),
		Narration: narration.New(cfg, nil),
	}
	if video.Available() {
		p.Video = video.New(cfg)
	} else {
		log.Println("[pipeline] ⚠️  ffmpeg not found — video assembly disabled for this run")
	}
	if cfg.Publish.Enabled {
		p.Publish = publish.New(cfg)
	}
	return p
}

// NewRun creates the descriptor that owns every artifact path of one run.
// The timestamp is the shared naming key across script, images, audio and
// video files.
func NewRun(topic string) *types.Run {
	return &types.Run{
		ID:        uuid.NewString()[:8],
		Timestamp: time.Now().Format("20060102_150405"),
		Topic:     topic,
	}
}

// Execute runs the full pipeline for one topic. The returned state always
// reflects whatever artifacts were produced, even on error.
func (p *Pipeline) Execute(ctx context.Context, topic string, opts Options) (*types.PipelineState, error) {
	run := NewRun(topic)
	state := &types.PipelineState{
		Run:       *run,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}

	log.Printf("🎬 Pipeline starting — run %s (%s)", run.ID, run.Timestamp)
	log.Printf("📌 Topic: %s", topic)

	defer func() {
		state.Run = *run
		state.CompletedAt = time.Now().UTC().Format(time.RFC3339)
		p.saveState(state)
	}()

	// ── Stage 1: Script ──
	log.Println("\n━━━ STAGE 1: Script ━━━")
	scr, err := p.Script.Run(ctx, topic)
	if err != nil {
		state.Error = fmt.Sprintf("script: %v", err)
		return state, fmt.Errorf("script stage: %w", err)
	}
	if scr.Text == "" {
		log.Println("[pipeline] ⚠️  Empty script — nothing to produce this run")
		return state, nil
	}
	if path, err := p.saveScript(run, scr); err != nil {
		log.Printf("[pipeline] ⚠️  Could not save script: %v", err)
	} else {
		run.ScriptPath = path
	}

	// ── Stage 2: Images ──
	log.Println("\n━━━ STAGE 2: Images ━━━")
	for i, prompt := range scr.ImagePrompts {
		if i > 0 {
			p.pace(ctx)
		}
		baseName := fmt.Sprintf("motivation_%s_%d", run.Timestamp, i+1)
		path, err := p.Images.Generate(ctx, prompt, baseName)
		if err != nil {
			log.Printf("[pipeline] ⚠️  Image %d/%d failed: %v", i+1, len(scr.ImagePrompts), err)
			continue
		}
		if path != "" {
			run.ImagePaths = append(run.ImagePaths, path)
		}
	}
	log.Printf("[pipeline] Images ready: %d/%d", len(run.ImagePaths), len(scr.ImagePrompts))

	// ── Stage 3: Narration ──
	if opts.SkipAudio {
		log.Println("\n━━━ STAGE 3: Narration (skipped) ━━━")
	} else {
		log.Println("\n━━━ STAGE 3: Narration ━━━")
		audioPath, err := p.Narration.Run(ctx, scr.Text, opts.Voice, run.Timestamp)
		if err != nil {
			log.Printf("[pipeline] ⚠️  Narration failed: %v — video will be skipped", err)
		} else {
			run.AudioPath = audioPath
		}
	}

	// ── Stage 4: Video ──
	switch {
	case opts.SkipVideo:
		log.Println("\n━━━ STAGE 4: Video (skipped) ━━━")
	case p.Video == nil:
		log.Println("\n━━━ STAGE 4: Video (disabled — no ffmpeg) ━━━")
	case run.AudioPath == "":
		log.Println("\n━━━ STAGE 4: Video (skipped — no narration) ━━━")
	case len(run.ImagePaths) == 0:
		log.Println("\n━━━ STAGE 4: Video (skipped — no images) ━━━")
	default:
		log.Println("\n━━━ STAGE 4: Video ━━━")
		videoPath, err := p.Video.Run(ctx, run.ImagePaths, run.AudioPath, run.Timestamp)
		if err != nil {
			log.Printf("[pipeline] ⚠️  Video assembly failed: %v", err)
		} else {
			run.VideoPath = videoPath
		}
	}

	// ── Stage 5: Publish ──
	if p.Publish != nil && run.VideoPath != "" {
		log.Println("\n━━━ STAGE 5: Publish ━━━")
		thumbnail := ""
		if len(run.ImagePaths) > 0 {
			thumbnail = run.ImagePaths[0]
		}
		md := publish.BuildMetadata(topic, scr, thumbnail)
		state.Metadata = md

		folderName, err := p.Publish.Run(ctx, run, md)
		if err != nil {
			log.Printf("[pipeline] ⚠️  Publish failed: %v", err)
		} else {
			state.FolderName = folderName
		}
	}

	log.Printf("\n✅ Run %s complete", run.ID)
	return state, nil
}

// pace spaces consecutive image requests so the model endpoint is not
// hammered. Returns early on context cancellation.
func (p *Pipeline) pace(ctx context.Context) {
	d := time.Duration(p.cfg.Images.PacingSec * float64(time.Second))
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (p *Pipeline) saveScript(run *types.Run, scr *types.Script) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Scripts, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(p.cfg.Paths.Scripts, fmt.Sprintf("motivation_script_%s.md", run.Timestamp))
	if err := os.WriteFile(path, []byte(scr.Text), 0644); err != nil {
		return "", err
	}
	log.Printf("[pipeline] Script saved: %s", path)
	return path, nil
}

func (p *Pipeline) saveState(state *types.PipelineState) {
	if err := os.MkdirAll(p.cfg.Paths.Logs, 0755); err != nil {
		log.Printf("[pipeline] Warning: could not create logs dir: %v", err)
		return
	}
	path := filepath.Join(p.cfg.Paths.Logs, fmt.Sprintf("pipeline_state_%s.json", state.Run.Timestamp))
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.Printf("[pipeline] Warning: could not marshal state: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("[pipeline] Warning: could not save state: %v", err)
	}
}
