package video

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"motivation-pipeline/config"
)

// Assembler renders narrated slideshow videos with ffmpeg: one clip per
// image, letterboxed to 1920x1080, faded, captioned, concatenated, styled
// with a random effect chain and muxed with the narration track.
type Assembler struct {
	cfg *config.Config
	rng *rand.Rand
}

// New creates an Assembler. A zero effect seed means seed from the clock;
// any other value makes the effect chain reproducible across runs.
func New(cfg *config.Config) *Assembler {
	seed := cfg.Video.EffectSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Assembler{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Available reports whether ffmpeg and ffprobe are on PATH. When they are
// not, the video stage is skipped instead of failing the run.
func Available() bool {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return false
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return false
	}
	return true
}

// Plan stretches the image list over the narration. If the images at the
// default per-image duration don't cover the audio, the whole list repeats
// cyclically enough times to cover it; either way every image then plays
// for total/len(timeline) seconds so the video ends exactly with the audio.
func Plan(imagePaths []string, audioDuration, defaultPerImage float64) ([]string, float64) {
	if len(imagePaths) == 0 || audioDuration <= 0 {
		return nil, 0
	}

	cycles := 1
	covered := float64(len(imagePaths)) * defaultPerImage
	if defaultPerImage > 0 && covered < audioDuration {
		cycles = int(audioDuration/covered) + 1
	}

	timeline := make([]string, 0, len(imagePaths)*cycles)
	for i := 0; i < cycles; i++ {
		timeline = append(timeline, imagePaths...)
	}
	return timeline, audioDuration / float64(len(timeline))
}

// CaptionFromFilename derives an overlay caption from an image filename:
// extension off, underscore parts that are pure digits (run timestamps,
// sequence numbers) dropped, the rest title-cased.
func CaptionFromFilename(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var words []string
	for _, part := range strings.Split(name, "_") {
		if part == "" || isDigits(part) {
			continue
		}
		words = append(words, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(words, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Run builds <videoName>.mp4 from the images and the narration WAV.
// Images that fail to render become blank black clips of the same
// duration, so the timing plan survives individual bad files.
func (a *Assembler) Run(ctx context.Context, imagePaths []string, audioPath, videoName string) (string, error) {
	log.Println("[video] Starting video assembly...")

	if len(imagePaths) == 0 {
		return "", fmt.Errorf("no images to assemble")
	}
	if err := os.MkdirAll(a.cfg.Paths.Videos, 0755); err != nil {
		return "", fmt.Errorf("create videos dir: %w", err)
	}

	audioDuration, err := a.probeDuration(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("probe narration duration: %w", err)
	}

	timeline, perImage := Plan(imagePaths, audioDuration, a.cfg.Video.DurationPerImageSec)
	log.Printf("[video] Narration %.2fs → %d clips at %.2fs each", audioDuration, len(timeline), perImage)

	workDir, err := os.MkdirTemp("", "clips_")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	clips := make([]string, 0, len(timeline))
	for i, img := range timeline {
		clipPath := filepath.Join(workDir, fmt.Sprintf("clip_%03d.mp4", i))
		isFirst := i == 0
		isLast := i == len(timeline)-1

		if err := a.renderClip(ctx, img, clipPath, perImage, isFirst, isLast); err != nil {
			log.Printf("[video] ⚠️  Clip %d from %s failed (%v) — inserting blank filler", i+1, filepath.Base(img), err)
			if err := a.renderFiller(ctx, clipPath, perImage, isFirst, isLast); err != nil {
				return "", fmt.Errorf("render filler clip %d: %w", i, err)
			}
		}
		clips = append(clips, clipPath)
	}

	silentPath := filepath.Join(workDir, "timeline.mp4")
	if err := a.concatClips(ctx, clips, silentPath, workDir); err != nil {
		return "", fmt.Errorf("concatenate clips: %w", err)
	}

	if a.cfg.Video.ApplyEffects {
		styledPath := filepath.Join(workDir, "styled.mp4")
		if err := a.applyEffects(ctx, silentPath, styledPath); err != nil {
			log.Printf("[video] ⚠️  Effect pass failed, keeping plain timeline: %v", err)
		} else {
			silentPath = styledPath
		}
	}

	outputPath := filepath.Join(a.cfg.Paths.Videos, videoName+".mp4")
	if err := a.muxAudio(ctx, silentPath, audioPath, outputPath); err != nil {
		return "", fmt.Errorf("mux narration: %w", err)
	}

	log.Printf("[video] ✅ Video saved: %s", outputPath)
	return outputPath, nil
}

// renderClip turns one image into a letterboxed clip of the given
// duration. The first clip fades in only, the last fades out only,
// interior clips do both.
func (a *Assembler) renderClip(ctx context.Context, imagePath, outPath string, duration float64, isFirst, isLast bool) error {
	if _, err := os.Stat(imagePath); err != nil {
		return fmt.Errorf("image missing: %w", err)
	}

	filters := []string{
		"scale=1920:1080:force_original_aspect_ratio=decrease",
		"pad=1920:1080:(ow-iw)/2:(oh-ih)/2:black",
		"setsar=1",
	}
	filters = append(filters, a.fadeFilters(duration, isFirst, isLast)...)

	if a.cfg.Video.AddCaptions {
		if caption := CaptionFromFilename(imagePath); caption != "" {
			filters = append(filters, fmt.Sprintf(
				"drawtext=text='%s':fontsize=56:fontcolor=white:borderw=3:bordercolor=black:x=(w-text_w)/2:y=h-180",
				escapeDrawtext(caption)))
		}
	}

	args := []string{
		"-y", "-loop", "1",
		"-t", fmt.Sprintf("%.3f", duration),
		"-i", imagePath,
		"-vf", strings.Join(filters, ","),
		"-r", strconv.Itoa(a.cfg.Video.FPS),
		"-c:v", "libx264", "-preset", "medium", "-pix_fmt", "yuv420p",
		outPath,
	}
	return runFFmpeg(ctx, args)
}

// renderFiller produces a plain black clip of the given duration, used in
// place of images that could not be rendered.
func (a *Assembler) renderFiller(ctx context.Context, outPath string, duration float64, isFirst, isLast bool) error {
	filters := append([]string{"setsar=1"}, a.fadeFilters(duration, isFirst, isLast)...)
	args := []string{
		"-y", "-f", "lavfi",
		"-i", fmt.Sprintf("color=c=black:s=1920x1080:d=%.3f:r=%d", duration, a.cfg.Video.FPS),
		"-vf", strings.Join(filters, ","),
		"-c:v", "libx264", "-preset", "medium", "-pix_fmt", "yuv420p",
		outPath,
	}
	return runFFmpeg(ctx, args)
}

func (a *Assembler) fadeFilters(duration float64, isFirst, isLast bool) []string {
	if !a.cfg.Video.AddTransitions {
		return nil
	}
	fade := a.cfg.Video.FadeSec
	if fade <= 0 || fade*2 > duration {
		return nil
	}

	// First clip fades in only, last fades out only, interior clips both.
	// A single-clip timeline gets both.
	var filters []string
	if isFirst || !isLast {
		filters = append(filters, fmt.Sprintf("fade=t=in:st=0:d=%.2f", fade))
	}
	if isLast || !isFirst {
		filters = append(filters, fmt.Sprintf("fade=t=out:st=%.2f:d=%.2f", duration-fade, fade))
	}
	return filters
}

func (a *Assembler) concatClips(ctx context.Context, clips []string, outPath, workDir string) error {
	listPath := filepath.Join(workDir, "concat.txt")
	var b strings.Builder
	for _, c := range clips {
		fmt.Fprintf(&b, "file '%s'\n", c)
	}
	if err := os.WriteFile(listPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	args := []string{
		"-y", "-f", "concat", "-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outPath,
	}
	return runFFmpeg(ctx, args)
}

// applyEffects re-encodes the concatenated timeline through a randomly
// selected chain from the effect catalog.
func (a *Assembler) applyEffects(ctx context.Context, inPath, outPath string) error {
	chain := SelectEffects(a.rng, a.cfg.Video.MinEffects, a.cfg.Video.MaxEffects)
	if len(chain) == 0 {
		return os.Rename(inPath, outPath)
	}

	names := make([]string, len(chain))
	filters := make([]string, len(chain))
	for i, e := range chain {
		names[i] = e.Name
		filters[i] = e.Filter
	}
	log.Printf("[video] Applying effects: %s", strings.Join(names, ", "))

	args := []string{
		"-y", "-i", inPath,
		"-vf", strings.Join(filters, ","),
		"-c:v", "libx264", "-preset", "medium", "-pix_fmt", "yuv420p",
		outPath,
	}
	return runFFmpeg(ctx, args)
}

func (a *Assembler) muxAudio(ctx context.Context, videoPath, audioPath, outPath string) error {
	args := []string{
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", "copy",
		"-c:a", "aac", "-b:a", "192k",
		"-shortest",
		outPath,
	}
	return runFFmpeg(ctx, args)
}

// probeDuration returns a media file's duration in seconds via ffprobe.
func (a *Assembler) probeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	dur, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(string(out)), err)
	}
	return dur, nil
}

func runFFmpeg(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, tail(string(out), 400))
	}
	return nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}

func escapeDrawtext(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
		`%`, `\%`,
	)
	return r.Replace(s)
}
