package video

import (
	"math"
	"math/rand"
	"testing"

	"motivation-pipeline/config"
)

func TestPlanCoversAudioExactly(t *testing.T) {
	imgs := []string{"a.png", "b.png", "c.png"}

	cases := []struct {
		name     string
		audio    float64
		perImage float64
	}{
		{"images already cover audio", 10, 5},
		{"audio needs one extra cycle", 20, 5},
		{"audio needs several cycles", 95, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			timeline, per := Plan(imgs, tc.audio, tc.perImage)
			if len(timeline)%len(imgs) != 0 {
				t.Fatalf("timeline length %d is not a whole number of cycles", len(timeline))
			}
			total := per * float64(len(timeline))
			if math.Abs(total-tc.audio) > 1e-9 {
				t.Fatalf("total %v != audio duration %v", total, tc.audio)
			}
		})
	}
}

func TestPlanRepeatsWholeList(t *testing.T) {
	imgs := []string{"a.png", "b.png"}
	timeline, _ := Plan(imgs, 25, 5) // 2 images x 5s = 10s < 25s → 3 cycles

	if len(timeline) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(timeline))
	}
	for i, p := range timeline {
		if p != imgs[i%2] {
			t.Fatalf("entry %d is %q, cyclic order broken", i, p)
		}
	}
}

func TestPlanNoCyclingWhenCovered(t *testing.T) {
	imgs := []string{"a.png", "b.png", "c.png", "d.png"}
	timeline, per := Plan(imgs, 12, 5) // 20s default coverage > 12s audio

	if len(timeline) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(timeline))
	}
	if math.Abs(per-3) > 1e-9 {
		t.Fatalf("expected 3s per image, got %v", per)
	}
}

func TestPlanEmpty(t *testing.T) {
	if timeline, _ := Plan(nil, 30, 5); timeline != nil {
		t.Fatalf("expected nil timeline for no images, got %v", timeline)
	}
}

func TestCaptionFromFilename(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"output/images/motivation_20250101_120000_1.png", "Motivation"},
		{"quantum_leap_20250101_120000_2.jpg", "Quantum Leap"},
		{"20250101_120000.png", ""},
		{"future_of_ai.png", "Future Of Ai"},
	}
	for _, tc := range cases {
		if got := CaptionFromFilename(tc.path); got != tc.want {
			t.Errorf("CaptionFromFilename(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestFadeFiltersPositions(t *testing.T) {
	cfg := config.Default()
	a := New(cfg)

	first := a.fadeFilters(5, true, false)
	if len(first) != 1 {
		t.Fatalf("first clip should fade in only, got %v", first)
	}
	last := a.fadeFilters(5, false, true)
	if len(last) != 1 {
		t.Fatalf("last clip should fade out only, got %v", last)
	}
	interior := a.fadeFilters(5, false, false)
	if len(interior) != 2 {
		t.Fatalf("interior clip should fade both ways, got %v", interior)
	}
	only := a.fadeFilters(5, true, true)
	if len(only) != 2 {
		t.Fatalf("single clip should fade both ways, got %v", only)
	}
}

func TestFadeFiltersSkippedForShortClips(t *testing.T) {
	cfg := config.Default()
	cfg.Video.FadeSec = 3
	a := New(cfg)

	if got := a.fadeFilters(5, false, false); got != nil {
		t.Fatalf("fades longer than half the clip should be dropped, got %v", got)
	}
}

func TestSelectEffectsBandAndUniqueness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		chain := SelectEffects(rng, 2, 4)
		if len(chain) < 2 || len(chain) > 4 {
			t.Fatalf("chain size %d outside [2,4]", len(chain))
		}
		seen := map[string]bool{}
		for _, e := range chain {
			if seen[e.Name] {
				t.Fatalf("effect %q selected twice", e.Name)
			}
			seen[e.Name] = true
			if e.Filter == "" {
				t.Fatalf("effect %q resolved to empty filter", e.Name)
			}
		}
	}
}

func TestSelectEffectsDeterministicPerSeed(t *testing.T) {
	a := SelectEffects(rand.New(rand.NewSource(42)), 2, 4)
	b := SelectEffects(rand.New(rand.NewSource(42)), 2, 4)

	if len(a) != len(b) {
		t.Fatalf("chain lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("chains diverge at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
