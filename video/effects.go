package video

import (
	"fmt"
	"math/rand"
)

// Effect is one named visual transform from the fixed menu. Build resolves
// its random parameters against the run's seeded source and returns an
// ffmpeg video-filter expression for a 1920x1080 timeline.
type Effect struct {
	Name  string
	Build func(rng *rand.Rand) string
}

// AppliedEffect is an effect with its parameters already resolved, so a
// run's whole effect chain is fixed the moment it is selected.
type AppliedEffect struct {
	Name   string
	Filter string
}

// Catalog is the fixed effect menu. Effects apply to the entire
// concatenated timeline, never per clip, so their boundaries don't fight
// the per-image fades.
var Catalog = []Effect{
	{
		Name: "ken_burns_zoom",
		Build: func(rng *rand.Rand) string {
			factor := 1.05 + rng.Float64()*0.05
			step := (factor - 1.0) / 240.0
			return fmt.Sprintf(
				"scale=3840:2160,zoompan=z='min(zoom+%.6f,%.3f)':x='iw/2-(iw/zoom/2)':y='ih/2-(ih/zoom/2)':d=1:s=1920x1080:fps=24",
				step, factor)
		},
	},
	{
		Name: "slow_pan",
		Build: func(rng *rand.Rand) string {
			pan := 0.05 + rng.Float64()*0.10
			if rng.Intn(2) == 0 {
				return fmt.Sprintf(
					"crop=w=iw*%.3f:h=ih:x='(in_w-out_w)*min(t/10\\,1)':y=0,scale=1920:1080",
					1-pan)
			}
			return fmt.Sprintf(
				"crop=w=iw:h=ih*%.3f:x=0:y='(in_h-out_h)*min(t/10\\,1)',scale=1920:1080",
				1-pan)
		},
	},
	{
		Name: "color_boost",
		Build: func(rng *rand.Rand) string {
			contrast := 1.1 + rng.Float64()*0.3
			saturation := 1.1 + rng.Float64()*0.3
			return fmt.Sprintf("eq=contrast=%.2f:saturation=%.2f", contrast, saturation)
		},
	},
	{
		Name: "dark_overlay",
		Build: func(rng *rand.Rand) string {
			opacity := 0.2 + rng.Float64()*0.2
			return fmt.Sprintf("drawbox=c=black@%.2f:t=fill", opacity)
		},
	},
	{
		Name: "glow",
		Build: func(rng *rand.Rand) string {
			if rng.Intn(2) == 0 {
				// Warm glow.
				return "eq=brightness=0.06:saturation=1.15,colorbalance=rm=0.05:ym=-0.05"
			}
			// Cool glow.
			return "eq=brightness=0.04:saturation=1.10,colorbalance=bm=0.05"
		},
	},
	{
		Name: "cinematic_crop",
		Build: func(rng *rand.Rand) string {
			// 21:9 crop padded back onto the 16:9 frame.
			return "crop=1920:822:0:129,pad=1920:1080:0:129:black"
		},
	},
	{
		Name: "vignette",
		Build: func(rng *rand.Rand) string {
			angle := 0.2 + rng.Float64()*0.15
			return fmt.Sprintf("vignette=PI*%.2f", angle)
		},
	},
	{
		Name: "subtle_grain",
		Build: func(rng *rand.Rand) string {
			strength := 5 + rng.Intn(6)
			return fmt.Sprintf("noise=alls=%d:allf=t", strength)
		},
	},
	{
		Name: "mirror",
		Build: func(rng *rand.Rand) string {
			return "hflip"
		},
	},
	{
		Name: "monochrome",
		Build: func(rng *rand.Rand) string {
			return "hue=s=0"
		},
	},
}

// SelectEffects draws a random subset of the catalog, size within
// [minEffects, maxEffects], without replacement, and resolves each
// effect's parameters once. Selection order is application order. The
// same seed yields the same chain.
func SelectEffects(rng *rand.Rand, minEffects, maxEffects int) []AppliedEffect {
	if minEffects < 0 {
		minEffects = 0
	}
	if maxEffects > len(Catalog) {
		maxEffects = len(Catalog)
	}
	if minEffects > maxEffects {
		minEffects = maxEffects
	}

	n := minEffects
	if maxEffects > minEffects {
		n += rng.Intn(maxEffects - minEffects + 1)
	}
	if n == 0 {
		return nil
	}

	perm := rng.Perm(len(Catalog))
	applied := make([]AppliedEffect, 0, n)
	for _, idx := range perm[:n] {
		e := Catalog[idx]
		applied = append(applied, AppliedEffect{Name: e.Name, Filter: e.Build(rng)})
	}
	return applied
}
