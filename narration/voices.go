package narration

// VoiceOptions lists the voices the synthesis engine ships, grouped by
// accent family.
var VoiceOptions = map[string][]string{
	"American English": {"af", "af_bella", "af_sarah", "am_adam", "am_michael"},
	"British English":  {"bf_emma", "bf_isabella", "bm_george", "bm_lewis"},
	"Custom":           {"af_nicole", "af_sky", "af_heart"},
}

// DefaultVoices maps a content category to its fallback voice.
var DefaultVoices = map[string]string{
	"motivation":   "af_bella",
	"storytelling": "af_heart",
	"instruction":  "am_michael",
	"default":      "af_bella",
}

// ResolveVoice returns the requested voice if the engine knows it, and the
// fixed motivation default otherwise. Invalid input never errors.
func ResolveVoice(requested string) string {
	for _, voices := range VoiceOptions {
		for _, v := range voices {
			if v == requested {
				return requested
			}
		}
	}
	return DefaultVoices["motivation"]
}

// Voices returns every known voice, grouped order preserved within each
// family.
func Voices() []string {
	var out []string
	for _, family := range []string{"American English", "British English", "Custom"} {
		out = append(out, VoiceOptions[family]...)
	}
	return out
}
