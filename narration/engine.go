package narration

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Segment is one synthesized chunk as emitted by the engine: how many
// graphemes it covers, how long it plays, and its decoded waveform.
type Segment struct {
	Graphemes int
	Duration  float64
	Buffer    *audio.IntBuffer
}

// Engine converts cleaned text to an ordered sequence of audio segments.
// The engine does its own sentence segmentation; callers submit the whole
// text at once.
type Engine interface {
	Synthesize(ctx context.Context, text, voice, lang string) ([]Segment, error)
}

// KokoroClient talks to a Kokoro-compatible TTS HTTP service. The service
// segments the text internally and returns each segment's grapheme count,
// duration and a base64 WAV payload.
type KokoroClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewKokoroClient creates a client for the TTS service at baseURL.
func NewKokoroClient(baseURL string) *KokoroClient {
	return &KokoroClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

type synthesisRequest struct {
	Text     string `json:"text"`
	Voice    string `json:"voice"`
	Language string `json:"language"`
}

type synthesisResponse struct {
	Segments []struct {
		Graphemes int     `json:"graphemes"`
		Duration  float64 `json:"duration"`
		Audio     string  `json:"audio"` // base64 WAV
	} `json:"segments"`
}

// Synthesize submits the text and decodes every returned WAV chunk,
// preserving emission order.
func (c *KokoroClient) Synthesize(ctx context.Context, text, voice, lang string) ([]Segment, error) {
	body, err := json.Marshal(synthesisRequest{Text: text, Voice: voice, Language: lang})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/synthesize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts error: %s - %s", resp.Status, string(b))
	}

	var parsed synthesisResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse tts response: %w", err)
	}

	segments := make([]Segment, 0, len(parsed.Segments))
	for i, s := range parsed.Segments {
		raw, err := base64.StdEncoding.DecodeString(s.Audio)
		if err != nil {
			return nil, fmt.Errorf("segment %d: decode audio: %w", i, err)
		}
		buf, err := decodeWAV(raw)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, Segment{Graphemes: s.Graphemes, Duration: s.Duration, Buffer: buf})
	}
	return segments, nil
}

func decodeWAV(data []byte) (*audio.IntBuffer, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav payload")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	return buf, nil
}
