package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"motivation-pipeline/config"
	"motivation-pipeline/narration"
	"motivation-pipeline/pipeline"
	"motivation-pipeline/topics"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env for local dev; CI injects real env vars.
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", "config.yaml", "path to config file")
		topic      = flag.String("topic", "", "topic to generate a video about")
		auto       = flag.Bool("auto", false, "pick a random topic without prompting")
		voice      = flag.String("voice", "", "narration voice (default: af_bella)")
		skipAudio  = flag.Bool("skip-audio", false, "skip narration and video")
		skipVideo  = flag.Bool("skip-video", false, "skip video assembly")
		listVoices = flag.Bool("list-voices", false, "list available narration voices and exit")
	)
	flag.Parse()

	if *listVoices {
		for _, v := range narration.Voices() {
			fmt.Println(v)
		}
		return
	}

	cfg := loadConfig(*configPath)

	chosen := *topic
	switch {
	case chosen != "":
	case *auto:
		chosen = topics.Random()
	default:
		chosen = topics.ChooseInteractive(os.Stdin, os.Stdout)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Fatalf("Gemini client: %v", err)
	}
	defer client.Close()

	p := pipeline.New(cfg, client)
	state, err := p.Execute(ctx, chosen, pipeline.Options{
		Voice:     *voice,
		SkipAudio: *skipAudio,
		SkipVideo: *skipVideo,
	})
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}
	if state.Run.VideoPath != "" {
		log.Printf("🎥 Final video: %s", state.Run.VideoPath)
	}
}

// loadConfig reads the yaml config, falling back to built-in defaults when
// the file does not exist.
func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No %s — using default configuration", path)
			return config.Default()
		}
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
