package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"motivation-pipeline/config"
	"motivation-pipeline/pipeline"
	"motivation-pipeline/topics"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

const minDelay = 60 * time.Second

func main() {
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", "config.yaml", "path to config file")
		delaySec   = flag.Int("delay", 0, "seconds between runs (min 60, default from config)")
		voice      = flag.String("voice", "", "narration voice for every run")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = config.Default()
	}

	delay := time.Duration(cfg.Continuous.DelaySec) * time.Second
	if *delaySec > 0 {
		delay = time.Duration(*delaySec) * time.Second
	}
	if delay < minDelay {
		log.Printf("Delay raised to the %s floor", minDelay)
		delay = minDelay
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

	// SIGINT/SIGTERM sets a flag checked between runs and during waits.
	// The run in flight always finishes.
	var stopping atomic.Bool
	stopCh := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("🛑 Received %v — finishing current run, then stopping", sig)
		stopping.Store(true)
		close(stopCh)
	}()

	p := pipeline.New(cfg, client)
	opts := pipeline.Options{Voice: *voice}

	log.Printf("♾️  Continuous mode: one video every %s", delay)
	for iteration := 1; !stopping.Load(); iteration++ {
		topic := topics.Random()
		log.Printf("\n═══ Iteration %d ═══", iteration)

		if _, err := p.Execute(ctx, topic, opts); err != nil {
			log.Printf("⚠️  Run failed: %v", err)
		}

		if stopping.Load() {
			break
		}
		log.Printf("💤 Waiting %s before next run...", delay)
		select {
		case <-time.After(delay):
		case <-stopCh:
		}
	}

	log.Println("👋 Continuous mode stopped")
}
