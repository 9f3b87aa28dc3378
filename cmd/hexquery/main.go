package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexquery/internal/config"
	"github.com/gravitas-games/hexquery/internal/scenario"
)

func main() {
	log.SetOutput(os.Stderr)
	log.Println("Starting hexquery...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/scenario.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Configuration loaded from %s", configPath)

	sc, err := scenario.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build scenario: %v", err)
	}

	if out := cfg.Output.ObstaclesCSV; out != "" {
		if err := writeObstacles(sc, out); err != nil {
			log.Fatalf("Failed to write obstacle layer: %v", err)
		}
		log.Printf("Obstacle layer written to %s", out)
	}

	report, err := sc.Run()
	if err != nil {
		log.Fatalf("Scenario failed: %v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Printf("Error flushing results: %v", err)
	}

	log.Printf("Ran %d queries", len(report.Results))
}

func writeObstacles(sc *scenario.Scenario, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sc.WriteObstaclesCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
