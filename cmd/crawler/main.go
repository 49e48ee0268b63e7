package main

import (
	"context"
	"log"

	"go2tech/transcript-analyzer/internal/config"
	"go2tech/transcript-analyzer/internal/crawler"
)

// One-off tool: fetches the skill-mapping reference datasets and writes
// them to the reference data directory the API loads at startup.
func main() {
	log.Println("🚀 Starting reference data crawl...")

	cfg := config.Load()

	client := crawler.NewClient(
		cfg.Crawler.GraphQLURL,
		cfg.Crawler.Timeout,
		cfg.Crawler.RequestRate,
	)

	c := crawler.New(client, cfg.Crawler.CurriculumID, cfg.RefData.Dir)
	if err := c.Run(context.Background()); err != nil {
		log.Fatalf("❌ Crawl failed: %v", err)
	}

	log.Printf("✅ Reference data written to %s\n", cfg.RefData.Dir)
}
