// feedgen renders the static feed page: it lists the stored submissions and
// substitutes the rendered cards into the template's placeholder marker.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/stimmen-archiv/backend/conf"
	"github.com/stimmen-archiv/backend/feed"
	"github.com/stimmen-archiv/backend/s3bucket"
	"github.com/stimmen-archiv/backend/subm"
)

func main() {
	templatePath := flag.String("template", "pre-index.html", "page template containing the responses placeholder")
	outPath := flag.String("out", "index.html", "output file")
	lang := flag.String("lang", "de", "language of the empty-feed placeholder (de or en)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := conf.Load()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("store setup failed: %v", err)
	}

	template, err := os.ReadFile(*templatePath)
	if err != nil {
		log.Fatalf("failed to read template: %v", err)
	}

	items, skipped, err := store.List(context.Background())
	if err != nil {
		log.Fatalf("failed to list submissions: %v", err)
	}
	if skipped > 0 {
		log.Printf("warning: %d submissions could not be read and were omitted", skipped)
	}

	page, err := feed.RenderPage(string(template), items, *lang)
	if err != nil {
		log.Fatalf("failed to render page: %v", err)
	}

	if err := os.WriteFile(*outPath, []byte(page), 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("Built %s with %d responses", *outPath, len(items))
}

func newStore(cfg conf.Config) (subm.Store, error) {
	switch cfg.StoreMode {
	case "indexed":
		if cfg.S3Region == "" || cfg.S3Bucket == "" {
			return nil, fmt.Errorf("storage configuration missing: S3_REGION or S3_BUCKET not set")
		}
		blobs, err := s3bucket.NewS3Bucket(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			return nil, err
		}
		return subm.NewDDBStore(cfg.S3Region, cfg.DDBTable, blobs)
	case "flat":
		return subm.NewS3Store(cfg.S3Region, cfg.S3Bucket)
	default:
		return nil, fmt.Errorf("unknown STORE_MODE %q, want flat or indexed", cfg.StoreMode)
	}
}
