package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/stimmen-archiv/backend/conf"
	"github.com/stimmen-archiv/backend/email"
	"github.com/stimmen-archiv/backend/http"
	"github.com/stimmen-archiv/backend/s3bucket"
	"github.com/stimmen-archiv/backend/subm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg := conf.Load()

	store, err := newStore(cfg)
	if err != nil {
		slog.Error("store setup failed", "error", err)
		os.Exit(1)
	}

	sender, err := email.NewSESSender(cfg.S3Region)
	if err != nil {
		slog.Error("mail transport setup failed", "error", err)
		os.Exit(1)
	}

	submSrvc, err := subm.NewSrvc(store, sender, subm.SrvcConfig{
		SenderEmail:      cfg.SenderEmail,
		DestinationEmail: cfg.DestinationEmail,
		AttachImages:     cfg.AttachImages,
	})
	if err != nil {
		slog.Error("service setup failed", "error", err)
		os.Exit(1)
	}

	httpServer := http.NewHttpServer(submSrvc)

	log.Printf("Starting server on %s", cfg.Address)
	err = httpServer.Start(cfg.Address)
	log.Printf("Server stopped with error: %v", err)
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
