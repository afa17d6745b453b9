package conf

import "os"

// Config holds every external setting the binaries need. Required items are
// validated by the component constructors, not here.
type Config struct {
	Address          string
	StoreMode        string // "flat" or "indexed"
	S3Region         string
	S3Bucket         string
	DDBTable         string
	SenderEmail      string
	DestinationEmail string
	AttachImages     bool
}

func Load() Config {
	return Config{
		Address:          getenv("ADDRESS", ":8080"),
		StoreMode:        getenv("STORE_MODE", "flat"),
		S3Region:         os.Getenv("S3_REGION"),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		DDBTable:         os.Getenv("DDB_TABLE"),
		SenderEmail:      os.Getenv("SENDER_EMAIL"),
		DestinationEmail: os.Getenv("DESTINATION_EMAIL"),
		AttachImages:     os.Getenv("MAIL_ATTACH_IMAGES") == "true",
	}
}

func getenv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
