package subm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stimmen-archiv/backend/logger"
	"github.com/stimmen-archiv/backend/s3bucket"
)

// BlobBucket is the blob storage surface the stores need. *s3bucket.S3Bucket
// satisfies it.
type BlobBucket interface {
	Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	ObjectURL(key string) string
}

// S3Store is the flat-file store mode: each submission lives under
// responses/<unix-seconds>/ with a response.md and numbered image files.
// There is no index record and no cross-file transaction.
type S3Store struct {
	blobs BlobBucket
	now   func() time.Time
}

func NewS3Store(region string, bucket string) (*S3Store, error) {
	if region == "" || bucket == "" {
		return nil, newErrStoreNotConfigured("S3_REGION or S3_BUCKET not set")
	}
	blobs, err := s3bucket.NewS3Bucket(region, bucket)
	if err != nil {
		return nil, newErrStoreNotConfigured("S3 client setup failed").SetDebug(err)
	}
	return NewS3StoreWithBucket(blobs), nil
}

func NewS3StoreWithBucket(blobs BlobBucket) *S3Store {
	return &S3Store{blobs: blobs, now: time.Now}
}

func (s *S3Store) Write(ctx context.Context, p WriteParams) (WriteResult, error) {
	id := strconv.FormatInt(s.now().Unix(), 10)
	return writeBlobs(ctx, s.blobs, id, p)
}

// writeBlobs performs the per-file uploads shared by both store modes.
// Uploads already done are not undone when a later one fails.
func writeBlobs(ctx context.Context, blobs BlobBucket, id string, p WriteParams) (WriteResult, error) {
	message := strings.TrimSpace(p.Message)
	_, err := blobs.Upload(ctx, []byte(message), responseKey(id, messageFileName), "text/markdown")
	if err != nil {
		return WriteResult{}, newErrStoreUnavailable().
			SetDebug(fmt.Errorf("failed to create %s: %w", messageFileName, err))
	}

	urls := make([]string, 0, len(p.Images))
	for i, img := range p.Images {
		name := imageFileName(i+1, img.ContentType)
		url, err := blobs.Upload(ctx, img.Data, responseKey(id, name), img.ContentType)
		if err != nil {
			return WriteResult{}, newErrStoreUnavailable().
				SetDebug(fmt.Errorf("failed to upload image %s: %w", name, err))
		}
		urls = append(urls, url)
	}

	return WriteResult{ID: id, ImageURLs: urls}, nil
}

func (s *S3Store) List(ctx context.Context) ([]Submission, int, error) {
	keys, err := s.blobs.ListKeys(ctx, responsesPrefix)
	if err != nil {
		return nil, 0, newErrStoreUnavailable().
			SetDebug(fmt.Errorf("failed to list responses: %w", err))
	}

	log := logger.FromContext(ctx)
	dirs := groupResponseKeys(keys)
	items := make([]Submission, 0, len(dirs))
	skipped := 0
	for _, d := range dirs {
		id := strconv.FormatInt(d.id, 10)

		message := ""
		data, err := s.blobs.Download(ctx, responseKey(id, messageFileName))
		switch {
		case err == nil:
			message = strings.TrimSpace(string(data))
		case errors.Is(err, s3bucket.ErrKeyNotFound):
			// degraded entry, keep it with an empty message
		default:
			log.Warn("skipping unreadable submission", "id", id, "error", err)
			skipped++
			continue
		}

		var names []string
		for _, file := range d.files {
			if isImageFileName(file) {
				names = append(names, file)
			}
		}
		sortImageNames(names)
		urls := make([]string, 0, len(names))
		for _, name := range names {
			urls = append(urls, s.blobs.ObjectURL(responseKey(id, name)))
		}

		items = append(items, Submission{
			ID:        id,
			Message:   message,
			Images:    urls,
			Lang:      DefaultLang,
			CreatedAt: time.Unix(d.id, 0).UTC(),
		})
	}

	return items, skipped, nil
}
