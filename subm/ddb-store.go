package subm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
	"github.com/stimmen-archiv/backend/logger"
	"github.com/stimmen-archiv/backend/s3bucket"
)

// DDBStore is the indexed store mode: a manifest row in DynamoDB assigns
// sequential identifiers and summarizes every submission, while the message
// and image blobs live in the same S3 layout as the flat-file mode. The
// manifest update is a conditional put on its version, so two concurrent
// submissions cannot both claim the same identifier.
type DDBStore struct {
	table dynamo.Table
	blobs BlobBucket
	now   func() time.Time
}

func NewDDBStore(region string, tableName string, blobs BlobBucket) (*DDBStore, error) {
	if region == "" || tableName == "" {
		return nil, newErrStoreNotConfigured("S3_REGION or DDB_TABLE not set")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, newErrStoreNotConfigured("DynamoDB client setup failed").SetDebug(err)
	}

	db := dynamo.NewFromIface(dynamodb.NewFromConfig(cfg))
	return &DDBStore{
		table: db.Table(tableName),
		blobs: blobs,
		now:   time.Now,
	}, nil
}

func (d *DDBStore) readManifest(ctx context.Context) (manifestRow, error) {
	row := manifestRow{Key: manifestKey}
	err := d.table.Get("Key", manifestKey).One(ctx, &row)
	if err != nil && !errors.Is(err, dynamo.ErrNotFound) {
		return manifestRow{}, newErrStoreUnavailable().
			SetDebug(fmt.Errorf("failed to read manifest: %w", err))
	}
	return row, nil
}

func (d *DDBStore) Write(ctx context.Context, p WriteParams) (WriteResult, error) {
	row, err := d.readManifest(ctx)
	if err != nil {
		return WriteResult{}, err
	}

	next, entry := row.appendEntry(p, d.now())
	next.Version = row.Version + 1

	put := d.table.Put(next).If("attribute_not_exists(Version) OR Version = ?", row.Version)
	if err := put.Run(ctx); err != nil {
		if dynamo.IsCondCheckFailed(err) {
			return WriteResult{}, newErrConcurrentModification().SetDebug(err)
		}
		return WriteResult{}, newErrStoreUnavailable().
			SetDebug(fmt.Errorf("failed to update manifest: %w", err))
	}

	return writeBlobs(ctx, d.blobs, strconv.Itoa(entry.ID), p)
}

func (d *DDBStore) List(ctx context.Context) ([]Submission, int, error) {
	row, err := d.readManifest(ctx)
	if err != nil {
		return nil, 0, err
	}

	log := logger.FromContext(ctx)
	items := make([]Submission, 0, len(row.Entries))
	skipped := 0
	for i := len(row.Entries) - 1; i >= 0; i-- {
		entry := row.Entries[i]
		id := strconv.Itoa(entry.ID)

		message := ""
		data, err := d.blobs.Download(ctx, responseKey(id, messageFileName))
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

		urls := make([]string, 0, len(entry.Images))
		for _, name := range entry.Images {
			urls = append(urls, d.blobs.ObjectURL(responseKey(id, name)))
		}

		items = append(items, Submission{
			ID:        id,
			Message:   message,
			Images:    urls,
			Lang:      NormalizeLang(entry.Lang),
			CreatedAt: time.Unix(entry.CreatedAt, 0).UTC(),
		})
	}

	return items, skipped, nil
}
