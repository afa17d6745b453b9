package subm_test

import (
	"context"
	"encoding/base64"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stimmen-archiv/backend/email"
	"github.com/stimmen-archiv/backend/s3bucket"
	"github.com/stimmen-archiv/backend/subm"
	"github.com/stretchr/testify/require"
)

// fakeBucket is an in-memory BlobBucket.
type fakeBucket struct {
	mu           sync.Mutex
	objects      map[string][]byte
	uploadErr    map[string]error
	uploadErrAll error
	downloadErr  map[string]error
	listErr      error
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		objects:     map[string][]byte{},
		uploadErr:   map[string]error{},
		downloadErr: map[string]error{},
	}
}

func (b *fakeBucket) Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.uploadErrAll != nil {
		return "", b.uploadErrAll
	}
	if err := b.uploadErr[key]; err != nil {
		return "", err
	}
	b.objects[key] = content
	return b.ObjectURL(key), nil
}

func (b *fakeBucket) Download(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.downloadErr[key]; err != nil {
		return nil, err
	}
	data, ok := b.objects[key]
	if !ok {
		return nil, s3bucket.ErrKeyNotFound
	}
	return data, nil
}

func (b *fakeBucket) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.listErr != nil {
		return nil, b.listErr
	}
	var keys []string
	for key := range b.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *fakeBucket) ObjectURL(key string) string {
	return "https://blobs.test/" + key
}

// fakeSender records composed messages instead of delivering them.
type fakeSender struct {
	sent []email.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, m email.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

// failStore fails every operation.
type failStore struct {
	err error
}

func (f *failStore) Write(ctx context.Context, p subm.WriteParams) (subm.WriteResult, error) {
	return subm.WriteResult{}, f.err
}

func (f *failStore) List(ctx context.Context) ([]subm.Submission, int, error) {
	return nil, 0, f.err
}

func newTestSrvc(t *testing.T, store subm.Store, sender email.Sender) *subm.Srvc {
	t.Helper()
	srvc, err := subm.NewSrvc(store, sender, subm.SrvcConfig{
		SenderEmail:      "noreply@example.com",
		DestinationEmail: "owner@example.com",
	})
	require.NoError(t, err)
	return srvc
}

func pngFile(name string) subm.FileAttachment {
	return subm.FileAttachment{Name: name, Type: "image/png", Data: b64("png bytes")}
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
