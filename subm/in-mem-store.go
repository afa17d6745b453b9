package subm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// InMemStore keeps submissions in memory with sequential identifiers. Used
// for tests and local development.
type InMemStore struct {
	mu    sync.Mutex
	count int
	items []Submission
}

func NewInMemStore() *InMemStore {
	return &InMemStore{}
}

func (s *InMemStore) Write(ctx context.Context, p WriteParams) (WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	id := fmt.Sprintf("%d", s.count)

	urls := make([]string, 0, len(p.Images))
	for i, img := range p.Images {
		urls = append(urls, "mem://"+responseKey(id, imageFileName(i+1, img.ContentType)))
	}

	s.items = append(s.items, Submission{
		ID:        id,
		Message:   p.Message,
		Images:    urls,
		Lang:      p.Lang,
		CreatedAt: time.Now().UTC(),
	})

	return WriteResult{ID: id, ImageURLs: urls}, nil
}

func (s *InMemStore) List(ctx context.Context) ([]Submission, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Submission, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		items = append(items, s.items[i])
	}
	return items, 0, nil
}
