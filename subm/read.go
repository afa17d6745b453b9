package subm

import "context"

// ListSubmissions returns persisted submissions newest-first, together with
// the number of entries that could not be read.
func (s *Srvc) ListSubmissions(ctx context.Context) ([]Submission, int, error) {
	return s.store.List(ctx)
}
