package subm

import "time"

// manifestRow is the single index record of the indexed store mode. It hands
// out sequential identifiers and summarizes every submission. Version backs
// the optimistic-locking precondition on updates.
type manifestRow struct {
	Key     string          `dynamo:"Key,hash"`
	Count   int             `dynamo:"Count"`
	Entries []manifestEntry `dynamo:"Entries"`
	Version int             `dynamo:"Version"`
}

type manifestEntry struct {
	ID        int      `dynamo:"Id"`
	Images    []string `dynamo:"Images"`
	Lang      string   `dynamo:"Lang"`
	CreatedAt int64    `dynamo:"CreatedAt"`
}

const manifestKey = "responses"

// appendEntry assigns the next sequential identifier and appends a summary of
// the submission. The receiver is not modified.
func (m manifestRow) appendEntry(p WriteParams, now time.Time) (manifestRow, manifestEntry) {
	names := make([]string, 0, len(p.Images))
	for i, img := range p.Images {
		names = append(names, imageFileName(i+1, img.ContentType))
	}

	entry := manifestEntry{
		ID:        m.Count + 1,
		Images:    names,
		Lang:      p.Lang,
		CreatedAt: now.Unix(),
	}

	next := m
	next.Key = manifestKey
	next.Count = entry.ID
	next.Entries = append(append([]manifestEntry{}, m.Entries...), entry)
	return next, entry
}
