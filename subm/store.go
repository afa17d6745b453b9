package subm

import "context"

// WriteParams carries one validated submission to a store. Images hold only
// the accepted (image-typed) files, already decoded, in submission order.
type WriteParams struct {
	Message string
	Lang    string
	Images  []ImageFile
}

// WriteResult reports the assigned identifier and the externally addressable
// URL of each stored image, in submission order.
type WriteResult struct {
	ID        string
	ImageURLs []string
}

// Store persists submissions. Write assigns the identifier; List returns
// submissions newest-first together with the number of entries that could
// not be read and were therefore omitted.
type Store interface {
	Write(ctx context.Context, p WriteParams) (WriteResult, error)
	List(ctx context.Context) (items []Submission, skipped int, err error)
}
