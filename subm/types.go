package subm

import "time"

// Submission is one user-contributed record as seen by the read path.
// Images are resolved, externally addressable URLs in display order.
type Submission struct {
	ID        string
	Message   string
	Images    []string
	Lang      string
	CreatedAt time.Time
}

// FileAttachment is one file as posted by the intake form. Data is the
// client-side base64 encoding of the file content.
type FileAttachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// ImageFile is an accepted image ready for storage. Position in the slice
// determines the stored file name.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

const (
	DefaultLang = "de"

	// MaxFiles is the hard cap on files per submission. Entries beyond it
	// are dropped before any side effect.
	MaxFiles = 10
)

// NormalizeLang maps anything that is not "en" to the default language.
func NormalizeLang(lang string) string {
	if lang == "en" {
		return "en"
	}
	return DefaultLang
}
