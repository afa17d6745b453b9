package feed

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/stimmen-archiv/backend/subm"
)

// PlaceholderMarker must appear exactly once in a feed page template.
const PlaceholderMarker = "<!-- RESPONSES_PLACEHOLDER -->"

const previewLength = 150

// RenderPage substitutes the rendered submission cards into the template.
// Pure and deterministic; the marker never survives into the output.
func RenderPage(template string, items []subm.Submission, lang string) (string, error) {
	if n := strings.Count(template, PlaceholderMarker); n != 1 {
		return "", fmt.Errorf("template must contain %q exactly once, found %d", PlaceholderMarker, n)
	}
	return strings.Replace(template, PlaceholderMarker, renderCards(items, lang), 1), nil
}

func renderCards(items []subm.Submission, lang string) string {
	if len(items) == 0 {
		if lang == "en" {
			return `<div class="response-empty">No submissions yet.</div>`
		}
		return `<div class="response-empty">Noch keine Einsendungen.</div>`
	}

	cards := make([]string, 0, len(items))
	for _, item := range items {
		cards = append(cards, renderCard(item))
	}
	return strings.Join(cards, "\n")
}

// cardItem is the serialized form embedded in the data-item attribute for
// client-side detail expansion.
type cardItem struct {
	ID        string   `json:"id"`
	Message   string   `json:"message"`
	Images    []string `json:"images"`
	CreatedAt string   `json:"createdAt"`
}

func renderCard(item subm.Submission) string {
	images := item.Images
	if images == nil {
		images = []string{}
	}

	data, _ := json.Marshal(cardItem{
		ID:        item.ID,
		Message:   item.Message,
		Images:    images,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	})
	// json.Marshal escapes <, > and & already; single quotes must not end
	// the surrounding attribute.
	attr := strings.ReplaceAll(string(data), "'", "&apos;")

	thumb := `<div class="card-image"></div>`
	if len(images) > 0 {
		thumb = fmt.Sprintf(`<img class="card-image" src="%s" alt="">`, html.EscapeString(images[0]))
	}

	created := item.CreatedAt.UTC().Format("2006-01-02 15:04")

	return fmt.Sprintf(`
<div class="feed-card" data-item='%s'>
    %s
    <div class="card-content">
        <div class="card-meta">%s</div>
        <div class="card-text">%s</div>
    </div>
</div>`, attr, thumb, html.EscapeString(created), html.EscapeString(Preview(item.Message)))
}

// Preview truncates a message to the first 150 characters, backing off to the
// last whitespace boundary so a word is not split mid-way.
func Preview(message string) string {
	runes := []rune(message)
	if len(runes) <= previewLength {
		return message
	}
	cut := string(runes[:previewLength])
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}
