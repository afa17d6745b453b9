package http

import (
	"time"

	"github.com/stimmen-archiv/backend/subm"
)

type Submission struct {
	ID        string   `json:"id"`
	Message   string   `json:"message"`
	Images    []string `json:"images"`
	Lang      string   `json:"lang,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

func mapSubm(x subm.Submission) Submission {
	images := x.Images
	if images == nil {
		images = []string{}
	}
	return Submission{
		ID:        x.ID,
		Message:   x.Message,
		Images:    images,
		Lang:      x.Lang,
		CreatedAt: x.CreatedAt.Format(time.RFC3339),
	}
}

func mapSubmList(xs []subm.Submission) []Submission {
	response := make([]Submission, 0, len(xs))
	for _, x := range xs {
		response = append(response, mapSubm(x))
	}
	return response
}
