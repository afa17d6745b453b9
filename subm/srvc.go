package subm

import (
	"github.com/stimmen-archiv/backend/email"
)

// Srvc orchestrates submission intake: persist first, then notify the
// operator by mail. Mail failure after a successful write degrades to a
// warning instead of failing the submission.
type Srvc struct {
	store        Store
	sender       email.Sender
	senderEmail  string
	destEmail    string
	attachImages bool
}

type SrvcConfig struct {
	SenderEmail      string
	DestinationEmail string

	// AttachImages switches the notification mail from linking stored image
	// URLs to carrying the images as attachments.
	AttachImages bool
}

func NewSrvc(store Store, sender email.Sender, cfg SrvcConfig) (*Srvc, error) {
	if cfg.SenderEmail == "" || cfg.DestinationEmail == "" {
		return nil, newErrMailNotConfigured()
	}
	return &Srvc{
		store:        store,
		sender:       sender,
		senderEmail:  cfg.SenderEmail,
		destEmail:    cfg.DestinationEmail,
		attachImages: cfg.AttachImages,
	}, nil
}
