package subm

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/stimmen-archiv/backend/email"
	"github.com/stimmen-archiv/backend/logger"
)

type CreateSubmissionParams struct {
	Subject string
	Message string
	ReplyTo string
	Lang    string
	Files   []FileAttachment
}

type CreateSubmissionResult struct {
	ID      string
	Warning string
}

const defaultSubject = "New Submission"

func (s *Srvc) CreateSubmission(ctx context.Context, p CreateSubmissionParams) (*CreateSubmissionResult, error) {
	message := strings.TrimSpace(p.Message)
	if message == "" {
		return nil, newErrMessageMissing()
	}

	files := p.Files
	if len(files) > MaxFiles {
		files = files[:MaxFiles]
	}
	images, err := acceptImages(files)
	if err != nil {
		return nil, err
	}

	res, err := s.store.Write(ctx, WriteParams{
		Message: message,
		Lang:    NormalizeLang(p.Lang),
		Images:  images,
	})
	if err != nil {
		return nil, err
	}

	subject := p.Subject
	if subject == "" {
		subject = defaultSubject
	}
	replyTo := p.ReplyTo
	if replyTo == "" {
		replyTo = s.senderEmail
	}

	msg := email.Compose(email.ComposeParams{
		From:        s.senderEmail,
		To:          s.destEmail,
		ReplyTo:     replyTo,
		Subject:     subject,
		Text:        notificationBody(message, res.ImageURLs),
		Attachments: s.attachments(images),
	})
	if err := s.sender.Send(ctx, msg); err != nil {
		logger.FromContext(ctx).Error("email send failed", "id", res.ID, "error", err)
		return &CreateSubmissionResult{
			ID:      res.ID,
			Warning: "Submission saved but email notification failed.",
		}, nil
	}

	return &CreateSubmissionResult{ID: res.ID}, nil
}

// acceptImages filters the posted files down to image-typed ones, decoding
// their content. Non-image files consume no position.
func acceptImages(files []FileAttachment) ([]ImageFile, error) {
	var images []ImageFile
	for _, f := range files {
		if !strings.HasPrefix(f.Type, "image/") {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(f.Data)
		if err != nil {
			return nil, newErrFileDataInvalid(f.Name).SetDebug(err)
		}
		images = append(images, ImageFile{
			Name:        f.Name,
			ContentType: f.Type,
			Data:        data,
		})
	}
	return images, nil
}

func notificationBody(message string, imageURLs []string) string {
	text := "Submission:\n\n" + message
	if len(imageURLs) > 0 {
		text += "\n\nImages:\n" + strings.Join(imageURLs, "\n")
	}
	return text
}

func (s *Srvc) attachments(images []ImageFile) []email.Attachment {
	if !s.attachImages {
		return nil
	}
	out := make([]email.Attachment, 0, len(images))
	for _, img := range images {
		out = append(out, email.Attachment{
			Filename:    img.Name,
			ContentType: img.ContentType,
			Data:        img.Data,
		})
	}
	return out
}
