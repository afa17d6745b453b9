package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attachment is one file carried by a notification mail.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ComposeParams struct {
	From        string
	To          string
	ReplyTo     string
	Subject     string
	Text        string
	Attachments []Attachment
}

// Message is a composed MIME message ready for a transport.
type Message struct {
	From string
	To   string
	ID   string
	Raw  []byte
}

const dateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Compose builds a well-formed MIME message. Without attachments the result
// is a single text/plain part; with attachments it is multipart/mixed with
// one base64 part per attachment.
func Compose(p ComposeParams) Message {
	id := messageID(p.From, time.Now())

	var buf bytes.Buffer
	header := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}
	header("From", p.From)
	header("To", p.To)
	header("Reply-To", p.ReplyTo)
	header("Subject", p.Subject)
	header("Message-ID", id)
	header("Date", time.Now().UTC().Format(dateFormat))
	header("MIME-Version", "1.0")

	if len(p.Attachments) == 0 {
		header("Content-Type", "text/plain; charset=utf-8")
		header("Content-Transfer-Encoding", "7bit")
		buf.WriteString("\r\n")
		buf.WriteString(p.Text)
	} else {
		mw := multipart.NewWriter(&buf)
		header("Content-Type", "multipart/mixed; boundary="+mw.Boundary())
		buf.WriteString("\r\n")

		textPart, _ := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {"text/plain; charset=utf-8"},
			"Content-Transfer-Encoding": {"7bit"},
		})
		textPart.Write([]byte(p.Text))

		for _, a := range p.Attachments {
			contentType := a.ContentType
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			part, _ := mw.CreatePart(textproto.MIMEHeader{
				"Content-Type":              {contentType},
				"Content-Transfer-Encoding": {"base64"},
				"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", a.Filename)},
			})
			part.Write(wrapBase64(a.Data))
		}
		mw.Close()
	}

	return Message{From: p.From, To: p.To, ID: id, Raw: buf.Bytes()}
}

// messageID generates a globally unique message id of the form
// <millis>.<uuid>@<sender-domain>.
func messageID(from string, now time.Time) string {
	domain := from
	if _, d, found := strings.Cut(from, "@"); found && d != "" {
		domain = d
	}
	return fmt.Sprintf("<%d.%s@%s>", now.UnixMilli(), uuid.NewString(), domain)
}

// wrapBase64 encodes data and folds the result at 76 columns as required for
// base64 transfer encoding.
func wrapBase64(data []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(data)
	var out bytes.Buffer
	for len(encoded) > 76 {
		out.WriteString(encoded[:76])
		out.WriteString("\r\n")
		encoded = encoded[76:]
	}
	out.WriteString(encoded)
	return out.Bytes()
}
