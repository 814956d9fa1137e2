package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/mail"
	"strings"

	"google.golang.org/api/gmail/v1"

	"github.com/justsurfingit/hireable/internal/models"
)

// GmailSink forwards contact messages to the board's inbox.
type GmailSink struct {
	Client *gmail.Service
	Sender string // gmail user id, usually "me"
	Inbox  string
}

func NewGmailSink(client *gmail.Service, sender, inbox string) *GmailSink {
	return &GmailSink{Client: client, Sender: sender, Inbox: inbox}
}

func (s *GmailSink) SaveContactMessage(ctx context.Context, m models.ContactMessage) error {
	msg := &gmail.Message{Raw: encodeContactMail(s.Inbox, m)}
	if _, err := s.Client.Users.Messages.Send(s.Sender, msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}
	return nil
}

// encodeContactMail builds an RFC 2822 message, base64url encoded as the
// Gmail API expects. Non-ASCII header text is RFC 2047 encoded.
func encodeContactMail(to string, m models.ContactMessage) string {
	replyTo := mail.Address{Name: headerSafe(m.Name), Address: headerSafe(m.Email)}
	subject := mime.QEncoding.Encode("utf-8", "[Contact] "+headerSafe(m.Subject))

	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", replyTo.String())
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	fmt.Fprintf(&b, "Message from %s <%s>:\r\n\r\n%s\r\n", m.Name, m.Email, m.Message)
	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// headerSafe strips line breaks so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
