package chat

import (
	"strings"
	"time"

	"github.com/Calvin-222/COMP-4117-back-end/internal/models"
)

// OrgName is the organization label substring found in the RECEIVER field
// of messages sent by our side. Imported chat history carries the full
// community label; the substring is stable across sub-communities.
const OrgName = "浸會大學"

// senderSelf/senderCounterparty are the two-value sender IDs the chat UI
// keys its bubble alignment on.
const (
	senderSelf         = "1"
	senderCounterparty = "2"
)

// IsSelf reports whether a message was authored by our organization:
// either the sender role is the literal "user" tag or the receiver label
// names the organization.
func IsSelf(msg *models.ChatMessage) bool {
	return msg.Sender == "user" || strings.Contains(msg.Receiver, OrgName)
}

// NormalizeMessages reshapes a room's messages for presentation, in the
// order given. Missing content becomes the empty string and a missing
// timestamp defaults to the current time.
func NormalizeMessages(messages []models.ChatMessage) []models.NormalizedMessage {
	out := make([]models.NormalizedMessage, 0, len(messages))
	for i := range messages {
		msg := &messages[i]

		isSelf := IsSelf(msg)
		senderID := senderCounterparty
		if isSelf {
			senderID = senderSelf
		}

		ts := string(msg.Datetime)
		if ts == "" {
			ts = time.Now().UTC().Format(time.RFC3339)
		}

		out = append(out, models.NormalizedMessage{
			ID:        msg.ID.Hex(),
			Content:   msg.Text,
			Timestamp: ts,
			SenderID:  senderID,
			Sender:    msg.Sender,
			Receiver:  msg.Receiver,
			IsSelf:    isSelf,
		})
	}
	return out
}
