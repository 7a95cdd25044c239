// Package chat derives the chat-room view from the flat message log and
// the user directory. Everything here is a pure transform over data the
// handlers have already fetched.
package chat

import (
	"time"

	"github.com/Calvin-222/COMP-4117-back-end/internal/models"
	"github.com/Calvin-222/COMP-4117-back-end/internal/phone"
)

// noMessagePlaceholder is shown when a room's latest message has no text.
// Kept verbatim from the production frontend copy.
const noMessagePlaceholder = "暫無訊息"

// BuildRooms computes one summary per distinct phone number in the
// message log, in the order first observed. The latest message per room
// wins on timestamp; entries without a parseable timestamp sort earliest,
// and the first occurrence wins ties.
func BuildRooms(messages []models.ChatMessage, users []models.UserProfile) []models.RoomSummary {
	type candidate struct {
		msg *models.ChatMessage
		at  time.Time
	}

	var order []string
	latest := make(map[string]*candidate)

	for i := range messages {
		msg := &messages[i]
		key := msg.PhoneNo.String()
		if key == "" {
			continue
		}

		at := msg.Datetime.Time()
		cur, seen := latest[key]
		if !seen {
			order = append(order, key)
			latest[key] = &candidate{msg: msg, at: at}
			continue
		}
		if at.After(cur.at) {
			cur.msg, cur.at = msg, at
		}
	}

	rooms := make([]models.RoomSummary, 0, len(order))
	for _, key := range order {
		profile := findByPhone(users, key)

		userInfo := models.UserProfile{PhoneNumber: phone.Number(key)}
		caseCode := ""
		if profile != nil {
			userInfo = *profile
			caseCode = profile.CaseCode
		}

		last := latest[key].msg
		content := last.Text
		if content == "" {
			content = noMessagePlaceholder
		}

		rooms = append(rooms, models.RoomSummary{
			RoomID:   key,
			PhoneNo:  key,
			RoomName: profile.DisplayName(key),
			UserInfo: userInfo,
			CaseCode: caseCode,
			LastMessage: models.LastMessage{
				Content:   content,
				Timestamp: string(last.Datetime),
			},
		})
	}
	return rooms
}

// ResolveProfile looks up the profile for a room identifier: exact phone
// number match first, then the store ID or case code. Returns nil when
// nothing matches.
func ResolveProfile(users []models.UserProfile, roomID string) *models.UserProfile {
	for i := range users {
		if users[i].PhoneNumber.String() == roomID {
			return &users[i]
		}
	}
	for i := range users {
		if (users[i].ID != nil && users[i].ID.Hex() == roomID) || (users[i].CaseCode != "" && users[i].CaseCode == roomID) {
			return &users[i]
		}
	}
	return nil
}

func findByPhone(users []models.UserProfile, key string) *models.UserProfile {
	for i := range users {
		if users[i].PhoneNumber.String() == key {
			return &users[i]
		}
	}
	return nil
}
