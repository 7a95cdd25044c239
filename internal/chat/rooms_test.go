package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Calvin-222/COMP-4117-back-end/internal/models"
	"github.com/Calvin-222/COMP-4117-back-end/internal/phone"
)

func msg(phoneNo, text, datetime string) models.ChatMessage {
	return models.ChatMessage{
		PhoneNo:  phone.Number(phoneNo),
		Text:     text,
		Datetime: models.Timestamp(datetime),
	}
}

func TestBuildRoomsEmptyLog(t *testing.T) {
	rooms := BuildRooms(nil, nil)
	require.Empty(t, rooms)
	require.NotNil(t, rooms)
}

func TestBuildRoomsOnePerDistinctNumber(t *testing.T) {
	messages := []models.ChatMessage{
		msg("85291111111", "a", "2024-01-01 10:00:00"),
		msg("85292222222", "b", "2024-01-01 11:00:00"),
		msg("85291111111", "c", "2024-01-01 12:00:00"),
		{}, // no phone number, never grouped
	}

	rooms := BuildRooms(messages, nil)
	require.Len(t, rooms, 2)

	// First-observed order
	require.Equal(t, "85291111111", rooms[0].RoomID)
	require.Equal(t, "85292222222", rooms[1].RoomID)
}

func TestBuildRoomsLatestMessageWins(t *testing.T) {
	messages := []models.ChatMessage{
		msg("85291111111", "old", "2024-01-01 10:00:00"),
		msg("85291111111", "newest", "2024-03-01 10:00:00"),
		msg("85291111111", "middle", "2024-02-01 10:00:00"),
	}

	rooms := BuildRooms(messages, nil)
	require.Len(t, rooms, 1)
	require.Equal(t, "newest", rooms[0].LastMessage.Content)
	require.Equal(t, "2024-03-01 10:00:00", rooms[0].LastMessage.Timestamp)
}

func TestBuildRoomsMissingTimestampNeverWins(t *testing.T) {
	messages := []models.ChatMessage{
		msg("85291111111", "dated", "2024-01-01 10:00:00"),
		msg("85291111111", "undated", ""),
	}

	rooms := BuildRooms(messages, nil)
	require.Equal(t, "dated", rooms[0].LastMessage.Content)

	// Unless every entry lacks one: then the first observed is kept.
	rooms = BuildRooms([]models.ChatMessage{
		msg("85291111111", "first", ""),
		msg("85291111111", "second", ""),
	}, nil)
	require.Equal(t, "first", rooms[0].LastMessage.Content)
}

func TestBuildRoomsTimestampTieKeepsFirst(t *testing.T) {
	messages := []models.ChatMessage{
		msg("85291111111", "first", "2024-01-01 10:00:00"),
		msg("85291111111", "second", "2024-01-01 10:00:00"),
	}

	rooms := BuildRooms(messages, nil)
	require.Equal(t, "first", rooms[0].LastMessage.Content)
}

func TestBuildRoomsNumericAndStringFormsGroupTogether(t *testing.T) {
	// A numerically-stored PHONE_NO decodes to the same canonical string
	// form, so both arrive here as the same key.
	messages := []models.ChatMessage{
		msg("85291111111", "a", "2024-01-01 10:00:00"),
		msg("85291111111", "b", "2024-01-02 10:00:00"),
	}

	rooms := BuildRooms(messages, nil)
	require.Len(t, rooms, 1)
}

func TestBuildRoomsDisplayNameFallback(t *testing.T) {
	tests := []struct {
		name string
		user models.UserProfile
		want string
	}{
		{
			"canonical full name wins",
			models.UserProfile{PhoneNumber: "85291111111", FullName: "Canonical Name", Name: "Plain", FirstName: "Jane", LastName: "Doe"},
			"Canonical Name",
		},
		{
			"plain name second",
			models.UserProfile{PhoneNumber: "85291111111", Name: "Plain", FirstName: "Jane", LastName: "Doe"},
			"Plain",
		},
		{
			"assembled first and last",
			models.UserProfile{PhoneNumber: "85291111111", FirstName: "Jane", LastName: "Doe"},
			"Jane Doe",
		},
		{
			"lone last name trimmed",
			models.UserProfile{PhoneNumber: "85291111111", LastName: "Doe"},
			"Doe",
		},
		{
			"raw phone number last",
			models.UserProfile{PhoneNumber: "85291111111"},
			"85291111111",
		},
	}

	messages := []models.ChatMessage{msg("85291111111", "hi", "2024-01-01 10:00:00")}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := BuildRooms(messages, []models.UserProfile{tt.user})
			require.Equal(t, tt.want, rooms[0].RoomName)
		})
	}
}

func TestBuildRoomsWithoutProfile(t *testing.T) {
	messages := []models.ChatMessage{msg("85291111111", "hi", "2024-01-01 10:00:00")}

	rooms := BuildRooms(messages, []models.UserProfile{
		{PhoneNumber: "85299999999", Name: "Somebody Else"},
	})

	require.Equal(t, "85291111111", rooms[0].RoomName)
	require.Equal(t, phone.Number("85291111111"), rooms[0].UserInfo.PhoneNumber)
	require.Empty(t, rooms[0].UserInfo.Name)
	require.Empty(t, rooms[0].CaseCode)
}

func TestBuildRoomsCaseCodeAndPlaceholderContent(t *testing.T) {
	messages := []models.ChatMessage{msg("85291111111", "", "2024-01-01 10:00:00")}
	users := []models.UserProfile{{PhoneNumber: "85291111111", CaseCode: "C-42", Name: "Jane"}}

	rooms := BuildRooms(messages, users)
	require.Equal(t, "C-42", rooms[0].CaseCode)
	require.Equal(t, noMessagePlaceholder, rooms[0].LastMessage.Content)
}

func TestResolveProfile(t *testing.T) {
	id := primitive.NewObjectID()
	users := []models.UserProfile{
		{ID: &id, PhoneNumber: "85291111111", CaseCode: "C-1"},
		{PhoneNumber: "85292222222", CaseCode: "C-2"},
	}

	require.Equal(t, &users[0], ResolveProfile(users, "85291111111"))
	require.Equal(t, &users[0], ResolveProfile(users, id.Hex()))
	require.Equal(t, &users[1], ResolveProfile(users, "C-2"))
	require.Nil(t, ResolveProfile(users, "unknown"))
}
