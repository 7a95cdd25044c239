package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Calvin-222/COMP-4117-back-end/internal/chat"
	"github.com/Calvin-222/COMP-4117-back-end/internal/metrics"
	"github.com/Calvin-222/COMP-4117-back-end/internal/models"
	"github.com/Calvin-222/COMP-4117-back-end/internal/phone"
)

// RoomListResponse represents the room list response.
type RoomListResponse struct {
	Success bool                 `json:"success"`
	Data    []models.RoomSummary `json:"data"`
}

// RoomMessagesData pairs a room's profile with its normalized history.
type RoomMessagesData struct {
	UserInfo models.UserProfile         `json:"userInfo"`
	Messages []models.NormalizedMessage `json:"messages"`
}

// RoomMessagesResponse represents the room history response.
type RoomMessagesResponse struct {
	Success bool             `json:"success"`
	Data    RoomMessagesData `json:"data"`
}

// DeleteRoomResponse represents the room deletion response.
type DeleteRoomResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	RoomID  string `json:"roomId"`
}

// ListRooms derives one room summary per distinct phone number in the
// chat history.
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	messages, err := h.db.ListMessages(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("listing chat history failed")
		h.Error(w, http.StatusInternalServerError, "failed to load chat rooms: "+err.Error())
		return
	}

	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("listing users failed")
		h.Error(w, http.StatusInternalServerError, "failed to load chat rooms: "+err.Error())
		return
	}

	metrics.RoomsListed.Inc()
	h.JSON(w, http.StatusOK, RoomListResponse{
		Success: true,
		Data:    chat.BuildRooms(messages, users),
	})
}

// GetRoomMessages returns a room's profile and its messages ordered by
// time ascending.
func (h *Handler) GetRoomMessages(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("listing users failed")
		h.Error(w, http.StatusInternalServerError, "failed to load chat messages: "+err.Error())
		return
	}

	userInfo := models.UserProfile{PhoneNumber: phone.Number(roomID)}
	if profile := chat.ResolveProfile(users, roomID); profile != nil {
		userInfo = *profile
	}

	// A room ID without digits cannot match the numeric PHONE_NO field,
	// so it yields an empty history rather than an error.
	var messages []models.ChatMessage
	if n, ok := phone.Number(roomID).Int64(); ok {
		messages, err = h.db.MessagesForRoom(r.Context(), n)
		if err != nil {
			h.logger.Error().Err(err).Str("room", roomID).Msg("loading room messages failed")
			h.Error(w, http.StatusInternalServerError, "failed to load chat messages: "+err.Error())
			return
		}
	}

	h.JSON(w, http.StatusOK, RoomMessagesResponse{
		Success: true,
		Data: RoomMessagesData{
			UserInfo: userInfo,
			Messages: chat.NormalizeMessages(messages),
		},
	})
}

// DeleteRoom bulk-deletes a room's messages and reports the count
// removed. Deleting an unknown room removes zero messages.
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var deleted int64
	if n, ok := phone.Number(roomID).Int64(); ok {
		var err error
		deleted, err = h.db.DeleteRoomMessages(r.Context(), n)
		if err != nil {
			h.logger.Error().Err(err).Str("room", roomID).Msg("deleting room failed")
			h.Error(w, http.StatusInternalServerError, "failed to delete chat room: "+err.Error())
			return
		}
	}

	metrics.MessagesDeleted.Add(float64(deleted))
	h.logger.Info().Str("room", roomID).Int64("deleted", deleted).Msg("room deleted")

	h.JSON(w, http.StatusOK, DeleteRoomResponse{
		Success: true,
		Message: fmt.Sprintf("deleted %d messages", deleted),
		RoomID:  roomID,
	})
}
