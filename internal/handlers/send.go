package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Calvin-222/COMP-4117-back-end/internal/metrics"
	"github.com/Calvin-222/COMP-4117-back-end/internal/models"
	"github.com/Calvin-222/COMP-4117-back-end/internal/phone"
	"github.com/Calvin-222/COMP-4117-back-end/internal/whatsapp"
)

// SendMessageRequest represents the outbound relay request.
type SendMessageRequest struct {
	PhoneNo string `json:"phoneNo"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// SendMessageResponse represents the outbound relay response.
type SendMessageResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	WhatsAppResponse json.RawMessage `json:"whatsappResponse"`
	MessageID        string          `json:"messageId"`
}

// SendMessage relays a message through the WhatsApp Cloud API and, only
// on transport success, persists a system-sent chat record. A failed
// send leaves no record behind.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.PhoneNo == "" || req.Message == "" {
		h.Error(w, http.StatusBadRequest, "phoneNo and message are required")
		return
	}

	to := phone.Normalize(req.PhoneNo, h.cfg.DefaultCountryCode)
	h.logger.Info().Str("to", to).Msg("relaying whatsapp message")

	payload, err := h.wa.SendText(r.Context(), to, req.Message)
	if err != nil {
		h.logger.Error().Err(err).Str("to", to).Msg("whatsapp send failed")

		var apiErr *whatsapp.APIError
		if errors.As(err, &apiErr) {
			h.JSON(w, http.StatusInternalServerError, errorResponse{
				Success: false,
				Message: "failed to send message: " + err.Error(),
				Error:   apiErr.Payload,
			})
			return
		}
		h.Error(w, http.StatusInternalServerError, "failed to send message: "+err.Error())
		return
	}

	sender := req.Sender
	if sender == "" {
		sender = h.cfg.DefaultSender
	}

	record := models.ChatMessage{
		PhoneNo:     phone.Number(phone.Digits(req.PhoneNo)),
		Sender:      sender,
		Receiver:    req.PhoneNo,
		MessageType: models.MessageTypeSystem,
		Text:        req.Message,
		Datetime:    models.Timestamp(time.Now().UTC().Format(models.StoreTimeLayout)),
		ImportFile:  "system-generated-message",
	}

	id, err := h.db.InsertMessage(r.Context(), &record)
	if err != nil {
		h.logger.Error().Err(err).Str("to", to).Msg("persisting sent message failed")
		h.Error(w, http.StatusInternalServerError, "failed to record sent message: "+err.Error())
		return
	}

	metrics.MessagesSent.Inc()
	h.JSON(w, http.StatusOK, SendMessageResponse{
		Success:          true,
		Message:          "message sent and recorded",
		WhatsAppResponse: payload,
		MessageID:        id.Hex(),
	})
}
