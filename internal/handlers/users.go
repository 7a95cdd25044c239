package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Calvin-222/COMP-4117-back-end/internal/directory"
	"github.com/Calvin-222/COMP-4117-back-end/internal/metrics"
	"github.com/Calvin-222/COMP-4117-back-end/internal/models"
	"github.com/Calvin-222/COMP-4117-back-end/internal/phone"
)

// UserListEntry is the fixed projection the users list returns. Missing
// fields come out as empty strings.
type UserListEntry struct {
	ID          *primitive.ObjectID `json:"_id"`
	PhoneNumber phone.Number        `json:"Phone Number"`
	CaseCode    string              `json:"Case Code"`
	Name        string              `json:"Name"`
	FullName    string              `json:"updated full name"`
	FirstName   string              `json:"First NAME"`
	LastName    string              `json:"LAST NAME"`
	Address     string              `json:"Address"`
	Status      string              `json:"Status"`
}

// UserListResponse represents the users list response.
type UserListResponse struct {
	Success bool            `json:"success"`
	Data    []UserListEntry `json:"data"`
}

// UserResponse represents a single profile lookup. Data is null when no
// profile matches; absence is not an error.
type UserResponse struct {
	Success bool                `json:"success"`
	Data    *models.UserProfile `json:"data"`
}

// UpdateUserResponse represents the profile update response.
type UpdateUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateUserResponse represents the profile creation response.
type CreateUserResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// ListUsers returns every profile with the fixed projected field set.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("listing users failed")
		h.Error(w, http.StatusInternalServerError, "failed to load users: "+err.Error())
		return
	}

	entries := make([]UserListEntry, len(users))
	for i, u := range users {
		entries[i] = UserListEntry{
			ID:          u.ID,
			PhoneNumber: u.PhoneNumber,
			CaseCode:    u.CaseCode,
			Name:        u.Name,
			FullName:    u.FullName,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Address:     u.Address,
			Status:      u.Status,
		}
	}

	h.JSON(w, http.StatusOK, UserListResponse{Success: true, Data: entries})
}

// GetUser looks up a profile by phone number, as a string first and
// numerically second.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.db.FindUserByPhone(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("user lookup failed")
		h.Error(w, http.StatusInternalServerError, "failed to load user: "+err.Error())
		return
	}

	h.JSON(w, http.StatusOK, UserResponse{Success: true, Data: user})
}

// UpdateUser applies a partial update to an existing profile. Unknown
// phone numbers are a 404, not an upsert.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	phoneNo := chi.URLParam(r, "phoneNo")

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fields, err := directory.MapFields(body, h.logger)
	if err != nil {
		h.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(fields) == 0 {
		h.Error(w, http.StatusBadRequest, "no updatable fields in request")
		return
	}

	matched, err := h.db.UpdateUserByPhone(r.Context(), phoneNo, fields)
	if err != nil {
		h.logger.Error().Err(err).Str("phone", phoneNo).Msg("user update failed")
		h.Error(w, http.StatusInternalServerError, "failed to update user: "+err.Error())
		return
	}
	if matched == 0 {
		h.Error(w, http.StatusNotFound, "user not found, cannot update")
		return
	}

	metrics.UsersUpdated.Inc()
	h.JSON(w, http.StatusOK, UpdateUserResponse{Success: true, Message: "user updated"})
}

// CreateUser creates a profile. The phone number is required and must
// not already be in use.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	phoneNo := scalarString(body["PHONE_NO"])
	if phoneNo == "" {
		h.Error(w, http.StatusBadRequest, "PHONE_NO is required")
		return
	}

	existing, err := h.db.FindUserByPhone(r.Context(), phoneNo)
	if err != nil {
		h.logger.Error().Err(err).Str("phone", phoneNo).Msg("duplicate check failed")
		h.Error(w, http.StatusInternalServerError, "failed to create user: "+err.Error())
		return
	}
	if existing != nil {
		h.Error(w, http.StatusBadRequest, "phone number already exists")
		return
	}

	fields, err := directory.MapFields(body, h.logger)
	if err != nil {
		h.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	createdAt := time.Now().UTC()
	doc := append(fields, bson.E{Key: "createdAt", Value: createdAt})

	id, err := h.db.InsertUser(r.Context(), doc)
	if err != nil {
		h.logger.Error().Err(err).Str("phone", phoneNo).Msg("user creation failed")
		h.Error(w, http.StatusInternalServerError, "failed to create user: "+err.Error())
		return
	}

	data := make(map[string]any, len(doc)+1)
	data["_id"] = id.Hex()
	for _, e := range doc {
		data[e.Key] = e.Value
	}

	metrics.UsersCreated.Inc()
	h.JSON(w, http.StatusCreated, CreateUserResponse{
		Success: true,
		Message: "user created",
		Data:    data,
	})
}

// scalarString renders a JSON scalar as a string; structured values and
// null come out empty.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
