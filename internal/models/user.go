package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Calvin-222/COMP-4117-back-end/internal/phone"
)

// UserProfile maps to the user collection. Field names mirror the
// imported spreadsheet columns, spaces and casing included. Empty fields
// are omitted from responses so a bare placeholder profile serializes to
// just the phone number, the way the frontend expects.
type UserProfile struct {
	ID          *primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PhoneNumber phone.Number        `bson:"Phone Number,omitempty" json:"Phone Number"`
	CaseCode    string              `bson:"Case Code,omitempty" json:"Case Code,omitempty"`
	Name        string              `bson:"Name,omitempty" json:"Name,omitempty"`
	FullName    string              `bson:"updated full name,omitempty" json:"updated full name,omitempty"`
	FirstName   string              `bson:"First NAME,omitempty" json:"First NAME,omitempty"`
	LastName    string              `bson:"LAST NAME,omitempty" json:"LAST NAME,omitempty"`
	Address     string              `bson:"Address,omitempty" json:"Address,omitempty"`
	Status      string              `bson:"Status,omitempty" json:"Status,omitempty"`
	Role        string              `bson:"Role,omitempty" json:"Role,omitempty"`
	Title       string              `bson:"Title,omitempty" json:"Title,omitempty"`
	CreatedAt   *time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// DisplayName resolves the room display name: canonical full name, then
// the plain name field, then first+last assembled, then the raw phone
// number.
func (u *UserProfile) DisplayName(fallback string) string {
	if u == nil {
		return fallback
	}
	if u.FullName != "" {
		return u.FullName
	}
	if u.Name != "" {
		return u.Name
	}
	if assembled := strings.TrimSpace(u.FirstName + " " + u.LastName); assembled != "" {
		return assembled
	}
	return fallback
}
