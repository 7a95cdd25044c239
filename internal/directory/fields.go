// Package directory maps external wire field names onto the stored user
// document fields. The mapping is a fixed, reviewable table shared by the
// create and update endpoints.
package directory

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

// Field pairs an external wire name with the stored document field name.
type Field struct {
	External string
	Internal string
}

// Mapping enumerates every accepted field, in the order fields are
// written to the document. Anything not listed is dropped.
var Mapping = []Field{
	{"PHONE_NO", "Phone Number"},
	{"CASE_CODE", "Case Code"},
	{"USERNAME", "Name"},
	{"UPDATED_FULL_NAME", "updated full name"},
	{"FIRST_NAME", "First NAME"},
	{"LAST_NAME", "LAST NAME"},
	{"ADDRESS", "Address"},
	{"STATUS", "Status"},
	{"ROLE", "Role"},
	{"TITLE", "Title"},
}

// userIDField is sent by some clients alongside profile fields. It is
// never stored and dropping it is not worth a diagnostic.
const userIDField = "USER_ID"

// MapFields translates a request body into an ordered document of
// internal fields. Unrecognized keys are dropped with a diagnostic log
// per key. Values must be JSON scalars; anything structured rejects the
// whole body.
func MapFields(body map[string]any, logger zerolog.Logger) (bson.D, error) {
	for key, value := range body {
		switch value.(type) {
		case string, float64, bool, nil:
		default:
			return nil, fmt.Errorf("field %s must be a scalar value", key)
		}
	}

	mapped := make(map[string]bool, len(body))
	var doc bson.D
	for _, f := range Mapping {
		if value, ok := body[f.External]; ok {
			doc = append(doc, bson.E{Key: f.Internal, Value: value})
			mapped[f.External] = true
		}
	}

	for key := range body {
		if mapped[key] || key == userIDField {
			continue
		}
		logger.Debug().Str("field", key).Msg("dropping unmapped profile field")
	}

	return doc, nil
}
