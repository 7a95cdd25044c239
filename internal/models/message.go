package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Calvin-222/COMP-4117-back-end/internal/phone"
)

// MessageTypeSystem tags messages generated by the outbound relay, as
// opposed to messages ingested from the WhatsApp webhook.
const MessageTypeSystem = "S"

// StoreTimeLayout is how chatHistory timestamps are written.
const StoreTimeLayout = "2006-01-02 15:04:05"

// timeLayouts are the formats observed in the chatHistory collection.
// The relay writes StoreTimeLayout; older imported rows carry ISO strings.
var timeLayouts = []string{
	StoreTimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a chatHistory timestamp. The collection holds a mix of
// formatted strings and BSON dates, so it decodes both and keeps the
// string form for responses.
type Timestamp string

// Time parses the timestamp. Missing or unparseable values return the
// zero time, which sorts before every real timestamp.
func (t Timestamp) Time() time.Time {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// UnmarshalBSONValue decodes a timestamp stored as a string or a BSON date.
func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bson.TypeString:
		*t = Timestamp(rv.StringValue())
	case bson.TypeDateTime:
		*t = Timestamp(rv.Time().UTC().Format(StoreTimeLayout))
	case bson.TypeNull, bson.TypeUndefined:
		*t = ""
	default:
		return fmt.Errorf("models: cannot decode BSON type %s into Timestamp", bt)
	}
	return nil
}

// MarshalBSONValue always writes the string form.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(t))
}

// ChatMessage maps to the chatHistory collection. One document per
// inbound or outbound WhatsApp message.
type ChatMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PhoneNo     phone.Number       `bson:"PHONE_NO,omitempty" json:"PHONE_NO,omitempty"`
	Sender      string             `bson:"SENDER,omitempty" json:"SENDER,omitempty"`
	Receiver    string             `bson:"RECEIVER,omitempty" json:"RECEIVER,omitempty"`
	MessageType string             `bson:"MESSAGE_TYPE,omitempty" json:"MESSAGE_TYPE,omitempty"`
	Text        string             `bson:"MESSAGE_TEXT,omitempty" json:"MESSAGE_TEXT,omitempty"`
	Datetime    Timestamp          `bson:"MESSAGE_DATETIME,omitempty" json:"MESSAGE_DATETIME,omitempty"`
	ImportFile  string             `bson:"REF_IMPORT_FILE_NAME,omitempty" json:"REF_IMPORT_FILE_NAME,omitempty"`
}
