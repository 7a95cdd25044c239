// Package phone defines the phone number value type used as the room
// grouping key. Numbers arrive from the wire as strings and live in the
// store as either strings or numeric BSON, so every comparison goes
// through the canonical decimal-string form.
package phone

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var nonDigits = regexp.MustCompile(`\D`)

// Number is a phone number in canonical decimal-string form.
type Number string

// String returns the canonical string form.
func (n Number) String() string {
	return string(n)
}

// Int64 returns the digit-only numeric form, or false if the number
// contains no digits.
func (n Number) Int64() (int64, bool) {
	d := Digits(string(n))
	if d == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// UnmarshalBSONValue decodes a number stored as BSON string, int32, int64
// or double into the canonical string form.
func (n *Number) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		*n = Number(rv.StringValue())
	case bson.TypeInt32:
		*n = Number(strconv.FormatInt(int64(rv.Int32()), 10))
	case bson.TypeInt64:
		*n = Number(strconv.FormatInt(rv.Int64(), 10))
	case bson.TypeDouble:
		*n = Number(strconv.FormatFloat(rv.Double(), 'f', -1, 64))
	case bson.TypeNull, bson.TypeUndefined:
		*n = ""
	default:
		return fmt.Errorf("phone: cannot decode BSON type %s into Number", t)
	}
	return nil
}

// MarshalBSONValue stores digit-only numbers as int64 (the chatHistory
// convention) and anything else as a string.
func (n Number) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if v, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return bson.MarshalValue(v)
	}
	return bson.MarshalValue(string(n))
}

// Digits strips every non-digit character.
func Digits(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// Normalize prefixes the country code unless the destination already
// carries it (plain or "+"-prefixed), then drops any leading "+". The
// result is the digits-only form the messaging API expects.
func Normalize(raw, countryCode string) string {
	formatted := raw
	if !strings.HasPrefix(raw, countryCode) && !strings.HasPrefix(raw, "+"+countryCode) {
		formatted = countryCode + raw
	}
	return strings.Replace(formatted, "+", "", 1)
}
