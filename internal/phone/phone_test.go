package phone

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no country code", "92226322", "85292226322"},
		{"plus prefixed", "+85292226322", "85292226322"},
		{"already prefixed", "85292226322", "85292226322"},
		{"plus without code", "+92226322", "85292226322"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in, "852"))
		})
	}
}

func TestDigits(t *testing.T) {
	require.Equal(t, "85292226322", Digits("+852 9222-6322"))
	require.Equal(t, "", Digits("none"))
}

func TestInt64(t *testing.T) {
	v, ok := Number("+852 9222 6322").Int64()
	require.True(t, ok)
	require.Equal(t, int64(85292226322), v)

	_, ok = Number("").Int64()
	require.False(t, ok)
}

func TestUnmarshalBSONValue(t *testing.T) {
	type doc struct {
		PhoneNo Number `bson:"PHONE_NO"`
	}

	tests := []struct {
		name  string
		value interface{}
		want  Number
	}{
		{"string", "85292226322", Number("85292226322")},
		{"int32", int32(92226322), Number("92226322")},
		{"int64", int64(85292226322), Number("85292226322")},
		{"double", float64(92226322), Number("92226322")},
		{"null", nil, Number("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.D{{Key: "PHONE_NO", Value: tt.value}})
			require.NoError(t, err)

			var d doc
			require.NoError(t, bson.Unmarshal(raw, &d))
			require.Equal(t, tt.want, d.PhoneNo)
		})
	}
}

func TestMarshalBSONValueWritesNumbers(t *testing.T) {
	raw, err := bson.Marshal(bson.D{{Key: "PHONE_NO", Value: Number("85292226322")}})
	require.NoError(t, err)

	var d struct {
		PhoneNo int64 `bson:"PHONE_NO"`
	}
	require.NoError(t, bson.Unmarshal(raw, &d))
	require.Equal(t, int64(85292226322), d.PhoneNo)
}
