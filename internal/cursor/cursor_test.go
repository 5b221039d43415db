package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	id := bson.NewObjectID()
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	s := Encode(at, id)
	gotAt, gotID, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, at, gotAt)
	assert.Equal(t, id, gotID)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, s := range []string{
		"not base64 !!",
		"aGVsbG8=",                 // base64 but not json
		"eyJjcmVhdGVkQXQiOjF9",     // json but no id
	} {
		_, _, err := Decode(s)
		assert.Error(t, err, "Decode(%q)", s)
	}
}
