package cursor

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Cursor pins a page boundary to (createdAt, _id) so pagination is stable
// under inserts.
type Cursor struct {
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

func Encode(t time.Time, id bson.ObjectID) string {
	b, _ := json.Marshal(Cursor{
		CreatedAt: t.UnixMilli(),
		ID:        id.Hex(),
	})
	return base64.StdEncoding.EncodeToString(b)
}

func Decode(s string) (time.Time, bson.ObjectID, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return time.Time{}, bson.NilObjectID, err
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return time.Time{}, bson.NilObjectID, err
	}
	oid, err := bson.ObjectIDFromHex(c.ID)
	if err != nil {
		return time.Time{}, bson.NilObjectID, err
	}
	return time.UnixMilli(c.CreatedAt).UTC(), oid, nil
}
