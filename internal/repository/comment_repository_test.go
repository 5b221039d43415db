package repository

import (
	"testing"

	"inkwell-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func comment(id bson.ObjectID, parent *bson.ObjectID) models.Comment {
	return models.Comment{ID: id, ParentID: parent}
}

func TestDescendantIDs(t *testing.T) {
	root := bson.NewObjectID()
	replyA := bson.NewObjectID()
	replyB := bson.NewObjectID()
	nested := bson.NewObjectID() // reply to replyA
	other := bson.NewObjectID() // unrelated root

	all := []models.Comment{
		comment(root, nil),
		comment(replyA, &root),
		comment(replyB, &root),
		comment(nested, &replyA),
		comment(other, nil),
	}

	ids := DescendantIDs(all, root)
	assert.Len(t, ids, 4)
	assert.ElementsMatch(t, []bson.ObjectID{root, replyA, replyB, nested}, ids)
	assert.NotContains(t, ids, other)
}

func TestDescendantIDsLeaf(t *testing.T) {
	leaf := bson.NewObjectID()
	ids := DescendantIDs([]models.Comment{comment(leaf, nil)}, leaf)
	assert.Equal(t, []bson.ObjectID{leaf}, ids)
}

func TestDescendantIDsDeepChain(t *testing.T) {
	// a <- b <- c <- d: deleting a must take all four.
	a, b, c, d := bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()
	all := []models.Comment{
		comment(a, nil),
		comment(b, &a),
		comment(c, &b),
		comment(d, &c),
	}
	assert.ElementsMatch(t, []bson.ObjectID{a, b, c, d}, DescendantIDs(all, a))
	// deleting b leaves a untouched
	assert.ElementsMatch(t, []bson.ObjectID{b, c, d}, DescendantIDs(all, b))
}
