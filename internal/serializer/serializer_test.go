package serializer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeScalars(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), Serialize(oid))

	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "2026-03-14T08:26:53Z", Serialize(ts))

	dt := primitive.NewDateTimeFromTime(time.Date(2026, 3, 14, 8, 26, 53, 0, time.UTC))
	assert.Equal(t, "2026-03-14T08:26:53Z", Serialize(dt))

	dec, err := primitive.ParseDecimal128("150.50")
	require.NoError(t, err)
	assert.Equal(t, "150.50", Serialize(dec))

	// wire-safe values pass through unchanged
	assert.Equal(t, "plain string", Serialize("plain string"))
	assert.Equal(t, 42, Serialize(42))
	assert.Nil(t, Serialize(nil))
}

func TestSerializeDocument(t *testing.T) {
	sellerID := primitive.NewObjectID()
	bidderID := primitive.NewObjectID()
	endTime := time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC)
	amount, err := primitive.ParseDecimal128("150")
	require.NoError(t, err)

	doc := bson.M{
		"_id":         sellerID,
		"title":       "Vase",
		"current_bid": amount,
		"end_time":    endTime,
		"bids": bson.A{
			bson.M{"user_id": bidderID, "amount": amount, "time": endTime},
		},
		"meta": bson.D{{Key: "seller_id", Value: sellerID}},
	}

	got, ok := Serialize(doc).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, sellerID.Hex(), got["_id"])
	assert.Equal(t, "Vase", got["title"])
	assert.Equal(t, "150", got["current_bid"])
	assert.Equal(t, "2026-09-04T12:00:00Z", got["end_time"])

	bids, ok := got["bids"].([]any)
	require.True(t, ok)
	require.Len(t, bids, 1)
	bid, ok := bids[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, bidderID.Hex(), bid["user_id"])
	assert.Equal(t, "150", bid["amount"])

	meta, ok := got["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, sellerID.Hex(), meta["seller_id"])
}

func TestSerializeCollection(t *testing.T) {
	docs := []bson.M{
		{"_id": primitive.NewObjectID()},
		{"_id": primitive.NewObjectID()},
	}

	got, ok := Serialize(docs).([]any)
	require.True(t, ok)
	assert.Len(t, got, 2)
	for i, item := range got {
		m, ok := item.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, docs[i]["_id"].(primitive.ObjectID).Hex(), m["_id"])
	}
}

func TestSerializeIdempotent(t *testing.T) {
	doc := bson.M{
		"_id":         primitive.NewObjectID(),
		"end_time":    time.Now().UTC(),
		"current_bid": mustDecimal(t, "99.95"),
		"bids": bson.A{
			bson.M{"user_id": primitive.NewObjectID(), "amount": mustDecimal(t, "99.95"), "time": time.Now().UTC()},
		},
	}

	once := Serialize(doc)
	twice := Serialize(once)
	assert.Equal(t, once, twice)
}

func mustDecimal(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}
