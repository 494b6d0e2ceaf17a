package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodfest/internal/models"
)

const orderSequence = "orders"

// NextOrderSeq atomically claims the next order sequence number. A single
// findAndModify with $inc + upsert cannot hand the same value to two
// concurrent creates, unlike counting existing orders and adding one.
func NextOrderSeq(ctx context.Context, db *mongo.Database) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := db.Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": orderSequence},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}
