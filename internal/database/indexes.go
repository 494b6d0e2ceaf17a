package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureFoodIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("foods").Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("createdAt_index"),
	}

	_, err := indexes.CreateOne(ctx, createdAtIndex)
	if err != nil {
		log.Println("EnsureFoodIndexes: createdAt index error:", err)
		return err
	}
	return nil
}

// EnsureOrderIndexes creates the indexes the order invariants depend on:
// orderId must be globally unique (backstop for the sequence counter), and a
// utrNumber, once set, may appear on at most one order. The UTR index is
// partial so orders without a submitted UTR do not collide on the missing
// field.
func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	orderIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().
			SetName("orderId_unique").
			SetUnique(true),
	}

	utrIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "utrNumber", Value: 1}},
		Options: options.Index().
			SetName("utrNumber_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"utrNumber": bson.M{
					"$exists": true,
				},
			}),
	}

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	}

	log.Println("EnsureOrderIndexes: creating orderId_unique, utrNumber_unique indexes")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{orderIDIndex, utrIndex, createdAtIndex})
	if err != nil {
		log.Println("EnsureOrderIndexes: index error:", err)
		return err
	}
	return nil
}
