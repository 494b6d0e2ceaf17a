package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"foodfest/internal/models"
)

var seedFoods = []models.Food{
	{Name: "Chicken Pakoda", Price: 50, Image: "/img1.jpg", IsAvailable: true},
	{Name: "Paneer Pakoda", Price: 50, Image: "/img2.jpg", IsAvailable: true},
}

// SeedFoods wipes the foods collection and repopulates it with the event
// menu. Meant for one-time setup, not for a running deployment.
func SeedFoods(ctx context.Context, db *mongo.Database) error {
	foods := db.Collection("foods")

	if _, err := foods.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	log.Println("SeedFoods: cleared existing food items")

	now := time.Now()
	docs := make([]interface{}, 0, len(seedFoods))
	for _, food := range seedFoods {
		food.CreatedAt = now
		food.UpdatedAt = now
		docs = append(docs, food)
		now = now.Add(time.Millisecond) // keep creation order stable
	}

	if _, err := foods.InsertMany(ctx, docs); err != nil {
		return err
	}

	for _, food := range seedFoods {
		log.Printf("SeedFoods: %s: ₹%d", food.Name, food.Price)
	}
	return nil
}
