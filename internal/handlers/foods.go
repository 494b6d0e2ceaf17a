package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodfest/internal/models"
)

// GetFoods lists the menu in creation order.
func GetFoods(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /foods"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
		cursor, err := db.Collection("foods").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch foods")
			return
		}
		defer cursor.Close(ctx)

		foods := make([]models.Food, 0)
		if err := cursor.All(ctx, &foods); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch foods")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    foods,
		})
	}
}
