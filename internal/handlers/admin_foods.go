package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodfest/internal/models"
)

// ToggleFoodAvailability flips a menu item on or off.
func ToggleFoodAvailability(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/foods/:id/toggle"
		defer handlePanic(c, route)

		foodID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "Food item not found")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var food models.Food
		err = db.Collection("foods").FindOne(ctx, bson.M{"_id": foodID}).Decode(&food)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondWithError(c, http.StatusNotFound, route, "Food item not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to toggle availability")
			return
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		update := bson.M{"$set": bson.M{
			"isAvailable": !food.IsAvailable,
			"updatedAt":   time.Now(),
		}}

		err = db.Collection("foods").
			FindOneAndUpdate(ctx, bson.M{"_id": foodID}, update, opts).
			Decode(&food)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to toggle availability")
			return
		}

		state := "disabled"
		if food.IsAvailable {
			state = "enabled"
		}
		log.Printf("[ADMIN] [INFO] food %s %s", food.Name, state)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("Food item %s successfully", state),
			"data":    food,
		})
	}
}

type setStockRequest struct {
	Stock *int `json:"stock"`
}

// SetFoodStock sets the stock count. Stock hitting zero force-disables
// availability so sold-out items drop off the orderable menu immediately.
func SetFoodStock(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/foods/:id/stock"
		defer handlePanic(c, route)

		var req setStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.Stock == nil {
			respondWithError(c, http.StatusBadRequest, route, "Please provide stock")
			return
		}
		if *req.Stock < 0 {
			respondWithError(c, http.StatusBadRequest, route, "Stock cannot be negative")
			return
		}

		foodID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "Food item not found")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		fields := bson.M{
			"stock":     *req.Stock,
			"updatedAt": time.Now(),
		}
		if *req.Stock == 0 {
			fields["isAvailable"] = false
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var food models.Food
		err = db.Collection("foods").
			FindOneAndUpdate(ctx, bson.M{"_id": foodID}, bson.M{"$set": fields}, opts).
			Decode(&food)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondWithError(c, http.StatusNotFound, route, "Food item not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to update stock")
			return
		}

		log.Printf("[ADMIN] [INFO] food %s stock set to %d", food.Name, *req.Stock)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Stock updated successfully",
			"data":    food,
		})
	}
}
