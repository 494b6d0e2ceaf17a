package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"foodfest/internal/models"
)

// GetAdminStats returns order counts plus revenue summed over paid orders.
func GetAdminStats(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/stats"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		orders := db.Collection("orders")

		totalOrders, err := orders.CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch statistics")
			return
		}
		acceptedOrders, err := orders.CountDocuments(ctx, bson.M{"orderStatus": models.StatusAccepted})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch statistics")
			return
		}
		completedOrders, err := orders.CountDocuments(ctx, bson.M{"orderStatus": models.StatusCompleted})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch statistics")
			return
		}

		totalRevenue, err := paidRevenue(ctx, orders)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch statistics")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"totalOrders":     totalOrders,
				"acceptedOrders":  acceptedOrders,
				"completedOrders": completedOrders,
				"totalRevenue":    totalRevenue,
			},
		})
	}
}

func paidRevenue(ctx context.Context, orders *mongo.Collection) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"paymentStatus": models.PaymentPaid}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalAmount"},
		}}},
	}

	cursor, err := orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
