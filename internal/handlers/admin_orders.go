package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodfest/internal/config"
	"foodfest/internal/models"
	"foodfest/internal/notify"
)

// GetAdminOrders lists all orders, newest first.
func GetAdminOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch orders")
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch orders")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    orders,
		})
	}
}

// VerifyPayment marks an order paid. Deliberately unconditional: verifying
// twice, or verifying a rejected order, just sets paid again.
func VerifyPayment(db *mongo.Database, sink notify.Sink) gin.HandlerFunc {
	return setPaymentStatus("PATCH /admin/orders/:id/verify-payment",
		models.PaymentPaid, "Payment verified successfully", db, sink)
}

// RejectPayment is the symmetric operation, equally unconditional.
func RejectPayment(db *mongo.Database, sink notify.Sink) gin.HandlerFunc {
	return setPaymentStatus("PATCH /admin/orders/:id/reject-payment",
		models.PaymentRejected, "Payment rejected", db, sink)
}

func setPaymentStatus(route, status, message string, db *mongo.Database, sink notify.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		update := bson.M{"$set": bson.M{
			"paymentStatus": status,
			"updatedAt":     time.Now(),
		}}

		var order models.Order
		err := db.Collection("orders").
			FindOneAndUpdate(ctx, orderFilter(c.Param("id")), update, opts).
			Decode(&order)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondWithError(c, http.StatusNotFound, route, "Order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to update payment status")
			return
		}

		sink.Emit(notify.EventOrderUpdated, order)
		log.Printf("[ADMIN] [INFO] order %s payment set to %s", order.OrderID, status)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": message,
			"data":    order,
		})
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus advances fulfillment to one of placed/accepted/completed.
// The paid-before-accepted precondition only applies when the deployment
// turns it on; by default acceptance is not linked to payment.
func UpdateOrderStatus(db *mongo.Database, cfg config.Config, sink notify.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/orders/:id/status"
		defer handlePanic(c, route)

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		filter := orderFilter(c.Param("id"))

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, filter).Decode(&order)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondWithError(c, http.StatusNotFound, route, "Order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to update order status")
			return
		}

		if err := checkStatusTransition(req.Status, order.PaymentStatus, cfg.RequirePaidBeforeAccept); err != nil {
			respondWithAPIError(c, route, err)
			return
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		update := bson.M{"$set": bson.M{
			"orderStatus": req.Status,
			"updatedAt":   time.Now(),
		}}

		err = db.Collection("orders").FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondWithError(c, http.StatusNotFound, route, "Order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to update order status")
			return
		}

		sink.Emit(notify.EventOrderUpdated, order)
		log.Printf("[ADMIN] [INFO] order %s status set to %s", order.OrderID, req.Status)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order status updated successfully",
			"data":    order,
		})
	}
}
