package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodfest/internal/config"
	"foodfest/internal/database"
	"foodfest/internal/models"
	"foodfest/internal/notify"
)

// CreateOrder validates the requested items against the menu, snapshots them,
// claims the next sequential order id from the atomic counter and persists
// the order in (pending, placed) state.
func CreateOrder(db *mongo.Database, cfg config.Config, sink notify.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if err := validateCreateOrder(req, cfg.RequirePhone); err != nil {
			respondWithAPIError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		items, err := snapshotRequestedItems(ctx, db, req.Items)
		if err != nil {
			respondWithAPIError(c, route, err)
			return
		}

		seq, err := database.NextOrderSeq(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to create order")
			return
		}

		now := time.Now()
		order := models.Order{
			OrderID:       formatOrderID(cfg.OrderPrefix, seq),
			CustomerName:  strings.TrimSpace(req.CustomerName),
			Phone:         strings.TrimSpace(req.Phone),
			Items:         items,
			TotalAmount:   totalOf(items),
			PaymentStatus: models.PaymentPending,
			OrderStatus:   models.StatusPlaced,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			// The unique orderId index is the backstop should the counter
			// ever be reset underneath a live deployment.
			if mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusConflict, route, "Order id collision, please retry")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "Failed to create order")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}
		order.UPILink = upiDeepLink(cfg.UPIID, cfg.UPIPayeeName, order.TotalAmount, order.OrderID)

		sink.Emit(notify.EventNewOrder, order)
		log.Printf("[ORDER] [INFO] order %s created, total ₹%d", order.OrderID, order.TotalAmount)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    order,
		})
	}
}

// snapshotRequestedItems resolves every requested food and freezes its name
// and price into line items. Availability is checked here, at creation time;
// later menu changes do not touch existing orders.
func snapshotRequestedItems(ctx context.Context, db *mongo.Database, requested []createOrderItemRequest) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(requested))

	for _, item := range requested {
		foodID, err := primitive.ObjectIDFromHex(item.FoodID)
		if err != nil {
			return nil, notFoundError(fmt.Sprintf("Food item not found: %s", item.FoodID))
		}

		var food models.Food
		err = db.Collection("foods").FindOne(ctx, bson.M{"_id": foodID}).Decode(&food)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFoundError(fmt.Sprintf("Food item not found: %s", item.FoodID))
		}
		if err != nil {
			return nil, err
		}

		if !food.IsAvailable {
			return nil, unavailableError(fmt.Sprintf("%s is currently not available", food.Name))
		}

		items = append(items, snapshotItem(food, item.Quantity))
	}

	return items, nil
}

// GetOrder returns a single order by Mongo id or human-readable orderId.
func GetOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, orderFilter(c.Param("id"))).Decode(&order)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondWithError(c, http.StatusNotFound, route, "Order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch order")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    order,
		})
	}
}

type submitUTRRequest struct {
	UTRNumber string `json:"utrNumber"`
}

// SubmitUTR records the customer's payment reference and moves payment to
// pending_verification. Uniqueness of the UTR across all orders is enforced
// by the partial unique index, not by a racy pre-check: a UTR sitting on
// another order surfaces as a duplicate-key write error and the first
// submission stays untouched. The index cannot catch resubmitting an order's
// own UTR ($set to an identical indexed value is not a violation), so the
// filter excludes that case and a follow-up read tells it apart from a
// missing order.
func SubmitUTR(db *mongo.Database, sink notify.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/submit-utr"
		defer handlePanic(c, route)

		var req submitUTRRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		utr := strings.TrimSpace(req.UTRNumber)
		if utr == "" {
			respondWithError(c, http.StatusBadRequest, route, "Please provide UTR number")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		filter := orderFilter(c.Param("id"))
		filter["utrNumber"] = bson.M{"$ne": utr}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		update := bson.M{"$set": bson.M{
			"utrNumber":     utr,
			"paymentStatus": models.PaymentPendingVerification,
			"updatedAt":     time.Now(),
		}}

		var order models.Order
		err := db.Collection("orders").
			FindOneAndUpdate(ctx, filter, update, opts).
			Decode(&order)
		if err != nil {
			apiErr := submitUTRFailure(err, func() error {
				return db.Collection("orders").FindOne(ctx, orderFilter(c.Param("id"))).Err()
			})
			respondWithError(c, apiErr.Status, route, apiErr.Message)
			return
		}

		sink.Emit(notify.EventOrderUpdated, order)
		log.Printf("[ORDER] [INFO] UTR submitted for %s", order.OrderID)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "UTR submitted successfully. Admin will verify your payment shortly.",
			"data":    order,
		})
	}
}

// submitUTRFailure classifies a failed UTR write. A duplicate-key error
// means the UTR is already recorded on another order. No match means either
// the order does not exist or it already carries this exact UTR; lookup
// (run only then) settles which, so a resubmission of a recorded UTR fails
// with Conflict instead of silently succeeding.
func submitUTRFailure(updateErr error, lookup func() error) apiError {
	if mongo.IsDuplicateKeyError(updateErr) {
		return conflictError("This UTR number has already been submitted")
	}
	if !errors.Is(updateErr, mongo.ErrNoDocuments) {
		return apiError{Status: http.StatusInternalServerError, Message: "Failed to submit UTR"}
	}

	switch lookupErr := lookup(); {
	case errors.Is(lookupErr, mongo.ErrNoDocuments):
		return notFoundError("Order not found")
	case lookupErr != nil:
		return apiError{Status: http.StatusInternalServerError, Message: "Failed to submit UTR"}
	default:
		return conflictError("This UTR number has already been submitted")
	}
}
