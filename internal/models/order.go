package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses.
const (
	PaymentPending             = "pending"
	PaymentPendingVerification = "pending_verification"
	PaymentPaid                = "paid"
	PaymentRejected            = "rejected"
)

// Fulfillment statuses.
const (
	StatusPlaced    = "placed"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
)

// OrderItem is a snapshot of a menu item at order time. Later changes to the
// food's name or price must not alter historical orders, so nothing here is a
// live reference except the id.
type OrderItem struct {
	FoodID   primitive.ObjectID `bson:"foodId" json:"foodId"`
	FoodName string             `bson:"foodName" json:"foodName"`
	Price    int                `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order defines the persisted order document. OrderID is the human-readable
// sequential id (FF-001 style); TotalAmount is computed server-side at
// creation and immutable thereafter.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   int                `bson:"totalAmount" json:"totalAmount"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	OrderStatus   string             `bson:"orderStatus" json:"orderStatus"`
	UTRNumber     string             `bson:"utrNumber,omitempty" json:"utrNumber,omitempty"`
	UPILink       string             `bson:"-" json:"upiLink,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
