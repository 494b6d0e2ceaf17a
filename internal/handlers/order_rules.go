package handlers

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"foodfest/internal/models"
)

// The order lifecycle rules, kept free of transport and storage so they can
// be tested directly.

// Indian mobile numbers: ten digits, first digit 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

func validPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

type createOrderItemRequest struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName string                   `json:"customerName"`
	Phone        string                   `json:"phone"`
	Items        []createOrderItemRequest `json:"items"`
}

func validateCreateOrder(req createOrderRequest, requirePhone bool) error {
	if strings.TrimSpace(req.CustomerName) == "" || len(req.Items) == 0 {
		return validationError("Please provide all required fields")
	}
	if requirePhone && strings.TrimSpace(req.Phone) == "" {
		return validationError("Please provide all required fields")
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" && !validPhone(phone) {
		return validationError("Please provide a valid 10-digit phone number")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return validationError("Quantity must be greater than 0")
		}
	}
	return nil
}

// snapshotItem copies the food's current name and price into the order so
// later menu edits cannot rewrite history.
func snapshotItem(food models.Food, quantity int) models.OrderItem {
	return models.OrderItem{
		FoodID:   food.ID,
		FoodName: food.Name,
		Price:    food.Price,
		Quantity: quantity,
	}
}

func totalOf(items []models.OrderItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

// formatOrderID renders a sequence number as FF-001, FF-002, ... The width
// grows naturally past 999.
func formatOrderID(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

func validOrderStatus(status string) bool {
	switch status {
	case models.StatusPlaced, models.StatusAccepted, models.StatusCompleted:
		return true
	}
	return false
}

// checkStatusTransition enforces the optional paid-before-accepted policy.
// With requirePaid off, admins may accept unpaid orders (pay-on-pickup).
func checkStatusTransition(target, paymentStatus string, requirePaid bool) error {
	if !validOrderStatus(target) {
		return validationError("Invalid status")
	}
	if requirePaid && target == models.StatusAccepted && paymentStatus != models.PaymentPaid {
		return conflictError("Order must be paid before it can be accepted")
	}
	return nil
}

// upiDeepLink builds the upi://pay URI the customer's payment app opens.
// The order id rides in the transaction note so payments can be matched by
// hand.
func upiDeepLink(upiID, payeeName string, amount int, orderID string) string {
	params := url.Values{}
	params.Set("pa", upiID)
	params.Set("pn", payeeName)
	params.Set("am", strconv.Itoa(amount))
	params.Set("cu", "INR")
	params.Set("tn", orderID)
	return "upi://pay?" + params.Encode()
}
