package handlers

import (
	"errors"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}

func lookupNotCalled(t *testing.T) func() error {
	return func() error {
		t.Fatal("lookup must not run when the write error already classifies the failure")
		return nil
	}
}

func TestSubmitUTRFailureDuplicateOnOtherOrder(t *testing.T) {
	// Second order submitting a UTR already recorded elsewhere: the unique
	// index rejects the write, the first order is never touched.
	apiErr := submitUTRFailure(duplicateKeyErr(), lookupNotCalled(t))

	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 conflict, got %d", apiErr.Status)
	}
	if apiErr.Message != "This UTR number has already been submitted" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestSubmitUTRFailureResubmitSameUTR(t *testing.T) {
	// The update filter excludes an order already carrying the submitted
	// UTR, so the write matches nothing — but the order itself exists, and
	// the resubmission must fail with Conflict, not succeed or 404.
	apiErr := submitUTRFailure(mongo.ErrNoDocuments, func() error { return nil })

	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 conflict, got %d", apiErr.Status)
	}
	if apiErr.Message != "This UTR number has already been submitted" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestSubmitUTRFailureOrderAbsent(t *testing.T) {
	apiErr := submitUTRFailure(mongo.ErrNoDocuments, func() error { return mongo.ErrNoDocuments })

	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", apiErr.Status)
	}
	if apiErr.Message != "Order not found" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestSubmitUTRFailureStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")

	if apiErr := submitUTRFailure(storeErr, lookupNotCalled(t)); apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 for an update failure, got %d", apiErr.Status)
	}
	if apiErr := submitUTRFailure(mongo.ErrNoDocuments, func() error { return storeErr }); apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 for a lookup failure, got %d", apiErr.Status)
	}
}
