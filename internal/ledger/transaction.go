package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type classifies a ledger entry: stock movements (in, out) and
// commercial events (buy, sell).
type Type string

const (
	TypeIn   Type = "in"
	TypeOut  Type = "out"
	TypeBuy  Type = "buy"
	TypeSell Type = "sell"
)

// Valid reports whether t is one of the four known variants.
func (t Type) Valid() bool {
	switch t {
	case TypeIn, TypeOut, TypeBuy, TypeSell:
		return true
	}

	return false
}

// Transaction is one stock movement or commercial event. Records are
// append-only: once stored they are never mutated or deleted. The JSON
// tags define the persisted shape of the ledger sequence.
//
// Customer is meaningful only for sell entries and Supplier only for
// buy entries; DeliveryCode is set if and only if Type == TypeSell.
// The line total Quantity*Price is always derived, never stored.
type Transaction struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	DeliveryCode string    `json:"deliveryCode,omitempty"`
	Type         Type      `json:"type"`
	ItemName     string    `json:"itemName"`
	Quantity     int64     `json:"quantity"`
	Price        int64     `json:"price"` // Whole rupiah per unit
	Date         time.Time `json:"date"`
	Notes        string    `json:"notes,omitempty"`
	Customer     string    `json:"customer,omitempty"`
	Supplier     string    `json:"supplier,omitempty"`
}

// Total returns the derived line total.
func (t *Transaction) Total() int64 {
	return t.Quantity * t.Price
}

// ErrNotFound is returned when no transaction exists with the given id.
var ErrNotFound = errors.New("transaction not found")

// ErrCorruptState is returned when the persisted ledger payload cannot
// be parsed. The ledger is never silently replaced with an empty one;
// callers decide how to proceed.
var ErrCorruptState = errors.New("corrupt ledger state")

// ValidationError rejects malformed creation input before any mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
