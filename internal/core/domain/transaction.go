package domain

import (
	"errors"
	"time"
)

// TransactionType tags the direction of a transaction. Amounts are stored as
// positive magnitudes; the type carries the sign.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single income or expense record owned by exactly one user.
type Transaction struct {
	ID        string          `json:"id" bson:"_id,omitempty"`
	UserID    string          `json:"user" bson:"user_id"`
	Title     string          `json:"title" bson:"title"`
	Amount    float64         `json:"amount" bson:"amount"`
	Category  string          `json:"category" bson:"category"`
	Type      TransactionType `json:"type" bson:"type"`
	Date      time.Time       `json:"date" bson:"date"`
	Notes     string          `json:"notes,omitempty" bson:"notes,omitempty"`
	Currency  string          `json:"currency" bson:"currency"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
}
