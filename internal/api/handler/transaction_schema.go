package handler

import (
	"fmt"
	"time"
)

// createTransactionRequest is the payload of POST /api/transactions.
// Amounts are positive magnitudes; direction is carried by type.
type createTransactionRequest struct {
	Title    string  `json:"title"    validate:"required"`
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Type     string  `json:"type"     validate:"required,oneof=income expense"`
	Date     string  `json:"date"     validate:"omitempty"`
	Notes    string  `json:"notes"`
	Currency string  `json:"currency" validate:"omitempty,oneof=USD EUR GBP INR"`
}

// updateTransactionRequest is the payload of PUT /api/transactions/:id.
// Absent fields are left unchanged.
type updateTransactionRequest struct {
	Title    *string  `json:"title"    validate:"omitempty,min=1"`
	Amount   *float64 `json:"amount"   validate:"omitempty,gt=0"`
	Category *string  `json:"category" validate:"omitempty,min=1"`
	Type     *string  `json:"type"     validate:"omitempty,oneof=income expense"`
	Date     *string  `json:"date"     validate:"omitempty"`
	Notes    *string  `json:"notes"`
	Currency *string  `json:"currency" validate:"omitempty,oneof=USD EUR GBP INR"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// parseDate accepts either a bare date (2006-01-02) or a full RFC 3339
// timestamp, which covers both the date picker and API clients.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", s)
}
