package domain

import (
	"time"

	"github.com/google/uuid"
)

// KYCStatus is the identity verification state of a user.
type KYCStatus string

const (
	KYCPending  KYCStatus = "kyc_pending"
	KYCReview   KYCStatus = "kyc_review"
	KYCVerified KYCStatus = "kyc_verified"
	KYCRejected KYCStatus = "kyc_rejected"
)

// User is an application user as stored in the users table.
type User struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"display_name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	Country         *string   `json:"country,omitempty"`
	KYCStatus       KYCStatus `json:"kyc_status"`
	DefaultCurrency string    `json:"default_currency"`
	PinSet          bool      `json:"pin_set"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
