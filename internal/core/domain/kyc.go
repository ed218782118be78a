package domain

import (
	"time"

	"github.com/google/uuid"
)

type KYCDocType string

const (
	KYCSelfie           KYCDocType = "selfie"
	KYCDNIFront         KYCDocType = "dni_front"
	KYCDNIBack          KYCDocType = "dni_back"
	KYCProofOfResidence KYCDocType = "proof_of_residence"
)

type KYCDocStatus string

const (
	KYCDocUploaded KYCDocStatus = "uploaded"
	KYCDocInReview KYCDocStatus = "in_review"
	KYCDocApproved KYCDocStatus = "approved"
	KYCDocRejected KYCDocStatus = "rejected"
)

// KYCDocument is an identity document image kept in the KYC bucket.
type KYCDocument struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	DocType         KYCDocType   `json:"doc_type"`
	StoragePath     string       `json:"storage_path"`
	Status          KYCDocStatus `json:"status"`
	RejectionReason *string      `json:"rejection_reason,omitempty"`
	IssuedAt        *time.Time   `json:"issued_at,omitempty"`
	VerifiedAt      *time.Time   `json:"verified_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type KYCDocumentInsert struct {
	UserID      uuid.UUID
	DocType     KYCDocType
	StoragePath string
	Status      KYCDocStatus
}

// KYCSubmission holds the three images a user sends for verification.
type KYCSubmission struct {
	DNIFront DocumentUpload `json:"dni_front"`
	DNIBack  DocumentUpload `json:"dni_back"`
	Selfie   DocumentUpload `json:"selfie"`
}
