package port

import (
	"context"

	"github.com/google/uuid"

	"lark/internal/core/domain"
)

// UserStore is the row storage for users and their KYC documents.
type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// SearchUsersByEmail returns up to limit users whose email contains
	// query, case insensitive.
	SearchUsersByEmail(ctx context.Context, query string, limit int) ([]domain.User, error)
	UpdateKYCStatus(ctx context.Context, id uuid.UUID, status domain.KYCStatus) error
	CreateKYCDocument(ctx context.Context, in domain.KYCDocumentInsert) (*domain.KYCDocument, error)
}

// DonationStore reads donations.
type DonationStore interface {
	// ListDonations returns the donations of a campaign with the given
	// status, newest first.
	ListDonations(ctx context.Context, campaignID uuid.UUID, status domain.DonationStatus) ([]domain.Donation, error)
}
