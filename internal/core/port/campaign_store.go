package port

import (
	"context"

	"github.com/google/uuid"

	"lark/internal/core/domain"
)

// BeneficiaryLookup finds active beneficiary records of a user.
type BeneficiaryLookup interface {
	// FindActiveBeneficiary returns the first active beneficiary record of
	// userID joined with the user's display name and the campaign title,
	// or nil when the user is not an active beneficiary anywhere.
	FindActiveBeneficiary(ctx context.Context, userID uuid.UUID) (*domain.ActiveBeneficiary, error)
}

// CampaignStore is the row storage for campaigns and the records attached
// to them. It is an outbound port; single row getters return nil, nil when
// the row does not exist.
type CampaignStore interface {
	BeneficiaryLookup

	// CreateCampaign inserts a campaign row and returns it as stored.
	CreateCampaign(ctx context.Context, in domain.CampaignInsert) (*domain.Campaign, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListCampaignsByOwner returns the campaigns of ownerID, newest first.
	ListCampaignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error)
	// ListCampaignImages returns the images of a campaign ordered by
	// display order ascending.
	ListCampaignImages(ctx context.Context, campaignID uuid.UUID) ([]domain.CampaignImage, error)
	CreateCampaignImage(ctx context.Context, in domain.CampaignImageInsert) (*domain.CampaignImage, error)
	CreateBeneficiary(ctx context.Context, in domain.CampaignBeneficiaryInsert) (*domain.CampaignBeneficiary, error)
	CreateDocument(ctx context.Context, in domain.CampaignDocumentInsert) (*domain.CampaignDocument, error)
}
