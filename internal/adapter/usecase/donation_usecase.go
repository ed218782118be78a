package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"lark/internal/core/domain"
	"lark/internal/core/port"
)

type DonationUseCase struct {
	donations port.DonationStore
	logger    *slog.Logger
}

func NewDonationUseCase(donations port.DonationStore, logger *slog.Logger) *DonationUseCase {
	return &DonationUseCase{donations: donations, logger: logger}
}

// CampaignDonations returns the paid donations of a campaign, newest first.
func (u *DonationUseCase) CampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]domain.Donation, error) {
	donations, err := u.donations.ListDonations(ctx, campaignID, domain.DonationPaid)
	if err != nil {
		u.logger.Error("list donations", slog.String("campaign_id", campaignID.String()), slog.Any("error", err))
		return nil, &domain.QueryError{Op: "donations", Err: err}
	}
	if donations == nil {
		donations = []domain.Donation{}
	}
	return donations, nil
}
