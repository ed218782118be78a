package usecase

import (
	"context"

	"github.com/google/uuid"

	"lark/internal/core/domain"
	"lark/internal/core/port"
)

// HomeUseCase assembles the home screen: the user, their newest campaign
// and its paid donations. The first failing step ends the load.
type HomeUseCase struct {
	users     port.UserUseCase
	campaigns port.CampaignReader
	donations port.DonationUseCase
}

func NewHomeUseCase(users port.UserUseCase, campaigns port.CampaignReader, donations port.DonationUseCase) *HomeUseCase {
	return &HomeUseCase{users: users, campaigns: campaigns, donations: donations}
}

func (u *HomeUseCase) Home(ctx context.Context, userID uuid.UUID) (*port.Home, error) {
	user, err := u.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	home := &port.Home{User: user, Donations: []domain.Donation{}}

	campaign, err := u.campaigns.FirstOwnCampaign(ctx, userID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return home, nil
	}
	home.Campaign = campaign

	home.Donations, err = u.donations.CampaignDonations(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	return home, nil
}
