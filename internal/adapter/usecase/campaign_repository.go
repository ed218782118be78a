package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lark/internal/cache"
	"lark/internal/core/domain"
	"lark/internal/core/port"
)

// CampaignRepository serves the current user's campaigns and a campaign's
// images from a short lived in-process cache in front of the store. Writes
// elsewhere must call Invalidate for the data they change.
type CampaignRepository struct {
	store  port.CampaignStore
	logger *slog.Logger

	campaigns *cache.Cache[[]domain.Campaign]
	images    *cache.Cache[[]domain.CampaignImage]
}

// NewCampaignRepository creates a repository whose cached lists stay fresh
// for ttl. A nil now uses time.Now.
func NewCampaignRepository(store port.CampaignStore, ttl time.Duration, logger *slog.Logger, now func() time.Time) *CampaignRepository {
	return &CampaignRepository{
		store:     store,
		logger:    logger,
		campaigns: cache.New[[]domain.Campaign](ttl, now),
		images:    cache.New[[]domain.CampaignImage](ttl, now),
	}
}

// OwnCampaigns returns the campaigns owned by ownerID. While a load for the
// same owner is running it returns that owner's current cached list, which
// may be empty, without waiting for the load.
func (r *CampaignRepository) OwnCampaigns(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error) {
	campaigns, err := r.campaigns.Get(ctx, ownerID.String(), func(ctx context.Context) ([]domain.Campaign, error) {
		r.logger.Debug("loading own campaigns", slog.String("owner_id", ownerID.String()))
		return r.store.ListCampaignsByOwner(ctx, ownerID)
	})
	if err != nil {
		r.logger.Error("load own campaigns", slog.String("owner_id", ownerID.String()), slog.Any("error", err))
		return nil, &domain.QueryError{Op: "campaigns", Err: err}
	}
	return campaigns, nil
}

// FirstOwnCampaign returns the newest campaign of ownerID, or nil when the
// owner has none.
func (r *CampaignRepository) FirstOwnCampaign(ctx context.Context, ownerID uuid.UUID) (*domain.Campaign, error) {
	campaigns, err := r.OwnCampaigns(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, nil
	}
	first := campaigns[0]
	return &first, nil
}

// CampaignImages returns the images of campaignID ordered by display order.
func (r *CampaignRepository) CampaignImages(ctx context.Context, campaignID uuid.UUID) ([]domain.CampaignImage, error) {
	images, err := r.images.Get(ctx, campaignID.String(), func(ctx context.Context) ([]domain.CampaignImage, error) {
		r.logger.Debug("loading campaign images", slog.String("campaign_id", campaignID.String()))
		return r.store.ListCampaignImages(ctx, campaignID)
	})
	if err != nil {
		r.logger.Error("load campaign images", slog.String("campaign_id", campaignID.String()), slog.Any("error", err))
		return nil, &domain.QueryError{Op: "campaign images", Err: err}
	}
	return images, nil
}

// Invalidate forces the next read of kind to go to the store.
func (r *CampaignRepository) Invalidate(kind domain.CacheKind) {
	switch kind {
	case domain.CacheCampaigns:
		r.campaigns.Invalidate()
	case domain.CacheImages:
		r.images.Invalidate()
	default:
		r.logger.Warn("unknown cache kind", slog.String("kind", string(kind)))
		return
	}
	r.logger.Debug("cache invalidated", slog.String("kind", string(kind)))
}

// ForceReload invalidates every cached list.
func (r *CampaignRepository) ForceReload() {
	r.Invalidate(domain.CacheCampaigns)
	r.Invalidate(domain.CacheImages)
}
