package port

import (
	"context"

	"github.com/google/uuid"

	"lark/internal/core/domain"
)

// CampaignReader serves cached campaign data. Inbound port used by the
// HTTP adapter.
type CampaignReader interface {
	// OwnCampaigns returns the campaigns of ownerID, served from cache
	// while fresh. A call made while a load is running returns the
	// current cached value without waiting.
	OwnCampaigns(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error)
	// FirstOwnCampaign returns the newest campaign of ownerID or nil.
	FirstOwnCampaign(ctx context.Context, ownerID uuid.UUID) (*domain.Campaign, error)
	// CampaignImages returns the images of a campaign ordered by display
	// order, with the same cache discipline as OwnCampaigns.
	CampaignImages(ctx context.Context, campaignID uuid.UUID) ([]domain.CampaignImage, error)
	Invalidate(kind domain.CacheKind)
	ForceReload()
}

// CampaignCreator runs the campaign creation workflow.
type CampaignCreator interface {
	CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (*domain.Campaign, error)
}

// ConflictChecker detects beneficiaries already committed elsewhere.
type ConflictChecker interface {
	CheckConflict(ctx context.Context, userID uuid.UUID) (*domain.BeneficiaryConflict, error)
	CheckConflicts(ctx context.Context, userIDs []uuid.UUID) ([]domain.BeneficiaryConflict, error)
}

type UserUseCase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
}

type DonationUseCase interface {
	CampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]domain.Donation, error)
}

// Home is the initial data of the app's home screen.
type Home struct {
	User      *domain.User      `json:"user"`
	Campaign  *domain.Campaign  `json:"campaign,omitempty"`
	Donations []domain.Donation `json:"donations"`
}

type HomeUseCase interface {
	Home(ctx context.Context, userID uuid.UUID) (*Home, error)
}

type KYCUseCase interface {
	SubmitKYC(ctx context.Context, userID uuid.UUID, sub domain.KYCSubmission, progress func(float64)) error
}

// Vault function requests and responses. Field names follow the JSON
// contract of the function endpoints.
type (
	UploadURLReq struct {
		CampaignID    uuid.UUID `json:"campaignId"`
		FileName      string    `json:"fileName"`
		MimeType      string    `json:"mimeType"`
		ExpectedBytes int64     `json:"expectedBytes"`
	}
	CommitUploadReq struct {
		CampaignID uuid.UUID `json:"campaignId"`
		Path       string    `json:"path"`
		FileName   string    `json:"fileName"`
		MimeType   string    `json:"mimeType"`
	}
	CommitUploadResp struct {
		OK        bool      `json:"ok"`
		FileID    uuid.UUID `json:"fileId"`
		CreatedAt string    `json:"created_at"`
	}
	ListFilesReq struct {
		CampaignID uuid.UUID `json:"campaignId"`
		Page       int       `json:"page"`
		PageSize   int       `json:"pageSize"`
	}
	DeleteFileReq struct {
		FileID uuid.UUID `json:"fileId"`
	}
	DownloadURLReq struct {
		FileID    uuid.UUID `json:"fileId"`
		ExpiresIn int       `json:"expiresIn"`
	}
	DownloadURLResp struct {
		URL string `json:"url"`
	}
	SubscriptionReq struct {
		CampaignID uuid.UUID `json:"campaignId"`
		ProductID  string    `json:"productId,omitempty"`
	}
)

// VaultUseCase implements the vault functions. Every method acts on behalf
// of userID and fails with *domain.VaultError.
type VaultUseCase interface {
	UploadURL(ctx context.Context, userID uuid.UUID, req UploadURLReq) (*domain.SignedUpload, error)
	CommitUpload(ctx context.Context, userID uuid.UUID, req CommitUploadReq) (*CommitUploadResp, error)
	ListFiles(ctx context.Context, userID uuid.UUID, req ListFilesReq) (*domain.VaultPage, error)
	DeleteFile(ctx context.Context, userID uuid.UUID, req DeleteFileReq) error
	DownloadURL(ctx context.Context, userID uuid.UUID, req DownloadURLReq) (*DownloadURLResp, error)
	Subscription(ctx context.Context, userID uuid.UUID, req SubscriptionReq) (*domain.VaultSubscription, error)
}
