package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

// CampaignVisibility controls who can discover a campaign.
type CampaignVisibility string

const (
	VisibilityPublic   CampaignVisibility = "public"
	VisibilityUnlisted CampaignVisibility = "unlisted"
	VisibilityPrivate  CampaignVisibility = "private"
)

func (v CampaignVisibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate:
		return true
	}
	return false
}

// BeneficiaryRule decides how raised funds are split between beneficiaries.
type BeneficiaryRule string

const (
	RuleFixedShares       BeneficiaryRule = "fixed_shares"
	RulePriority          BeneficiaryRule = "priority"
	RuleSingleBeneficiary BeneficiaryRule = "single_beneficiary"
)

func (r BeneficiaryRule) Valid() bool {
	switch r {
	case RuleFixedShares, RulePriority, RuleSingleBeneficiary:
		return true
	}
	return false
}

// Campaign represents a fundraising campaign.
// TotalRaised is never negative and GoalAmount, when set, is positive.
type Campaign struct {
	ID              uuid.UUID          `json:"id"`
	OwnerUserID     uuid.UUID          `json:"owner_user_id"`
	Title           string             `json:"title"`
	Description     *string            `json:"description,omitempty"`
	GoalAmount      *decimal.Decimal   `json:"goal_amount,omitempty"`
	SoftCap         *decimal.Decimal   `json:"soft_cap,omitempty"`
	HardCap         *decimal.Decimal   `json:"hard_cap,omitempty"`
	Currency        string             `json:"currency"`
	Status          CampaignStatus     `json:"status"`
	Visibility      CampaignVisibility `json:"visibility"`
	StartAt         *time.Time         `json:"start_at,omitempty"`
	EndAt           *time.Time         `json:"end_at,omitempty"`
	TotalRaised     decimal.Decimal    `json:"total_raised"`
	BeneficiaryRule *BeneficiaryRule   `json:"beneficiary_rule,omitempty"`
	HasDiagnosis    bool               `json:"has_diagnosis"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// CampaignInsert carries the columns written when a campaign row is created.
type CampaignInsert struct {
	OwnerUserID     uuid.UUID
	Title           string
	Description     *string
	GoalAmount      *decimal.Decimal
	SoftCap         *decimal.Decimal
	HardCap         *decimal.Decimal
	Currency        string
	Status          CampaignStatus
	Visibility      CampaignVisibility
	StartAt         *time.Time
	EndAt           *time.Time
	BeneficiaryRule BeneficiaryRule
	HasDiagnosis    bool
}

// CampaignImage is an image shown on the campaign page. Images are listed by
// DisplayOrder ascending and exactly one of them is primary.
type CampaignImage struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	CampaignID   uuid.UUID `json:"campaign_id"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	IsPrimary    bool      `json:"is_primary"`
}

type CampaignImageInsert struct {
	UserID       uuid.UUID
	CampaignID   uuid.UUID
	ImageURL     string
	DisplayOrder int
	IsPrimary    bool
}

// DocumentKind tells what a stored campaign document proves.
type DocumentKind string

const (
	DocumentDiagnosis    DocumentKind = "diagnosis"
	DocumentRelationship DocumentKind = "relationship"
)

// CampaignDocument is a file attached to a campaign: a diagnosis image of
// the campaign itself or a relationship document of one beneficiary.
type CampaignDocument struct {
	ID            uuid.UUID    `json:"id"`
	CampaignID    uuid.UUID    `json:"campaign_id"`
	BeneficiaryID *uuid.UUID   `json:"beneficiary_id,omitempty"`
	Kind          DocumentKind `json:"kind"`
	FileName      string       `json:"file_name"`
	MimeType      string       `json:"mime_type"`
	StoragePath   string       `json:"storage_path"`
	URL           string       `json:"url"`
	CreatedAt     time.Time    `json:"created_at"`
}

type CampaignDocumentInsert struct {
	CampaignID    uuid.UUID
	BeneficiaryID *uuid.UUID
	Kind          DocumentKind
	FileName      string
	MimeType      string
	StoragePath   string
	URL           string
}

// CacheKind names a set of cached campaign data.
type CacheKind string

const (
	CacheCampaigns CacheKind = "campaigns"
	CacheImages    CacheKind = "images"
)
