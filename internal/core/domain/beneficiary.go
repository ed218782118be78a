package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShareType says how a beneficiary's share is expressed.
type ShareType string

const (
	SharePercent     ShareType = "percent"
	ShareFixedAmount ShareType = "fixed_amount"
)

func (s ShareType) Valid() bool {
	return s == SharePercent || s == ShareFixedAmount
}

// MaxRelationshipDocs is the number of documents one beneficiary may attach.
const MaxRelationshipDocs = 3

// BeneficiaryDraft is a candidate beneficiary assembled before the campaign
// exists. User stays nil until the person is resolved by search.
type BeneficiaryDraft struct {
	Email            string           `json:"email"`
	User             *User            `json:"user,omitempty"`
	ShareType        ShareType        `json:"share_type"`
	ShareValue       float64          `json:"share_value"`
	Priority         *int             `json:"priority,omitempty"`
	RelationshipDocs []DocumentUpload `json:"relationship_docs,omitempty"`
}

// Resolved reports whether the draft points at a concrete user.
func (d BeneficiaryDraft) Resolved() bool {
	return d.User != nil && d.User.ID != uuid.Nil
}

// CampaignBeneficiary is a persisted beneficiary of a campaign.
type CampaignBeneficiary struct {
	ID                uuid.UUID `json:"id"`
	CampaignID        uuid.UUID `json:"campaign_id"`
	BeneficiaryUserID uuid.UUID `json:"beneficiary_user_id"`
	ShareType         ShareType `json:"share_type"`
	ShareValue        float64   `json:"share_value"`
	Priority          *int      `json:"priority,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CampaignBeneficiaryInsert struct {
	CampaignID        uuid.UUID
	BeneficiaryUserID uuid.UUID
	ShareType         ShareType
	ShareValue        float64
	Priority          *int
	IsActive          bool
}

// ActiveBeneficiary is an active beneficiary row joined with the display
// name of the user and the title of the campaign it belongs to.
type ActiveBeneficiary struct {
	Beneficiary   CampaignBeneficiary
	DisplayName   string
	CampaignTitle string
}

// BeneficiaryConflict reports that a candidate beneficiary is already
// actively attached to another campaign.
type BeneficiaryConflict struct {
	BeneficiaryName string    `json:"beneficiary_name"`
	BeneficiaryID   uuid.UUID `json:"beneficiary_id"`
	CampaignID      uuid.UUID `json:"campaign_id"`
	CampaignTitle   string    `json:"campaign_title"`
}
