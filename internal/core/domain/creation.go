package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxCampaignImages is the number of images a campaign may be created with.
const MaxCampaignImages = 3

// CreateCampaignRequest is everything needed to create a campaign in one
// workflow run.
type CreateCampaignRequest struct {
	OwnerUserID     uuid.UUID          `json:"owner_user_id"`
	Title           string             `json:"title"`
	Description     *string            `json:"description,omitempty"`
	GoalAmount      *decimal.Decimal   `json:"goal_amount,omitempty"`
	SoftCap         *decimal.Decimal   `json:"soft_cap,omitempty"`
	HardCap         *decimal.Decimal   `json:"hard_cap,omitempty"`
	Currency        string             `json:"currency"`
	Visibility      CampaignVisibility `json:"visibility"`
	StartAt         *time.Time         `json:"start_at,omitempty"`
	EndAt           *time.Time         `json:"end_at,omitempty"`
	BeneficiaryRule BeneficiaryRule    `json:"beneficiary_rule"`
	HasDiagnosis    bool               `json:"has_diagnosis"`
	CampaignImages  []DocumentUpload   `json:"campaign_images,omitempty"`
	DiagnosisImages []DocumentUpload   `json:"diagnosis_images,omitempty"`
	Beneficiaries   []BeneficiaryDraft `json:"beneficiaries"`
}

// Normalize fills the defaults of optional enum fields and trims text.
func (r *CreateCampaignRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		r.Description = nil
	}
	if r.Currency == "" {
		r.Currency = "CLP"
	}
	r.Currency = strings.ToUpper(r.Currency)
	if r.Visibility == "" {
		r.Visibility = VisibilityPublic
	}
	if r.BeneficiaryRule == "" {
		r.BeneficiaryRule = RuleFixedShares
	}
}

// Validate checks the form level preconditions. Share totals are checked
// separately by the allocation validator.
func (r CreateCampaignRequest) Validate() error {
	switch {
	case r.OwnerUserID == uuid.Nil:
		return fmt.Errorf("%w: owner is required", ErrValidation)
	case strings.TrimSpace(r.Title) == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case len(r.Beneficiaries) == 0:
		return fmt.Errorf("%w: at least one beneficiary is required", ErrValidation)
	case len(r.CampaignImages) > MaxCampaignImages:
		return fmt.Errorf("%w: at most %d campaign images", ErrValidation, MaxCampaignImages)
	case !r.Visibility.Valid():
		return fmt.Errorf("%w: unknown visibility %q", ErrValidation, r.Visibility)
	case !r.BeneficiaryRule.Valid():
		return fmt.Errorf("%w: unknown beneficiary rule %q", ErrValidation, r.BeneficiaryRule)
	}
	for name, amount := range map[string]*decimal.Decimal{
		"goal amount": r.GoalAmount,
		"soft cap":    r.SoftCap,
		"hard cap":    r.HardCap,
	} {
		if amount != nil && !amount.IsPositive() {
			return fmt.Errorf("%w: %s must be positive", ErrValidation, name)
		}
	}
	if r.SoftCap != nil && r.HardCap != nil && r.SoftCap.GreaterThan(*r.HardCap) {
		return fmt.Errorf("%w: soft cap exceeds hard cap", ErrValidation)
	}
	if r.StartAt != nil && r.EndAt != nil && r.EndAt.Before(*r.StartAt) {
		return fmt.Errorf("%w: campaign ends before it starts", ErrValidation)
	}
	for _, up := range r.CampaignImages {
		if err := validateUpload(up); err != nil {
			return err
		}
		if !up.IsImage() {
			return fmt.Errorf("%w: %s is not an image", ErrValidation, up.FileName)
		}
	}
	if r.HasDiagnosis {
		for _, up := range r.DiagnosisImages {
			if err := validateUpload(up); err != nil {
				return err
			}
		}
	}
	seen := make(map[uuid.UUID]struct{}, len(r.Beneficiaries))
	for _, b := range r.Beneficiaries {
		if !b.Resolved() {
			return fmt.Errorf("%w: beneficiary %q is not resolved to a user", ErrValidation, b.Email)
		}
		if _, dup := seen[b.User.ID]; dup {
			return fmt.Errorf("%w: beneficiary %q added twice", ErrValidation, b.Email)
		}
		seen[b.User.ID] = struct{}{}
		if !b.ShareType.Valid() {
			return fmt.Errorf("%w: unknown share type %q", ErrValidation, b.ShareType)
		}
		if b.ShareValue < 0 {
			return fmt.Errorf("%w: negative share", ErrValidation)
		}
		if len(b.RelationshipDocs) > MaxRelationshipDocs {
			return fmt.Errorf("%w: at most %d documents per beneficiary", ErrValidation, MaxRelationshipDocs)
		}
		for _, up := range b.RelationshipDocs {
			if err := validateUpload(up); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateUpload(up DocumentUpload) error {
	switch {
	case strings.TrimSpace(up.FileName) == "":
		return fmt.Errorf("%w: file name is required", ErrValidation)
	case len(up.Data) == 0:
		return fmt.Errorf("%w: %s is empty", ErrValidation, up.FileName)
	case up.MimeType == "":
		return fmt.Errorf("%w: %s has no content type", ErrValidation, up.FileName)
	}
	return nil
}

// BeneficiaryIDs returns the user ids of the drafts in order. Unresolved
// drafts are skipped.
func (r CreateCampaignRequest) BeneficiaryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Beneficiaries))
	for _, b := range r.Beneficiaries {
		if b.Resolved() {
			ids = append(ids, b.User.ID)
		}
	}
	return ids
}

// CreationProgress lists what a creation run has persisted so far.
type CreationProgress struct {
	CampaignID     uuid.UUID   `json:"campaign_id"`
	ImageIDs       []uuid.UUID `json:"image_ids,omitempty"`
	DocumentIDs    []uuid.UUID `json:"document_ids,omitempty"`
	BeneficiaryIDs []uuid.UUID `json:"beneficiary_ids,omitempty"`
	CompletedSteps []string    `json:"completed_steps,omitempty"`
}

// IncompleteCreationError is returned when a creation run failed after the
// campaign row was written. Everything listed in Progress stays persisted.
type IncompleteCreationError struct {
	Step     string
	Progress CreationProgress
	Err      error
}

func (e *IncompleteCreationError) Error() string {
	return fmt.Sprintf("campaign %s partially created, step %s failed: %v",
		e.Progress.CampaignID, e.Step, e.Err)
}

func (e *IncompleteCreationError) Unwrap() error {
	return e.Err
}
