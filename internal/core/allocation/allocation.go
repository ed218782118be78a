// Package allocation validates how campaign funds are split between
// beneficiaries and detects beneficiaries already committed to another
// campaign.
package allocation

import (
	"context"
	"math"

	"github.com/google/uuid"

	"lark/internal/core/domain"
	"lark/internal/core/port"
)

// ShareTolerance absorbs rounding from parsing share values typed by users.
const ShareTolerance = 0.01

// TotalPercent sums the share values of percent based drafts.
func TotalPercent(drafts []domain.BeneficiaryDraft) float64 {
	var sum float64
	for _, d := range drafts {
		if d.ShareType == domain.SharePercent {
			sum += d.ShareValue
		}
	}
	return sum
}

// ValidateShares reports whether the percent based drafts add up to 100.
// Lists without percent drafts are valid; fixed amounts are not summed.
func ValidateShares(drafts []domain.BeneficiaryDraft) bool {
	percent := 0
	for _, d := range drafts {
		if d.ShareType == domain.SharePercent {
			percent++
		}
	}
	if percent == 0 {
		return true
	}
	return math.Abs(TotalPercent(drafts)-100) < ShareTolerance
}

// Checker looks up active beneficiary records to find conflicts.
type Checker struct {
	lookup port.BeneficiaryLookup
}

func NewChecker(lookup port.BeneficiaryLookup) *Checker {
	return &Checker{lookup: lookup}
}

// CheckConflict returns the conflict of userID or nil. Only the first
// active record found is reported even if the user is active in several
// campaigns.
func (c *Checker) CheckConflict(ctx context.Context, userID uuid.UUID) (*domain.BeneficiaryConflict, error) {
	rec, err := c.lookup.FindActiveBeneficiary(ctx, userID)
	if err != nil {
		return nil, &domain.QueryError{Op: "beneficiaries", Err: err}
	}
	if rec == nil {
		return nil, nil
	}
	return &domain.BeneficiaryConflict{
		BeneficiaryName: rec.DisplayName,
		BeneficiaryID:   userID,
		CampaignID:      rec.Beneficiary.CampaignID,
		CampaignTitle:   rec.CampaignTitle,
	}, nil
}

// CheckConflicts checks every id in order, one lookup per id, and returns
// all conflicts found. An empty input makes no lookup.
func (c *Checker) CheckConflicts(ctx context.Context, userIDs []uuid.UUID) ([]domain.BeneficiaryConflict, error) {
	conflicts := make([]domain.BeneficiaryConflict, 0)
	for _, id := range userIDs {
		conflict, err := c.CheckConflict(ctx, id)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			conflicts = append(conflicts, *conflict)
		}
	}
	return conflicts, nil
}

// ConflictError turns a conflict list into the error returned to users:
// nil for none, a single conflict error for one, an aggregate otherwise.
func ConflictError(conflicts []domain.BeneficiaryConflict) error {
	switch len(conflicts) {
	case 0:
		return nil
	case 1:
		return &domain.BeneficiaryConflictError{Conflict: conflicts[0]}
	default:
		return &domain.BeneficiaryConflictsError{Conflicts: conflicts}
	}
}
