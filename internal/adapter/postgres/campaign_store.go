package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lark/internal/core/domain"
)

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
type CampaignStore struct {
	pool *pgxpool.Pool
}

func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

const campaignColumns = `id, owner_user_id, title, description, goal_amount, soft_cap, hard_cap,
       currency, status, visibility, start_at, end_at, total_raised, beneficiary_rule,
       has_diagnosis, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Title,
		&c.Description,
		&c.GoalAmount,
		&c.SoftCap,
		&c.HardCap,
		&c.Currency,
		&c.Status,
		&c.Visibility,
		&c.StartAt,
		&c.EndAt,
		&c.TotalRaised,
		&c.BeneficiaryRule,
		&c.HasDiagnosis,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// CreateCampaign inserts a campaign and returns the stored row.
func (s *CampaignStore) CreateCampaign(ctx context.Context, in domain.CampaignInsert) (*domain.Campaign, error) {
	var rule *domain.BeneficiaryRule
	if in.BeneficiaryRule != "" {
		rule = &in.BeneficiaryRule
	}
	row := s.pool.QueryRow(ctx, `
        INSERT INTO campaigns (owner_user_id, title, description, goal_amount, soft_cap, hard_cap,
                               currency, status, visibility, start_at, end_at, beneficiary_rule, has_diagnosis)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING `+campaignColumns,
		in.OwnerUserID, in.Title, in.Description, in.GoalAmount, in.SoftCap, in.HardCap,
		in.Currency, in.Status, in.Visibility, in.StartAt, in.EndAt, rule, in.HasDiagnosis)
	c, err := scanCampaign(row)
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	return &c, nil
}

// GetCampaign returns a campaign by id.
func (s *CampaignStore) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(s.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaignsByOwner returns the campaigns of an owner, newest first.
func (s *CampaignStore) ListCampaignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT `+campaignColumns+`
        FROM campaigns
        WHERE owner_user_id = $1
        ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// ListCampaignImages returns the images of a campaign by display order.
func (s *CampaignStore) ListCampaignImages(ctx context.Context, campaignID uuid.UUID) ([]domain.CampaignImage, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, user_id, campaign_id, image_url, display_order, is_primary
        FROM campaign_images
        WHERE campaign_id = $1
        ORDER BY display_order ASC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignImage, error) {
		var img domain.CampaignImage
		err := row.Scan(&img.ID, &img.UserID, &img.CampaignID, &img.ImageURL, &img.DisplayOrder, &img.IsPrimary)
		return img, err
	})
}

func (s *CampaignStore) CreateCampaignImage(ctx context.Context, in domain.CampaignImageInsert) (*domain.CampaignImage, error) {
	img := domain.CampaignImage{
		UserID:       in.UserID,
		CampaignID:   in.CampaignID,
		ImageURL:     in.ImageURL,
		DisplayOrder: in.DisplayOrder,
		IsPrimary:    in.IsPrimary,
	}
	err := s.pool.QueryRow(ctx, `
        INSERT INTO campaign_images (user_id, campaign_id, image_url, display_order, is_primary)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`,
		in.UserID, in.CampaignID, in.ImageURL, in.DisplayOrder, in.IsPrimary).Scan(&img.ID)
	if err != nil {
		return nil, fmt.Errorf("insert campaign image: %w", err)
	}
	return &img, nil
}

func (s *CampaignStore) CreateBeneficiary(ctx context.Context, in domain.CampaignBeneficiaryInsert) (*domain.CampaignBeneficiary, error) {
	b := domain.CampaignBeneficiary{
		CampaignID:        in.CampaignID,
		BeneficiaryUserID: in.BeneficiaryUserID,
		ShareType:         in.ShareType,
		ShareValue:        in.ShareValue,
		Priority:          in.Priority,
		IsActive:          in.IsActive,
	}
	err := s.pool.QueryRow(ctx, `
        INSERT INTO campaign_beneficiaries (campaign_id, beneficiary_user_id, share_type, share_value, priority, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`,
		in.CampaignID, in.BeneficiaryUserID, in.ShareType, in.ShareValue, in.Priority, in.IsActive).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert beneficiary: %w", err)
	}
	return &b, nil
}

func (s *CampaignStore) CreateDocument(ctx context.Context, in domain.CampaignDocumentInsert) (*domain.CampaignDocument, error) {
	d := domain.CampaignDocument{
		CampaignID:    in.CampaignID,
		BeneficiaryID: in.BeneficiaryID,
		Kind:          in.Kind,
		FileName:      in.FileName,
		MimeType:      in.MimeType,
		StoragePath:   in.StoragePath,
		URL:           in.URL,
	}
	err := s.pool.QueryRow(ctx, `
        INSERT INTO campaign_documents (campaign_id, beneficiary_id, kind, file_name, mime_type, storage_path, url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`,
		in.CampaignID, in.BeneficiaryID, in.Kind, in.FileName, in.MimeType, in.StoragePath, in.URL).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return &d, nil
}

// FindActiveBeneficiary returns the oldest active beneficiary record of a
// user together with the user's name and the campaign title.
func (s *CampaignStore) FindActiveBeneficiary(ctx context.Context, userID uuid.UUID) (*domain.ActiveBeneficiary, error) {
	var ab domain.ActiveBeneficiary
	b := &ab.Beneficiary
	err := s.pool.QueryRow(ctx, `
        SELECT cb.id, cb.campaign_id, cb.beneficiary_user_id, cb.share_type, cb.share_value,
               cb.priority, cb.is_active, cb.created_at, cb.updated_at,
               u.display_name, c.title
        FROM campaign_beneficiaries cb
        JOIN users u ON u.id = cb.beneficiary_user_id
        JOIN campaigns c ON c.id = cb.campaign_id
        WHERE cb.beneficiary_user_id = $1 AND cb.is_active
        ORDER BY cb.created_at
        LIMIT 1`, userID).
		Scan(&b.ID, &b.CampaignID, &b.BeneficiaryUserID, &b.ShareType, &b.ShareValue,
			&b.Priority, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
			&ab.DisplayName, &ab.CampaignTitle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ab, nil
}
