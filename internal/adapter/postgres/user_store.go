package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lark/internal/core/domain"
)

// UserStore implements port.UserStore.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

const userColumns = `id, display_name, email, phone, country, kyc_status, default_currency, pin_set, created_at, updated_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.DisplayName, &u.Email, &u.Phone, &u.Country,
		&u.KYCStatus, &u.DefaultCurrency, &u.PinSet, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (s *UserStore) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// likeEscaper keeps user input from acting as ILIKE wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchUsersByEmail matches query anywhere in the email, ignoring case.
func (s *UserStore) SearchUsersByEmail(ctx context.Context, query string, limit int) ([]domain.User, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT `+userColumns+`
        FROM users
        WHERE email ILIKE $1
        ORDER BY email
        LIMIT $2`, "%"+likeEscaper.Replace(query)+"%", limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
}

func (s *UserStore) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status domain.KYCStatus) error {
	tag, err := s.pool.Exec(ctx, `UPDATE users SET kyc_status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *UserStore) CreateKYCDocument(ctx context.Context, in domain.KYCDocumentInsert) (*domain.KYCDocument, error) {
	d := domain.KYCDocument{UserID: in.UserID, DocType: in.DocType, StoragePath: in.StoragePath, Status: in.Status}
	err := s.pool.QueryRow(ctx, `
        INSERT INTO kyc_documents (user_id, doc_type, storage_path, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`,
		in.UserID, in.DocType, in.StoragePath, in.Status).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert kyc document: %w", err)
	}
	return &d, nil
}

// DonationStore implements port.DonationStore.
type DonationStore struct {
	pool *pgxpool.Pool
}

func NewDonationStore(pool *pgxpool.Pool) *DonationStore {
	return &DonationStore{pool: pool}
}

func (s *DonationStore) ListDonations(ctx context.Context, campaignID uuid.UUID, status domain.DonationStatus) ([]domain.Donation, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, campaign_id, donor_user_id, amount, currency, exchange_rate, amount_in_campaign_ccy,
               status, provider, provider_payment_id, provider_charge_id, provider_fee, net_amount,
               receipt_url, message, created_at, updated_at
        FROM donations
        WHERE campaign_id = $1 AND status = $2
        ORDER BY created_at DESC`, campaignID, status)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Donation, error) {
		var d domain.Donation
		err := row.Scan(
			&d.ID,
			&d.CampaignID,
			&d.DonorUserID,
			&d.Amount,
			&d.Currency,
			&d.ExchangeRate,
			&d.AmountInCampaignCurrency,
			&d.Status,
			&d.Provider,
			&d.ProviderPaymentID,
			&d.ProviderChargeID,
			&d.ProviderFee,
			&d.NetAmount,
			&d.ReceiptURL,
			&d.Message,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		return d, err
	})
}
