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

// VaultStore implements port.VaultStore.
type VaultStore struct {
	pool *pgxpool.Pool
}

func NewVaultStore(pool *pgxpool.Pool) *VaultStore {
	return &VaultStore{pool: pool}
}

const subscriptionColumns = `user_id, campaign_id, plan_type, product_id, storage_used_bytes, storage_quota_bytes, updated_at`

func scanSubscription(row pgx.Row) (domain.VaultSubscription, error) {
	var sub domain.VaultSubscription
	err := row.Scan(&sub.UserID, &sub.CampaignID, &sub.PlanType, &sub.ProductID,
		&sub.StorageUsedBytes, &sub.StorageQuotaBytes, &sub.UpdatedAt)
	return sub, err
}

const vaultFileColumns = `id, campaign_id, owner_user_id, file_name, file_type, mime_type, file_size_bytes, storage_path, created_at`

func scanVaultFile(row pgx.Row) (domain.VaultFile, error) {
	var f domain.VaultFile
	err := row.Scan(&f.ID, &f.CampaignID, &f.OwnerUserID, &f.FileName, &f.FileType,
		&f.MimeType, &f.SizeBytes, &f.StoragePath, &f.CreatedAt)
	return f, err
}

func (s *VaultStore) GetSubscription(ctx context.Context, userID, campaignID uuid.UUID) (*domain.VaultSubscription, error) {
	sub, err := scanSubscription(s.pool.QueryRow(ctx, `
        SELECT `+subscriptionColumns+`
        FROM vault_subscriptions
        WHERE user_id = $1 AND campaign_id = $2`, userID, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpsertSubscription writes the plan of a subscription. Used bytes are only
// set on insert; afterwards they are maintained by CommitFile and
// DeleteFile.
func (s *VaultStore) UpsertSubscription(ctx context.Context, in domain.VaultSubscription) (*domain.VaultSubscription, error) {
	sub, err := scanSubscription(s.pool.QueryRow(ctx, `
        INSERT INTO vault_subscriptions (user_id, campaign_id, plan_type, product_id, storage_used_bytes, storage_quota_bytes)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, campaign_id) DO UPDATE
            SET plan_type = EXCLUDED.plan_type,
                product_id = EXCLUDED.product_id,
                storage_quota_bytes = EXCLUDED.storage_quota_bytes,
                updated_at = now()
        RETURNING `+subscriptionColumns,
		in.UserID, in.CampaignID, in.PlanType, in.ProductID, in.StorageUsedBytes, in.StorageQuotaBytes))
	if err != nil {
		return nil, fmt.Errorf("upsert subscription: %w", err)
	}
	return &sub, nil
}

// CommitFile inserts the file row and charges its size to the campaign's
// subscription in one transaction.
func (s *VaultStore) CommitFile(ctx context.Context, in domain.VaultFileInsert) (file *domain.VaultFile, err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else if err = tx.Commit(ctx); err != nil {
			file = nil
		}
	}()

	tag, err := tx.Exec(ctx, `
        UPDATE vault_subscriptions
        SET storage_used_bytes = storage_used_bytes + $1, updated_at = now()
        WHERE user_id = $2 AND campaign_id = $3
          AND storage_used_bytes + $1 <= storage_quota_bytes`, in.SizeBytes, in.OwnerUserID, in.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("charge vault usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrQuotaExceeded
	}

	f, err := scanVaultFile(tx.QueryRow(ctx, `
        INSERT INTO vault_files (campaign_id, owner_user_id, file_name, file_type, mime_type, file_size_bytes, storage_path)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+vaultFileColumns,
		in.CampaignID, in.OwnerUserID, in.FileName, in.FileType, in.MimeType, in.SizeBytes, in.StoragePath))
	if err != nil {
		return nil, fmt.Errorf("insert vault file: %w", err)
	}
	return &f, nil
}

func (s *VaultStore) GetFile(ctx context.Context, id uuid.UUID) (*domain.VaultFile, error) {
	f, err := scanVaultFile(s.pool.QueryRow(ctx, `SELECT `+vaultFileColumns+` FROM vault_files WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *VaultStore) ListFiles(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]domain.VaultFile, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM vault_files WHERE campaign_id = $1`, campaignID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := s.pool.Query(ctx, `
        SELECT `+vaultFileColumns+`
        FROM vault_files
        WHERE campaign_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`, campaignID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	files, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VaultFile, error) {
		return scanVaultFile(row)
	})
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

// DeleteFile removes the file row and releases its bytes in one
// transaction.
func (s *VaultStore) DeleteFile(ctx context.Context, id uuid.UUID) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var (
		owner, campaign uuid.UUID
		size            int64
	)
	err = tx.QueryRow(ctx, `
        DELETE FROM vault_files WHERE id = $1
        RETURNING owner_user_id, campaign_id, file_size_bytes`, id).Scan(&owner, &campaign, &size)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("vault file %s: %w", id, domain.ErrNotFound)
		return err
	}
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        UPDATE vault_subscriptions
        SET storage_used_bytes = GREATEST(storage_used_bytes - $1, 0), updated_at = now()
        WHERE user_id = $2 AND campaign_id = $3`, size, owner, campaign)
	return err
}
