package port

import (
	"context"

	"github.com/google/uuid"

	"lark/internal/core/domain"
)

// VaultStore keeps vault file records and per campaign storage usage.
// CommitFile and DeleteFile adjust the subscription's used bytes in the
// same transaction as the file row. CommitFile returns
// domain.ErrQuotaExceeded, and records nothing, when the file does not fit
// in the remaining quota at commit time.
type VaultStore interface {
	GetSubscription(ctx context.Context, userID, campaignID uuid.UUID) (*domain.VaultSubscription, error)
	UpsertSubscription(ctx context.Context, sub domain.VaultSubscription) (*domain.VaultSubscription, error)
	CommitFile(ctx context.Context, in domain.VaultFileInsert) (*domain.VaultFile, error)
	GetFile(ctx context.Context, id uuid.UUID) (*domain.VaultFile, error)
	// ListFiles returns one page of files, newest first, and the total
	// number of files in the campaign vault.
	ListFiles(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]domain.VaultFile, int, error)
	DeleteFile(ctx context.Context, id uuid.UUID) error
}
