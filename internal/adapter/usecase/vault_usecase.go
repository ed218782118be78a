package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"lark/internal/core/domain"
	"lark/internal/core/port"
)

// MaxVaultPageSize bounds a vault listing page.
const MaxVaultPageSize = 100

// VaultLimits are the limits enforced by the vault functions.
type VaultLimits struct {
	MaxFileBytes      int64
	FreeQuotaBytes    int64
	UploadURLTTL      time.Duration
	DownloadURLTTL    time.Duration
	MaxDownloadURLTTL time.Duration
	DefaultPageSize   int
}

// VaultUseCase serves the per campaign file vault. Only the owner of a
// campaign may touch its vault.
type VaultUseCase struct {
	campaigns port.CampaignStore
	vault     port.VaultStore
	files     port.ObjectStorage
	events    port.EventPublisher
	bucket    string
	limits    VaultLimits
	logger    *slog.Logger
}

func NewVaultUseCase(
	campaigns port.CampaignStore,
	vault port.VaultStore,
	files port.ObjectStorage,
	events port.EventPublisher,
	bucket string,
	limits VaultLimits,
	logger *slog.Logger,
) *VaultUseCase {
	return &VaultUseCase{
		campaigns: campaigns,
		vault:     vault,
		files:     files,
		events:    events,
		bucket:    bucket,
		limits:    limits,
		logger:    logger,
	}
}

func vaultErr(code domain.VaultErrorCode, details string, err error) *domain.VaultError {
	return &domain.VaultError{Code: code, Details: details, Err: err}
}

func (u *VaultUseCase) authorize(ctx context.Context, userID, campaignID uuid.UUID) error {
	if userID == uuid.Nil {
		return vaultErr(domain.VaultMissingBearer, "", nil)
	}
	campaign, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		u.logger.Error("vault campaign lookup", slog.String("campaign_id", campaignID.String()), slog.Any("error", err))
		return vaultErr(domain.VaultDBError, err.Error(), err)
	}
	if campaign == nil || campaign.OwnerUserID != userID {
		return vaultErr(domain.VaultForbidden, "", nil)
	}
	return nil
}

// subscription returns the stored subscription or a free plan that has not
// been persisted yet. stored tells which.
func (u *VaultUseCase) subscription(ctx context.Context, userID, campaignID uuid.UUID) (sub *domain.VaultSubscription, stored bool, err error) {
	sub, err = u.vault.GetSubscription(ctx, userID, campaignID)
	if err != nil {
		return nil, false, vaultErr(domain.VaultDBError, err.Error(), err)
	}
	if sub != nil {
		return sub, true, nil
	}
	return &domain.VaultSubscription{
		UserID:            userID,
		CampaignID:        campaignID,
		PlanType:          domain.PlanFree,
		StorageQuotaBytes: u.limits.FreeQuotaBytes,
	}, false, nil
}

func allowedMime(mime string) bool {
	switch strings.ToLower(mime) {
	case "image/jpeg", "image/png", "image/heic", "image/webp",
		"application/pdf",
		"video/mp4", "video/quicktime",
		"audio/mpeg", "audio/mp4", "audio/x-m4a",
		"text/plain", "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return true
	}
	return false
}

func (u *VaultUseCase) tooLarge() *domain.VaultError {
	return &domain.VaultError{Code: domain.VaultFileTooLarge, Max: u.limits.MaxFileBytes}
}

// UploadURL reserves an object path in the campaign vault and returns a
// presigned URL the client PUTs the file to.
func (u *VaultUseCase) UploadURL(ctx context.Context, userID uuid.UUID, req port.UploadURLReq) (*domain.SignedUpload, error) {
	if userID == uuid.Nil {
		return nil, vaultErr(domain.VaultMissingBearer, "", nil)
	}
	if req.CampaignID == uuid.Nil || strings.TrimSpace(req.FileName) == "" || req.MimeType == "" || req.ExpectedBytes < 0 {
		return nil, vaultErr(domain.VaultBadRequest, "campaignId, fileName and mimeType are required", nil)
	}
	if err := u.authorize(ctx, userID, req.CampaignID); err != nil {
		return nil, err
	}
	if !allowedMime(req.MimeType) {
		return nil, vaultErr(domain.VaultMimeNotAllowed, req.MimeType, nil)
	}
	if req.ExpectedBytes > u.limits.MaxFileBytes {
		return nil, u.tooLarge()
	}
	sub, _, err := u.subscription(ctx, userID, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if req.ExpectedBytes > sub.Remaining() {
		return nil, vaultErr(domain.VaultQuotaExceeded, "", nil)
	}

	dir := req.CampaignID.String()
	name := uuid.NewString() + "_" + objectName(req.FileName)
	objectPath := dir + "/" + name
	signed, err := u.files.PresignedPutURL(ctx, u.bucket, objectPath, u.limits.UploadURLTTL)
	if err != nil {
		u.logger.Error("presign vault upload", slog.String("path", objectPath), slog.Any("error", err))
		return nil, vaultErr(domain.VaultStorageError, err.Error(), err)
	}
	return &domain.SignedUpload{
		Bucket:     u.bucket,
		Path:       objectPath,
		Dir:        dir,
		ObjectName: name,
		UploadURL:  signed,
		Token:      uploadToken(signed),
		ExpiresIn:  int(u.limits.UploadURLTTL.Seconds()),
	}, nil
}

// uploadToken extracts the signature of a presigned URL.
func uploadToken(signed string) string {
	parsed, err := url.Parse(signed)
	if err != nil {
		return ""
	}
	q := parsed.Query()
	if token := q.Get("X-Amz-Signature"); token != "" {
		return token
	}
	return q.Get("token")
}

type vaultFileEvent struct {
	FileID     uuid.UUID `json:"file_id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	UserID     uuid.UUID `json:"user_id"`
	SizeBytes  int64     `json:"size_bytes"`
	Path       string    `json:"path"`
}

// CommitUpload records an object uploaded through UploadURL and charges its
// size to the vault quota. Objects over the limits are removed again.
func (u *VaultUseCase) CommitUpload(ctx context.Context, userID uuid.UUID, req port.CommitUploadReq) (*port.CommitUploadResp, error) {
	if userID == uuid.Nil {
		return nil, vaultErr(domain.VaultMissingBearer, "", nil)
	}
	if req.CampaignID == uuid.Nil || req.Path == "" || strings.TrimSpace(req.FileName) == "" || req.MimeType == "" {
		return nil, vaultErr(domain.VaultBadRequest, "campaignId, path, fileName and mimeType are required", nil)
	}
	if !strings.HasPrefix(req.Path, req.CampaignID.String()+"/") || strings.Contains(req.Path, "..") {
		return nil, vaultErr(domain.VaultBadRequest, "path is outside the campaign vault", nil)
	}
	if err := u.authorize(ctx, userID, req.CampaignID); err != nil {
		return nil, err
	}
	if !allowedMime(req.MimeType) {
		return nil, vaultErr(domain.VaultMimeNotAllowed, req.MimeType, nil)
	}

	info, err := u.files.Stat(ctx, u.bucket, req.Path)
	if err != nil {
		return nil, vaultErr(domain.VaultStorageError, err.Error(), err)
	}
	if info == nil {
		return nil, vaultErr(domain.VaultNotFound, "object not found", nil)
	}
	if info.Size > u.limits.MaxFileBytes {
		u.discard(ctx, req.Path)
		return nil, u.tooLarge()
	}
	sub, stored, err := u.subscription(ctx, userID, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if info.Size > sub.Remaining() {
		u.discard(ctx, req.Path)
		return nil, vaultErr(domain.VaultQuotaExceeded, "", nil)
	}
	if !stored {
		if _, err = u.vault.UpsertSubscription(ctx, *sub); err != nil {
			return nil, vaultErr(domain.VaultDBError, err.Error(), err)
		}
	}

	file, err := u.vault.CommitFile(ctx, domain.VaultFileInsert{
		CampaignID:  req.CampaignID,
		OwnerUserID: userID,
		FileName:    req.FileName,
		FileType:    domain.FileTypeFromMime(req.MimeType),
		MimeType:    req.MimeType,
		SizeBytes:   info.Size,
		StoragePath: req.Path,
	})
	if errors.Is(err, domain.ErrQuotaExceeded) {
		u.discard(ctx, req.Path)
		return nil, vaultErr(domain.VaultQuotaExceeded, "", err)
	}
	if err != nil {
		u.logger.Error("commit vault file", slog.String("path", req.Path), slog.Any("error", err))
		return nil, vaultErr(domain.VaultDBError, err.Error(), err)
	}

	u.logger.Info("vault file committed", slog.String("file_id", file.ID.String()), slog.Int64("size", file.SizeBytes))
	publish(ctx, u.events, u.logger, port.EventVaultFileCommitted, req.CampaignID.String(), vaultFileEvent{
		FileID: file.ID, CampaignID: req.CampaignID, UserID: userID, SizeBytes: file.SizeBytes, Path: file.StoragePath,
	})
	return &port.CommitUploadResp{OK: true, FileID: file.ID, CreatedAt: file.CreatedAt.UTC().Format(time.RFC3339)}, nil
}

func (u *VaultUseCase) discard(ctx context.Context, objectPath string) {
	if err := u.files.Remove(ctx, u.bucket, objectPath); err != nil {
		u.logger.Warn("remove rejected vault object", slog.String("path", objectPath), slog.Any("error", err))
	}
}

// ListFiles returns one page of the campaign vault, newest first. Pages
// start at 1.
func (u *VaultUseCase) ListFiles(ctx context.Context, userID uuid.UUID, req port.ListFilesReq) (*domain.VaultPage, error) {
	if userID == uuid.Nil {
		return nil, vaultErr(domain.VaultMissingBearer, "", nil)
	}
	if req.CampaignID == uuid.Nil {
		return nil, vaultErr(domain.VaultBadRequest, "campaignId is required", nil)
	}
	if err := u.authorize(ctx, userID, req.CampaignID); err != nil {
		return nil, err
	}
	page, size := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = u.limits.DefaultPageSize
	}
	size = min(size, MaxVaultPageSize)

	items, total, err := u.vault.ListFiles(ctx, req.CampaignID, size, (page-1)*size)
	if err != nil {
		return nil, vaultErr(domain.VaultDBError, err.Error(), err)
	}
	if items == nil {
		items = []domain.VaultFile{}
	}
	return &domain.VaultPage{Items: items, Total: total, Page: page, PageSize: size}, nil
}

// ownedFile loads a file and checks the caller owns its campaign.
func (u *VaultUseCase) ownedFile(ctx context.Context, userID, fileID uuid.UUID) (*domain.VaultFile, error) {
	if userID == uuid.Nil {
		return nil, vaultErr(domain.VaultMissingBearer, "", nil)
	}
	if fileID == uuid.Nil {
		return nil, vaultErr(domain.VaultBadRequest, "fileId is required", nil)
	}
	file, err := u.vault.GetFile(ctx, fileID)
	if err != nil {
		return nil, vaultErr(domain.VaultDBError, err.Error(), err)
	}
	if file == nil {
		return nil, vaultErr(domain.VaultNotFound, "", nil)
	}
	if err = u.authorize(ctx, userID, file.CampaignID); err != nil {
		return nil, err
	}
	return file, nil
}

// DeleteFile removes the object first and then the record, releasing its
// bytes from the quota.
func (u *VaultUseCase) DeleteFile(ctx context.Context, userID uuid.UUID, req port.DeleteFileReq) error {
	file, err := u.ownedFile(ctx, userID, req.FileID)
	if err != nil {
		return err
	}
	if err = u.files.Remove(ctx, u.bucket, file.StoragePath); err != nil {
		u.logger.Error("remove vault object", slog.String("path", file.StoragePath), slog.Any("error", err))
		return vaultErr(domain.VaultStorageError, err.Error(), err)
	}
	if err = u.vault.DeleteFile(ctx, file.ID); err != nil {
		return vaultErr(domain.VaultDBError, err.Error(), err)
	}
	publish(ctx, u.events, u.logger, port.EventVaultFileDeleted, file.CampaignID.String(), vaultFileEvent{
		FileID: file.ID, CampaignID: file.CampaignID, UserID: userID, SizeBytes: file.SizeBytes, Path: file.StoragePath,
	})
	return nil
}

// DownloadURL returns a presigned GET URL for a file. ExpiresIn is in
// seconds; zero uses the default and larger values are capped.
func (u *VaultUseCase) DownloadURL(ctx context.Context, userID uuid.UUID, req port.DownloadURLReq) (*port.DownloadURLResp, error) {
	file, err := u.ownedFile(ctx, userID, req.FileID)
	if err != nil {
		return nil, err
	}
	expiry := u.limits.DownloadURLTTL
	if req.ExpiresIn > 0 {
		expiry = time.Duration(req.ExpiresIn) * time.Second
	}
	expiry = min(expiry, u.limits.MaxDownloadURLTTL)

	signed, err := u.files.PresignedGetURL(ctx, u.bucket, file.StoragePath, expiry)
	if err != nil {
		return nil, vaultErr(domain.VaultStorageError, err.Error(), err)
	}
	return &port.DownloadURLResp{URL: signed}, nil
}

type vaultPlanEvent struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	UserID     uuid.UUID `json:"user_id"`
	ProductID  string    `json:"product_id"`
	QuotaBytes int64     `json:"quota_bytes"`
}

// Subscription returns the vault plan of a campaign. With a product id it
// first applies the plan that product grants.
func (u *VaultUseCase) Subscription(ctx context.Context, userID uuid.UUID, req port.SubscriptionReq) (*domain.VaultSubscription, error) {
	if userID == uuid.Nil {
		return nil, vaultErr(domain.VaultMissingBearer, "", nil)
	}
	if req.CampaignID == uuid.Nil {
		return nil, vaultErr(domain.VaultBadRequest, "campaignId is required", nil)
	}
	if err := u.authorize(ctx, userID, req.CampaignID); err != nil {
		return nil, err
	}
	sub, _, err := u.subscription(ctx, userID, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if req.ProductID == "" {
		return sub, nil
	}

	product := domain.VaultProduct(req.ProductID)
	if !product.Valid() {
		return nil, vaultErr(domain.VaultBadRequest, "unknown product "+req.ProductID, nil)
	}
	sub.PlanType = product.Plan()
	sub.ProductID = &req.ProductID
	sub.StorageQuotaBytes = product.StorageBytes()
	updated, err := u.vault.UpsertSubscription(ctx, *sub)
	if err != nil {
		return nil, vaultErr(domain.VaultDBError, err.Error(), err)
	}
	u.logger.Info("vault plan synced", slog.String("campaign_id", req.CampaignID.String()), slog.String("product_id", req.ProductID))
	publish(ctx, u.events, u.logger, port.EventVaultPlanSubscribed, req.CampaignID.String(), vaultPlanEvent{
		CampaignID: req.CampaignID, UserID: userID, ProductID: req.ProductID, QuotaBytes: updated.StorageQuotaBytes,
	})
	return updated, nil
}
