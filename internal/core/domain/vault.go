package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VaultFileType is the coarse kind of a vault file, inferred from its MIME
// type.
type VaultFileType string

const (
	VaultImage    VaultFileType = "image"
	VaultPDF      VaultFileType = "pdf"
	VaultVideo    VaultFileType = "video"
	VaultAudio    VaultFileType = "audio"
	VaultDocument VaultFileType = "document"
	VaultOther    VaultFileType = "other"
)

// FileTypeFromMime maps a MIME type to a VaultFileType.
func FileTypeFromMime(mime string) VaultFileType {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return VaultImage
	case mime == "application/pdf":
		return VaultPDF
	case strings.HasPrefix(mime, "video/"):
		return VaultVideo
	case strings.HasPrefix(mime, "audio/"):
		return VaultAudio
	case strings.HasPrefix(mime, "application/"), mime == "text/plain":
		return VaultDocument
	}
	return VaultOther
}

// VaultFile is a committed file in a campaign vault.
type VaultFile struct {
	ID          uuid.UUID     `json:"id"`
	CampaignID  uuid.UUID     `json:"campaign_id"`
	OwnerUserID uuid.UUID     `json:"owner_user_id"`
	FileName    string        `json:"file_name"`
	FileType    VaultFileType `json:"file_type"`
	MimeType    string        `json:"mime_type"`
	SizeBytes   int64         `json:"file_size_bytes"`
	StoragePath string        `json:"storage_path"`
	CreatedAt   time.Time     `json:"created_at"`
}

type VaultFileInsert struct {
	CampaignID  uuid.UUID
	OwnerUserID uuid.UUID
	FileName    string
	FileType    VaultFileType
	MimeType    string
	SizeBytes   int64
	StoragePath string
}

// VaultPage is one page of a vault listing.
type VaultPage struct {
	Items    []VaultFile `json:"items"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

const PlanFree = "free"

// VaultSubscription tracks the storage plan of one campaign vault.
type VaultSubscription struct {
	UserID            uuid.UUID `json:"user_id"`
	CampaignID        uuid.UUID `json:"campaign_id"`
	PlanType          string    `json:"plan_type"`
	ProductID         *string   `json:"product_id,omitempty"`
	StorageUsedBytes  int64     `json:"storage_used_bytes"`
	StorageQuotaBytes int64     `json:"storage_quota_bytes"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Remaining returns the bytes still available, never below zero.
func (s VaultSubscription) Remaining() int64 {
	if s.StorageUsedBytes >= s.StorageQuotaBytes {
		return 0
	}
	return s.StorageQuotaBytes - s.StorageUsedBytes
}

// VaultProduct is a purchasable vault plan.
type VaultProduct string

const (
	VaultProMonthly VaultProduct = "cl.lark.vault.pro.monthly"
	VaultProYearly  VaultProduct = "cl.lark.vault.pro.yearly"
)

func (p VaultProduct) Valid() bool {
	return p == VaultProMonthly || p == VaultProYearly
}

// Plan returns the plan name stored on the subscription.
func (p VaultProduct) Plan() string {
	return "pro"
}

// StorageBytes is the quota granted by the product.
func (p VaultProduct) StorageBytes() int64 {
	return 5 * 1024 * 1024 * 1024
}

// SignedUpload describes where a client must PUT a vault file.
type SignedUpload struct {
	Bucket     string `json:"bucket"`
	Path       string `json:"path"`
	Dir        string `json:"dir"`
	ObjectName string `json:"objectName"`
	UploadURL  string `json:"uploadUrl"`
	Token      string `json:"token"`
	ExpiresIn  int    `json:"expiresIn"`
}

// VaultErrorCode is the machine readable reason of a vault failure. The
// values are part of the function response contract.
type VaultErrorCode string

const (
	VaultMissingBearer  VaultErrorCode = "missing_bearer"
	VaultBadRequest     VaultErrorCode = "bad_request"
	VaultForbidden      VaultErrorCode = "campaign_forbidden"
	VaultNotFound       VaultErrorCode = "not_found"
	VaultMimeNotAllowed VaultErrorCode = "mime_not_allowed"
	VaultQuotaExceeded  VaultErrorCode = "quota_exceeded"
	VaultFileTooLarge   VaultErrorCode = "file_too_large"
	VaultStorageError   VaultErrorCode = "storage_error"
	VaultDBError        VaultErrorCode = "db_error"
)

// VaultError is returned by every vault operation that fails.
type VaultError struct {
	Code    VaultErrorCode
	Details string
	Max     int64
	Err     error
}

func (e *VaultError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("vault: %s: %s", e.Code, e.Details)
	}
	return "vault: " + string(e.Code)
}

func (e *VaultError) Unwrap() error {
	return e.Err
}
