package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lark/internal/core/domain"
	"lark/internal/core/port"
	"lark/internal/core/port/mocks"
)

var testLimits = VaultLimits{
	MaxFileBytes:      10 << 20,
	FreeQuotaBytes:    500 << 20,
	UploadURLTTL:      2 * time.Hour,
	DownloadURLTTL:    120 * time.Second,
	MaxDownloadURLTTL: time.Hour,
	DefaultPageSize:   20,
}

type vaultFixture struct {
	campaigns *mocks.MockCampaignStore
	vault     *mocks.MockVaultStore
	files     *mocks.MockObjectStorage
	events    *mocks.MockEventPublisher
	uc        *VaultUseCase
	owner     uuid.UUID
	campaign  uuid.UUID
}

func newVaultFixture(t *testing.T) *vaultFixture {
	f := &vaultFixture{
		campaigns: mocks.NewMockCampaignStore(t),
		vault:     mocks.NewMockVaultStore(t),
		files:     mocks.NewMockObjectStorage(t),
		events:    mocks.NewMockEventPublisher(t),
		owner:     uuid.New(),
		campaign:  uuid.New(),
	}
	f.uc = NewVaultUseCase(f.campaigns, f.vault, f.files, f.events, "vault", testLimits, discardLogger())
	return f
}

func (f *vaultFixture) ownsCampaign() {
	f.campaigns.EXPECT().GetCampaign(mock.Anything, f.campaign).
		Return(&domain.Campaign{ID: f.campaign, OwnerUserID: f.owner}, nil)
}

func vaultCode(t *testing.T, err error) domain.VaultErrorCode {
	t.Helper()
	var ve *domain.VaultError
	require.ErrorAs(t, err, &ve)
	return ve.Code
}

func TestVaultUploadURL(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	f.vault.EXPECT().GetSubscription(mock.Anything, f.owner, f.campaign).Return(nil, nil).Once()
	f.files.EXPECT().PresignedPutURL(mock.Anything, "vault", mock.Anything, 2*time.Hour).
		Return("http://files.local/vault/x?X-Amz-Signature=abc123&X-Amz-Expires=7200", nil).Once()

	signed, err := f.uc.UploadURL(context.Background(), f.owner, port.UploadURLReq{
		CampaignID: f.campaign, FileName: "informe médico.pdf", MimeType: "application/pdf", ExpectedBytes: 1 << 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "vault", signed.Bucket)
	assert.Equal(t, f.campaign.String(), signed.Dir)
	assert.True(t, strings.HasSuffix(signed.ObjectName, "_informe_médico.pdf"))
	assert.Equal(t, signed.Dir+"/"+signed.ObjectName, signed.Path)
	assert.Equal(t, "abc123", signed.Token)
	assert.Equal(t, 7200, signed.ExpiresIn)
}

func TestVaultUploadURL_Rejections(t *testing.T) {
	t.Run("missing caller", func(t *testing.T) {
		f := newVaultFixture(t)
		_, err := f.uc.UploadURL(context.Background(), uuid.Nil, port.UploadURLReq{CampaignID: f.campaign})
		assert.Equal(t, domain.VaultMissingBearer, vaultCode(t, err))
	})
	t.Run("bad request", func(t *testing.T) {
		f := newVaultFixture(t)
		_, err := f.uc.UploadURL(context.Background(), f.owner, port.UploadURLReq{CampaignID: f.campaign})
		assert.Equal(t, domain.VaultBadRequest, vaultCode(t, err))
	})
	t.Run("not the owner", func(t *testing.T) {
		f := newVaultFixture(t)
		f.campaigns.EXPECT().GetCampaign(mock.Anything, f.campaign).
			Return(&domain.Campaign{ID: f.campaign, OwnerUserID: uuid.New()}, nil).Once()
		_, err := f.uc.UploadURL(context.Background(), f.owner, port.UploadURLReq{
			CampaignID: f.campaign, FileName: "a.pdf", MimeType: "application/pdf",
		})
		assert.Equal(t, domain.VaultForbidden, vaultCode(t, err))
	})
	t.Run("mime not allowed", func(t *testing.T) {
		f := newVaultFixture(t)
		f.ownsCampaign()
		_, err := f.uc.UploadURL(context.Background(), f.owner, port.UploadURLReq{
			CampaignID: f.campaign, FileName: "a.exe", MimeType: "application/x-msdownload",
		})
		assert.Equal(t, domain.VaultMimeNotAllowed, vaultCode(t, err))
	})
	t.Run("file too large", func(t *testing.T) {
		f := newVaultFixture(t)
		f.ownsCampaign()
		_, err := f.uc.UploadURL(context.Background(), f.owner, port.UploadURLReq{
			CampaignID: f.campaign, FileName: "a.mp4", MimeType: "video/mp4", ExpectedBytes: testLimits.MaxFileBytes + 1,
		})
		var ve *domain.VaultError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, domain.VaultFileTooLarge, ve.Code)
		assert.Equal(t, testLimits.MaxFileBytes, ve.Max)
	})
	t.Run("quota exceeded", func(t *testing.T) {
		f := newVaultFixture(t)
		f.ownsCampaign()
		f.vault.EXPECT().GetSubscription(mock.Anything, f.owner, f.campaign).Return(&domain.VaultSubscription{
			PlanType: domain.PlanFree, StorageUsedBytes: testLimits.FreeQuotaBytes - 10, StorageQuotaBytes: testLimits.FreeQuotaBytes,
		}, nil).Once()
		_, err := f.uc.UploadURL(context.Background(), f.owner, port.UploadURLReq{
			CampaignID: f.campaign, FileName: "a.jpg", MimeType: "image/jpeg", ExpectedBytes: 11,
		})
		assert.Equal(t, domain.VaultQuotaExceeded, vaultCode(t, err))
	})
}

func TestVaultCommitUpload(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	objectPath := f.campaign.String() + "/abc_informe.pdf"
	fileID := uuid.New()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	f.files.EXPECT().Stat(mock.Anything, "vault", objectPath).Return(&port.ObjectInfo{Size: 2048, ContentType: "application/pdf"}, nil).Once()
	f.vault.EXPECT().GetSubscription(mock.Anything, f.owner, f.campaign).Return(nil, nil).Once()
	f.vault.EXPECT().UpsertSubscription(mock.Anything, mock.MatchedBy(func(s domain.VaultSubscription) bool {
		return s.PlanType == domain.PlanFree && s.StorageQuotaBytes == testLimits.FreeQuotaBytes
	})).RunAndReturn(func(_ context.Context, s domain.VaultSubscription) (*domain.VaultSubscription, error) {
		return &s, nil
	}).Once()
	f.vault.EXPECT().CommitFile(mock.Anything, domain.VaultFileInsert{
		CampaignID:  f.campaign,
		OwnerUserID: f.owner,
		FileName:    "informe.pdf",
		FileType:    domain.VaultPDF,
		MimeType:    "application/pdf",
		SizeBytes:   2048,
		StoragePath: objectPath,
	}).Return(&domain.VaultFile{ID: fileID, CampaignID: f.campaign, SizeBytes: 2048, StoragePath: objectPath, CreatedAt: created}, nil).Once()
	f.events.EXPECT().Publish(mock.Anything, port.EventVaultFileCommitted, mock.Anything, f.campaign.String()).Return(nil).Once()

	resp, err := f.uc.CommitUpload(context.Background(), f.owner, port.CommitUploadReq{
		CampaignID: f.campaign, Path: objectPath, FileName: "informe.pdf", MimeType: "application/pdf",
	})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, fileID, resp.FileID)
	assert.Equal(t, "2025-03-01T12:00:00Z", resp.CreatedAt)
}

func TestVaultCommitUpload_RemovesOversizedObject(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	objectPath := f.campaign.String() + "/big.mp4"

	f.files.EXPECT().Stat(mock.Anything, "vault", objectPath).Return(&port.ObjectInfo{Size: testLimits.MaxFileBytes + 1}, nil).Once()
	f.files.EXPECT().Remove(mock.Anything, "vault", objectPath).Return(nil).Once()

	_, err := f.uc.CommitUpload(context.Background(), f.owner, port.CommitUploadReq{
		CampaignID: f.campaign, Path: objectPath, FileName: "big.mp4", MimeType: "video/mp4",
	})
	assert.Equal(t, domain.VaultFileTooLarge, vaultCode(t, err))
}

func TestVaultCommitUpload_QuotaTakenByConcurrentCommit(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	objectPath := f.campaign.String() + "/ecografia.jpg"

	// The pre-check passes; another commit fills the quota before this one
	// charges it.
	f.files.EXPECT().Stat(mock.Anything, "vault", objectPath).Return(&port.ObjectInfo{Size: 60}, nil).Once()
	f.vault.EXPECT().GetSubscription(mock.Anything, f.owner, f.campaign).
		Return(&domain.VaultSubscription{StorageUsedBytes: 0, StorageQuotaBytes: 100}, nil).Once()
	f.vault.EXPECT().CommitFile(mock.Anything, mock.Anything).Return(nil, domain.ErrQuotaExceeded).Once()
	f.files.EXPECT().Remove(mock.Anything, "vault", objectPath).Return(nil).Once()

	_, err := f.uc.CommitUpload(context.Background(), f.owner, port.CommitUploadReq{
		CampaignID: f.campaign, Path: objectPath, FileName: "ecografia.jpg", MimeType: "image/jpeg",
	})
	assert.Equal(t, domain.VaultQuotaExceeded, vaultCode(t, err))
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestVaultCommitUpload_Rejections(t *testing.T) {
	t.Run("path outside vault", func(t *testing.T) {
		f := newVaultFixture(t)
		_, err := f.uc.CommitUpload(context.Background(), f.owner, port.CommitUploadReq{
			CampaignID: f.campaign, Path: uuid.NewString() + "/a.pdf", FileName: "a.pdf", MimeType: "application/pdf",
		})
		assert.Equal(t, domain.VaultBadRequest, vaultCode(t, err))
	})
	t.Run("object missing", func(t *testing.T) {
		f := newVaultFixture(t)
		f.ownsCampaign()
		objectPath := f.campaign.String() + "/a.pdf"
		f.files.EXPECT().Stat(mock.Anything, "vault", objectPath).Return(nil, nil).Once()
		_, err := f.uc.CommitUpload(context.Background(), f.owner, port.CommitUploadReq{
			CampaignID: f.campaign, Path: objectPath, FileName: "a.pdf", MimeType: "application/pdf",
		})
		assert.Equal(t, domain.VaultNotFound, vaultCode(t, err))
	})
	t.Run("db failure", func(t *testing.T) {
		f := newVaultFixture(t)
		f.ownsCampaign()
		objectPath := f.campaign.String() + "/a.pdf"
		f.files.EXPECT().Stat(mock.Anything, "vault", objectPath).Return(&port.ObjectInfo{Size: 1}, nil).Once()
		f.vault.EXPECT().GetSubscription(mock.Anything, f.owner, f.campaign).
			Return(&domain.VaultSubscription{StorageQuotaBytes: 100}, nil).Once()
		f.vault.EXPECT().CommitFile(mock.Anything, mock.Anything).Return(nil, errors.New("unique violation")).Once()
		_, err := f.uc.CommitUpload(context.Background(), f.owner, port.CommitUploadReq{
			CampaignID: f.campaign, Path: objectPath, FileName: "a.pdf", MimeType: "application/pdf",
		})
		var ve *domain.VaultError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, domain.VaultDBError, ve.Code)
		assert.Equal(t, "unique violation", ve.Details)
	})
}

func TestVaultListFiles_Paging(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	f.vault.EXPECT().ListFiles(mock.Anything, f.campaign, 20, 0).Return(nil, 0, nil).Once()
	f.vault.EXPECT().ListFiles(mock.Anything, f.campaign, MaxVaultPageSize, 2*MaxVaultPageSize).
		Return([]domain.VaultFile{{ID: uuid.New()}}, 201, nil).Once()

	page, err := f.uc.ListFiles(context.Background(), f.owner, port.ListFilesReq{CampaignID: f.campaign})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.NotNil(t, page.Items)

	page, err = f.uc.ListFiles(context.Background(), f.owner, port.ListFilesReq{CampaignID: f.campaign, Page: 3, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, MaxVaultPageSize, page.PageSize)
	assert.Equal(t, 201, page.Total)
	assert.Len(t, page.Items, 1)
}

func TestVaultDeleteFile(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	file := &domain.VaultFile{ID: uuid.New(), CampaignID: f.campaign, StoragePath: f.campaign.String() + "/a.pdf", SizeBytes: 10}

	f.vault.EXPECT().GetFile(mock.Anything, file.ID).Return(file, nil).Once()
	f.files.EXPECT().Remove(mock.Anything, "vault", file.StoragePath).Return(nil).Once()
	f.vault.EXPECT().DeleteFile(mock.Anything, file.ID).Return(nil).Once()
	f.events.EXPECT().Publish(mock.Anything, port.EventVaultFileDeleted, mock.Anything, f.campaign.String()).Return(nil).Once()

	require.NoError(t, f.uc.DeleteFile(context.Background(), f.owner, port.DeleteFileReq{FileID: file.ID}))
}

func TestVaultDeleteFile_StorageFailureKeepsRecord(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	file := &domain.VaultFile{ID: uuid.New(), CampaignID: f.campaign, StoragePath: f.campaign.String() + "/a.pdf"}

	f.vault.EXPECT().GetFile(mock.Anything, file.ID).Return(file, nil).Once()
	f.files.EXPECT().Remove(mock.Anything, "vault", file.StoragePath).Return(errors.New("access denied")).Once()

	err := f.uc.DeleteFile(context.Background(), f.owner, port.DeleteFileReq{FileID: file.ID})
	assert.Equal(t, domain.VaultStorageError, vaultCode(t, err))
	f.vault.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
}

func TestVaultDownloadURL(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	file := &domain.VaultFile{ID: uuid.New(), CampaignID: f.campaign, StoragePath: f.campaign.String() + "/a.pdf"}
	missing := uuid.New()

	f.vault.EXPECT().GetFile(mock.Anything, file.ID).Return(file, nil).Times(2)
	f.vault.EXPECT().GetFile(mock.Anything, missing).Return(nil, nil).Once()
	f.files.EXPECT().PresignedGetURL(mock.Anything, "vault", file.StoragePath, 120*time.Second).Return("http://files.local/a", nil).Once()
	f.files.EXPECT().PresignedGetURL(mock.Anything, "vault", file.StoragePath, time.Hour).Return("http://files.local/b", nil).Once()

	resp, err := f.uc.DownloadURL(context.Background(), f.owner, port.DownloadURLReq{FileID: file.ID})
	require.NoError(t, err)
	assert.Equal(t, "http://files.local/a", resp.URL)

	resp, err = f.uc.DownloadURL(context.Background(), f.owner, port.DownloadURLReq{FileID: file.ID, ExpiresIn: 86400})
	require.NoError(t, err)
	assert.Equal(t, "http://files.local/b", resp.URL)

	_, err = f.uc.DownloadURL(context.Background(), f.owner, port.DownloadURLReq{FileID: missing})
	assert.Equal(t, domain.VaultNotFound, vaultCode(t, err))
}

func TestVaultSubscription(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	f.vault.EXPECT().GetSubscription(mock.Anything, f.owner, f.campaign).Return(nil, nil).Times(2)
	f.vault.EXPECT().UpsertSubscription(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, s domain.VaultSubscription) (*domain.VaultSubscription, error) {
			return &s, nil
		}).Once()
	f.events.EXPECT().Publish(mock.Anything, port.EventVaultPlanSubscribed, mock.Anything, f.campaign.String()).Return(nil).Once()

	free, err := f.uc.Subscription(context.Background(), f.owner, port.SubscriptionReq{CampaignID: f.campaign})
	require.NoError(t, err)
	assert.Equal(t, domain.PlanFree, free.PlanType)
	assert.Equal(t, testLimits.FreeQuotaBytes, free.StorageQuotaBytes)

	pro, err := f.uc.Subscription(context.Background(), f.owner, port.SubscriptionReq{
		CampaignID: f.campaign, ProductID: string(domain.VaultProYearly),
	})
	require.NoError(t, err)
	assert.Equal(t, "pro", pro.PlanType)
	assert.Equal(t, int64(5<<30), pro.StorageQuotaBytes)
	require.NotNil(t, pro.ProductID)
	assert.Equal(t, string(domain.VaultProYearly), *pro.ProductID)
}

func TestVaultSubscription_UnknownProduct(t *testing.T) {
	f := newVaultFixture(t)
	f.ownsCampaign()
	f.vault.EXPECT().GetSubscription(mock.Anything, f.owner, f.campaign).Return(nil, nil).Once()

	_, err := f.uc.Subscription(context.Background(), f.owner, port.SubscriptionReq{CampaignID: f.campaign, ProductID: "cl.lark.vault.gold"})
	assert.Equal(t, domain.VaultBadRequest, vaultCode(t, err))
}
