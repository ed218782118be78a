package httpadapter

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lark/internal/core/domain"
	"lark/internal/core/port"
)

func TestVaultFunctions_MissingCaller(t *testing.T) {
	f := newFixture(t, 0)
	for _, fn := range []string{
		"vault-upload-url", "vault-commit-upload", "vault-list",
		"vault-delete", "vault-download-url", "vault-subscription",
	} {
		t.Run(fn, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/functions/v1/"+fn, map[string]any{}, uuid.Nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "missing_bearer", decodeError(t, rec).Error)
		})
	}
}

func TestVaultUploadURL(t *testing.T) {
	f := newFixture(t, 0)
	user, cid := uuid.New(), uuid.New()
	req := port.UploadURLReq{CampaignID: cid, FileName: "informe.pdf", MimeType: "application/pdf", ExpectedBytes: 2048}
	f.vault.EXPECT().UploadURL(mock.Anything, user, req).Return(&domain.SignedUpload{
		Bucket:     "vault",
		Path:       cid.String() + "/x_informe.pdf",
		Dir:        cid.String(),
		ObjectName: "x_informe.pdf",
		UploadURL:  "http://localhost:9000/vault/x?X-Amz-Signature=abc",
		Token:      "abc",
		ExpiresIn:  7200,
	}, nil).Once()

	rec := f.do(http.MethodPost, "/functions/v1/vault-upload-url", req, user)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.SignedUpload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "abc", got.Token)
	assert.Equal(t, 7200, got.ExpiresIn)
}

func TestVaultErrors(t *testing.T) {
	user := uuid.New()
	tests := []struct {
		err    *domain.VaultError
		status int
	}{
		{&domain.VaultError{Code: domain.VaultBadRequest}, http.StatusBadRequest},
		{&domain.VaultError{Code: domain.VaultForbidden}, http.StatusForbidden},
		{&domain.VaultError{Code: domain.VaultNotFound}, http.StatusNotFound},
		{&domain.VaultError{Code: domain.VaultMimeNotAllowed}, http.StatusUnsupportedMediaType},
		{&domain.VaultError{Code: domain.VaultQuotaExceeded}, http.StatusRequestEntityTooLarge},
		{&domain.VaultError{Code: domain.VaultFileTooLarge, Max: 10 << 20}, http.StatusRequestEntityTooLarge},
		{&domain.VaultError{Code: domain.VaultStorageError}, http.StatusInternalServerError},
		{&domain.VaultError{Code: domain.VaultDBError}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			f := newFixture(t, 0)
			f.vault.EXPECT().DownloadURL(mock.Anything, user, mock.Anything).Return(nil, tt.err).Once()

			rec := f.do(http.MethodPost, "/functions/v1/vault-download-url", port.DownloadURLReq{FileID: uuid.New()}, user)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, string(tt.err.Code), body.Error)
			assert.Equal(t, tt.err.Max, body.Max)
		})
	}
}

func TestVaultDelete(t *testing.T) {
	f := newFixture(t, 0)
	user, file := uuid.New(), uuid.New()
	f.vault.EXPECT().DeleteFile(mock.Anything, user, port.DeleteFileReq{FileID: file}).Return(nil).Once()

	rec := f.do(http.MethodPost, "/functions/v1/vault-delete", port.DeleteFileReq{FileID: file}, user)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestVaultListAndSubscription(t *testing.T) {
	f := newFixture(t, 0)
	user, cid := uuid.New(), uuid.New()
	f.vault.EXPECT().ListFiles(mock.Anything, user, port.ListFilesReq{CampaignID: cid, Page: 2, PageSize: 5}).
		Return(&domain.VaultPage{Items: []domain.VaultFile{}, Total: 6, Page: 2, PageSize: 5}, nil).Once()
	f.vault.EXPECT().Subscription(mock.Anything, user, port.SubscriptionReq{CampaignID: cid, ProductID: string(domain.VaultProYearly)}).
		Return(&domain.VaultSubscription{PlanType: "pro", StorageQuotaBytes: 5 << 30}, nil).Once()

	rec := f.do(http.MethodPost, "/functions/v1/vault-list", port.ListFilesReq{CampaignID: cid, Page: 2, PageSize: 5}, user)
	require.Equal(t, http.StatusOK, rec.Code)
	var page domain.VaultPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, 6, page.Total)

	rec = f.do(http.MethodPost, "/functions/v1/vault-subscription",
		port.SubscriptionReq{CampaignID: cid, ProductID: string(domain.VaultProYearly)}, user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"pro"`, string(mustField(t, rec.Body.Bytes(), "plan_type")))
}

func TestVaultCommit_InvalidJSON(t *testing.T) {
	f := newFixture(t, 0)
	rec := f.do(http.MethodPost, "/functions/v1/vault-commit-upload", "not json", uuid.New())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Error)
}
