package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lark/internal/core/domain"
	"lark/internal/core/port"
	"lark/internal/core/port/mocks"
)

type fixture struct {
	campaigns *mocks.MockCampaignReader
	creator   *mocks.MockCampaignCreator
	conflicts *mocks.MockConflictChecker
	users     *mocks.MockUserUseCase
	home      *mocks.MockHomeUseCase
	donations *mocks.MockDonationUseCase
	kyc       *mocks.MockKYCUseCase
	vault     *mocks.MockVaultUseCase
	handler   http.Handler
}

func newFixture(t *testing.T, maxBody int64) *fixture {
	f := &fixture{
		campaigns: mocks.NewMockCampaignReader(t),
		creator:   mocks.NewMockCampaignCreator(t),
		conflicts: mocks.NewMockConflictChecker(t),
		users:     mocks.NewMockUserUseCase(t),
		home:      mocks.NewMockHomeUseCase(t),
		donations: mocks.NewMockDonationUseCase(t),
		kyc:       mocks.NewMockKYCUseCase(t),
		vault:     mocks.NewMockVaultUseCase(t),
	}
	f.handler = NewHandler(Services{
		Campaigns: f.campaigns,
		Creator:   f.creator,
		Conflicts: f.conflicts,
		Users:     f.users,
		Home:      f.home,
		Donations: f.donations,
		KYC:       f.kyc,
		Vault:     f.vault,
	}, maxBody, slog.New(slog.NewTextHandler(io.Discard, nil))).Router()
	return f
}

func (f *fixture) do(method, target string, body any, userID uuid.UUID) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != uuid.Nil {
		req.Header.Set(CallerHeader, userID.String())
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestSearchUsers(t *testing.T) {
	f := newFixture(t, 0)
	ana := domain.User{ID: uuid.New(), DisplayName: "Ana Pérez", Email: "ana@lark.cl"}
	f.users.EXPECT().SearchUsers(mock.Anything, "ana").Return([]domain.User{ana}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/users/search?email=ana", nil, uuid.Nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, ana.ID, got[0].ID)
}

func TestGetUser(t *testing.T) {
	f := newFixture(t, 0)
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		f.users.EXPECT().GetUser(mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
		rec := f.do(http.MethodGet, "/api/v1/users/"+id.String(), nil, uuid.Nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decodeError(t, rec).Error)
	})

	t.Run("query failure", func(t *testing.T) {
		f.users.EXPECT().GetUser(mock.Anything, id).Return(nil, &domain.QueryError{Op: "user", Err: errors.New("timeout")}).Once()
		rec := f.do(http.MethodGet, "/api/v1/users/"+id.String(), nil, uuid.Nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "query_failed", decodeError(t, rec).Error)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/users/not-a-uuid", nil, uuid.Nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHome(t *testing.T) {
	f := newFixture(t, 0)
	id := uuid.New()
	target := "/api/v1/users/" + id.String() + "/home"

	t.Run("own home", func(t *testing.T) {
		f.home.EXPECT().Home(mock.Anything, id).Return(&port.Home{
			User:      &domain.User{ID: id},
			Donations: []domain.Donation{},
		}, nil).Once()

		rec := f.do(http.MethodGet, target, nil, id)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(mustField(t, rec.Body.Bytes(), "donations")))
	})

	t.Run("someone else", func(t *testing.T) {
		rec := f.do(http.MethodGet, target, nil, uuid.New())
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "forbidden", decodeError(t, rec).Error)
	})

	t.Run("anonymous", func(t *testing.T) {
		rec := f.do(http.MethodGet, target, nil, uuid.Nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing_bearer", decodeError(t, rec).Error)
	})
}

func mustField(t *testing.T, data []byte, field string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	raw, ok := m[field]
	require.True(t, ok, "missing field %s", field)
	return raw
}

func TestOwnCampaigns(t *testing.T) {
	f := newFixture(t, 0)
	id := uuid.New()
	target := "/api/v1/users/" + id.String() + "/campaigns"

	t.Run("empty is array", func(t *testing.T) {
		f.campaigns.EXPECT().OwnCampaigns(mock.Anything, id).Return(nil, nil).Once()

		rec := f.do(http.MethodGet, target, nil, id)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("someone else", func(t *testing.T) {
		rec := f.do(http.MethodGet, target, nil, uuid.New())
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		rec := f.do(http.MethodGet, target, nil, uuid.Nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing_bearer", decodeError(t, rec).Error)
	})
}

func TestSubmitKYC(t *testing.T) {
	f := newFixture(t, 0)
	id := uuid.New()
	sub := domain.KYCSubmission{
		DNIFront: domain.DocumentUpload{Data: []byte{1}, FileName: "front.jpg", MimeType: "image/jpeg"},
		DNIBack:  domain.DocumentUpload{Data: []byte{2}, FileName: "back.jpg", MimeType: "image/jpeg"},
		Selfie:   domain.DocumentUpload{Data: []byte{3}, FileName: "selfie.jpg", MimeType: "image/jpeg"},
	}

	t.Run("own documents", func(t *testing.T) {
		f.kyc.EXPECT().SubmitKYC(mock.Anything, id, sub, mock.Anything).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, _ domain.KYCSubmission, progress func(float64)) error {
				progress(1)
				return nil
			}).Once()
		rec := f.do(http.MethodPost, "/api/v1/users/"+id.String()+"/kyc", sub, id)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("someone else", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/users/"+id.String()+"/kyc", sub, uuid.New())
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/users/"+id.String()+"/kyc", sub, uuid.Nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing_bearer", decodeError(t, rec).Error)
	})

	t.Run("upload failure", func(t *testing.T) {
		f.kyc.EXPECT().SubmitKYC(mock.Anything, id, sub, mock.Anything).
			Return(&domain.UploadError{FileName: "selfie", Err: errors.New("503")}).Once()
		rec := f.do(http.MethodPost, "/api/v1/users/"+id.String()+"/kyc", sub, id)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "selfie", decodeError(t, rec).Details)
	})
}

func TestCreateCampaign(t *testing.T) {
	owner := uuid.New()
	body := map[string]any{"title": "Ayuda para María", "beneficiaries": []any{}}

	t.Run("owner defaults to caller", func(t *testing.T) {
		f := newFixture(t, 0)
		created := &domain.Campaign{ID: uuid.New(), OwnerUserID: owner, Title: "Ayuda para María"}
		f.creator.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(req domain.CreateCampaignRequest) bool {
			return req.OwnerUserID == owner && req.Title == "Ayuda para María"
		})).Return(created, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/campaigns", body, owner)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Campaign
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("owner must be caller", func(t *testing.T) {
		f := newFixture(t, 0)
		other := map[string]any{"title": "x", "owner_user_id": uuid.New()}
		rec := f.do(http.MethodPost, "/api/v1/campaigns", other, owner)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		f := newFixture(t, 0)
		rec := f.do(http.MethodPost, "/api/v1/campaigns", "{", owner)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		f := newFixture(t, 16)
		rec := f.do(http.MethodPost, "/api/v1/campaigns", body, owner)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, int64(16), decodeError(t, rec).Max)
	})

	errs := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", fmt.Errorf("%w: title is required", domain.ErrValidation), http.StatusBadRequest, "validation"},
		{"conflict", &domain.BeneficiaryConflictError{Conflict: domain.BeneficiaryConflict{BeneficiaryName: "Pedro Díaz", CampaignTitle: "Operación Rodilla"}}, http.StatusConflict, "beneficiary_conflict"},
		{"upload", &domain.UploadError{FileName: "b.jpg", Err: errors.New("reset")}, http.StatusBadGateway, "upload_failed"},
		{"backend", &domain.BackendError{Err: errors.New("duplicate key")}, http.StatusBadGateway, "backend_error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range errs {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)
			f.creator.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			rec := f.do(http.MethodPost, "/api/v1/campaigns", body, owner)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Error)
		})
	}

	t.Run("incomplete creation carries progress", func(t *testing.T) {
		f := newFixture(t, 0)
		cid := uuid.New()
		f.creator.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil, &domain.IncompleteCreationError{
			Step:     "upload-campaign-image[1]",
			Progress: domain.CreationProgress{CampaignID: cid, CompletedSteps: []string{"create-campaign-record"}},
			Err:      &domain.UploadError{FileName: "b.jpg", Err: errors.New("reset")},
		}).Once()

		rec := f.do(http.MethodPost, "/api/v1/campaigns", body, owner)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		got := decodeError(t, rec)
		assert.Equal(t, "incomplete_creation", got.Error)
		require.NotNil(t, got.Progress)
		assert.Equal(t, cid, got.Progress.CampaignID)
	})

	t.Run("several conflicts", func(t *testing.T) {
		f := newFixture(t, 0)
		f.creator.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil, &domain.BeneficiaryConflictsError{
			Conflicts: []domain.BeneficiaryConflict{{BeneficiaryName: "A"}, {BeneficiaryName: "B"}},
		}).Once()
		rec := f.do(http.MethodPost, "/api/v1/campaigns", body, owner)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Len(t, decodeError(t, rec).Conflicts, 2)
	})
}

func TestCampaignImagesAndDonations(t *testing.T) {
	f := newFixture(t, 0)
	cid := uuid.New()
	f.campaigns.EXPECT().CampaignImages(mock.Anything, cid).Return([]domain.CampaignImage{{CampaignID: cid, DisplayOrder: 0, IsPrimary: true}}, nil).Once()
	f.donations.EXPECT().CampaignDonations(mock.Anything, cid).Return([]domain.Donation{}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/campaigns/"+cid.String()+"/images", nil, uuid.Nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var images []domain.CampaignImage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&images))
	assert.True(t, images[0].IsPrimary)

	rec = f.do(http.MethodGet, "/api/v1/campaigns/"+cid.String()+"/donations", nil, uuid.Nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCheckConflicts(t *testing.T) {
	f := newFixture(t, 0)
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	f.conflicts.EXPECT().CheckConflicts(mock.Anything, ids).Return([]domain.BeneficiaryConflict{
		{BeneficiaryName: "Pedro Díaz", BeneficiaryID: ids[1], CampaignTitle: "Operación Rodilla"},
	}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/beneficiaries/conflicts", conflictsReq{UserIDs: ids}, uuid.Nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got conflictsResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got.Conflicts, 1)
	assert.Equal(t, ids[1], got.Conflicts[0].BeneficiaryID)
}

func TestInvalidateCache(t *testing.T) {
	f := newFixture(t, 0)
	f.campaigns.EXPECT().Invalidate(domain.CacheImages).Return().Once()
	f.campaigns.EXPECT().ForceReload().Return().Once()

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodPost, "/api/v1/cache/invalidate?kind=images", nil, uuid.Nil).Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodPost, "/api/v1/cache/invalidate?kind=all", nil, uuid.Nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/v1/cache/invalidate?kind=users", nil, uuid.Nil).Code)
}
