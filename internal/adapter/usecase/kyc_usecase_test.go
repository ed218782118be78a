package usecase

import (
	"context"
	"errors"
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

func kycSubmission() domain.KYCSubmission {
	return domain.KYCSubmission{DNIFront: jpeg("front.jpg"), DNIBack: jpeg("back.jpg"), Selfie: jpeg("selfie.jpg")}
}

func TestSubmitKYC(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	files := mocks.NewMockObjectStorage(t)
	events := mocks.NewMockEventPublisher(t)
	user := testUser("María", "maria@example.com")
	prefix := user.ID.String() + "/" + user.ID.String() + "_"

	var paths []string
	users.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil).Once()
	files.EXPECT().Upload(mock.Anything, "kyc-documents", mock.Anything, mock.Anything, "image/jpeg").
		RunAndReturn(func(_ context.Context, _, path string, _ []byte, _ string) error {
			paths = append(paths, path)
			return nil
		}).Times(3)
	var docs []domain.KYCDocumentInsert
	users.EXPECT().CreateKYCDocument(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in domain.KYCDocumentInsert) (*domain.KYCDocument, error) {
			docs = append(docs, in)
			return &domain.KYCDocument{ID: uuid.New(), UserID: in.UserID, DocType: in.DocType, Status: in.Status}, nil
		}).Times(3)
	users.EXPECT().UpdateKYCStatus(mock.Anything, user.ID, domain.KYCReview).Return(nil).Once()
	events.EXPECT().Publish(mock.Anything, port.EventKYCSubmitted, mock.Anything, user.ID.String()).Return(nil).Once()

	var progress []float64
	uc := NewKYCUseCase(users, files, events, "kyc-documents", discardLogger())
	err := uc.SubmitKYC(context.Background(), user.ID, kycSubmission(), func(p float64) { progress = append(progress, p) })
	require.NoError(t, err)

	assert.Equal(t, []float64{0.33, 0.66, 1.0}, progress)
	require.Len(t, paths, 3)
	for i, docType := range []string{"dni_front", "dni_back", "selfie"} {
		assert.True(t, strings.HasPrefix(paths[i], prefix+docType+"_"), paths[i])
		assert.True(t, strings.HasSuffix(paths[i], ".jpg"))
		assert.Equal(t, paths[i], docs[i].StoragePath)
		assert.Equal(t, domain.KYCDocInReview, docs[i].Status)
	}
}

func TestSubmitKYC_UploadFailureStopsBeforeRecords(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	files := mocks.NewMockObjectStorage(t)
	user := testUser("María", "maria@example.com")

	users.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil).Once()
	files.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	files.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("network")).Once()

	var progress []float64
	uc := NewKYCUseCase(users, files, nil, "kyc-documents", discardLogger())
	err := uc.SubmitKYC(context.Background(), user.ID, kycSubmission(), func(p float64) { progress = append(progress, p) })

	var upload *domain.UploadError
	require.ErrorAs(t, err, &upload)
	assert.Equal(t, "dni_back", upload.FileName)
	assert.Equal(t, []float64{0.33}, progress)
	users.AssertNotCalled(t, "CreateKYCDocument", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "UpdateKYCStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitKYC_Validation(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	uc := NewKYCUseCase(users, mocks.NewMockObjectStorage(t), nil, "kyc-documents", discardLogger())

	sub := kycSubmission()
	sub.Selfie = domain.DocumentUpload{}
	err := uc.SubmitKYC(context.Background(), uuid.New(), sub, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	sub = kycSubmission()
	sub.DNIBack.MimeType = "application/pdf"
	err = uc.SubmitKYC(context.Background(), uuid.New(), sub, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSubmitKYC_UnknownUser(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	id := uuid.New()
	users.EXPECT().GetUser(mock.Anything, id).Return(nil, nil).Once()

	uc := NewKYCUseCase(users, mocks.NewMockObjectStorage(t), nil, "kyc-documents", discardLogger())
	err := uc.SubmitKYC(context.Background(), id, kycSubmission(), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
