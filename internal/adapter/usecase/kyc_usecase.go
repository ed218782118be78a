package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"lark/internal/core/domain"
	"lark/internal/core/port"
)

type KYCUseCase struct {
	users  port.UserStore
	files  port.ObjectStorage
	events port.EventPublisher
	bucket string
	logger *slog.Logger
}

func NewKYCUseCase(users port.UserStore, files port.ObjectStorage, events port.EventPublisher, bucket string, logger *slog.Logger) *KYCUseCase {
	return &KYCUseCase{users: users, files: files, events: events, bucket: bucket, logger: logger}
}

type kycSubmittedEvent struct {
	UserID    uuid.UUID         `json:"user_id"`
	Documents map[string]string `json:"documents"`
}

// SubmitKYC uploads the three identity images one after the other, records
// them for review and moves the user to kyc_review. progress, when not
// nil, receives the share of uploads done after each one.
func (u *KYCUseCase) SubmitKYC(ctx context.Context, userID uuid.UUID, sub domain.KYCSubmission, progress func(float64)) error {
	steps := []struct {
		docType  domain.KYCDocType
		upload   domain.DocumentUpload
		progress float64
	}{
		{domain.KYCDNIFront, sub.DNIFront, 0.33},
		{domain.KYCDNIBack, sub.DNIBack, 0.66},
		{domain.KYCSelfie, sub.Selfie, 1.0},
	}
	for _, s := range steps {
		if len(s.upload.Data) == 0 {
			return fmt.Errorf("%w: %s image is required", domain.ErrValidation, s.docType)
		}
		if s.upload.MimeType != "" && !s.upload.IsImage() {
			return fmt.Errorf("%w: %s must be an image", domain.ErrValidation, s.docType)
		}
	}

	user, err := u.users.GetUser(ctx, userID)
	if err != nil {
		return &domain.QueryError{Op: "user", Err: err}
	}
	if user == nil {
		return domain.ErrNotFound
	}

	paths := make(map[domain.KYCDocType]string, len(steps))
	for _, s := range steps {
		objectPath := fmt.Sprintf("%s/%s_%s_%s.jpg", userID, userID, s.docType, uuid.NewString())
		u.logger.Debug("uploading kyc image", slog.String("user_id", userID.String()), slog.String("doc_type", string(s.docType)))
		if err = u.files.Upload(ctx, u.bucket, objectPath, s.upload.Data, "image/jpeg"); err != nil {
			u.logger.Error("upload kyc image", slog.String("doc_type", string(s.docType)), slog.Any("error", err))
			return &domain.UploadError{FileName: string(s.docType), Err: err}
		}
		paths[s.docType] = objectPath
		if progress != nil {
			progress(s.progress)
		}
	}

	for _, s := range steps {
		_, err = u.users.CreateKYCDocument(ctx, domain.KYCDocumentInsert{
			UserID:      userID,
			DocType:     s.docType,
			StoragePath: paths[s.docType],
			Status:      domain.KYCDocInReview,
		})
		if err != nil {
			return domain.Classify(fmt.Errorf("record %s: %w", s.docType, err))
		}
	}
	if err = u.users.UpdateKYCStatus(ctx, userID, domain.KYCReview); err != nil {
		return domain.Classify(fmt.Errorf("update kyc status: %w", err))
	}

	u.logger.Info("kyc submitted", slog.String("user_id", userID.String()))
	docs := make(map[string]string, len(paths))
	for t, p := range paths {
		docs[string(t)] = p
	}
	publish(ctx, u.events, u.logger, port.EventKYCSubmitted, userID.String(), kycSubmittedEvent{UserID: userID, Documents: docs})
	return nil
}
