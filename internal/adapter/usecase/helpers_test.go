package usecase

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"lark/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type invalidationSpy struct {
	mu    sync.Mutex
	kinds []domain.CacheKind
}

func (s *invalidationSpy) Invalidate(kind domain.CacheKind) {
	s.mu.Lock()
	s.kinds = append(s.kinds, kind)
	s.mu.Unlock()
}

func (s *invalidationSpy) Calls() []domain.CacheKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CacheKind(nil), s.kinds...)
}

func testUser(name, email string) *domain.User {
	return &domain.User{ID: uuid.New(), DisplayName: name, Email: email, KYCStatus: domain.KYCVerified, DefaultCurrency: "CLP"}
}

func jpeg(name string) domain.DocumentUpload {
	return domain.DocumentUpload{Data: []byte("\xff\xd8\xff" + name), FileName: name, MimeType: "image/jpeg"}
}

func percentDraft(u *domain.User, share float64) domain.BeneficiaryDraft {
	return domain.BeneficiaryDraft{Email: u.Email, User: u, ShareType: domain.SharePercent, ShareValue: share}
}
