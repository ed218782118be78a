package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lark/internal/core/port"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Campaigns port.CampaignReader
	Creator   port.CampaignCreator
	Conflicts port.ConflictChecker
	Users     port.UserUseCase
	Home      port.HomeUseCase
	Donations port.DonationUseCase
	KYC       port.KYCUseCase
	Vault     port.VaultUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router. Owner scoped endpoints read
// the caller from the X-User-ID header set by the gateway in front of the
// service.
type Handler struct {
	svc          Services
	maxBodyBytes int64
	logger       *slog.Logger
	router       chi.Router
}

// NewHandler creates a handler with all routes configured. Request bodies
// larger than maxBodyBytes are rejected; zero disables the limit.
func NewHandler(svc Services, maxBodyBytes int64, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, maxBodyBytes: maxBodyBytes, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.limitBody)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users/search", h.handleSearchUsers)
		r.Get("/users/{userID}", h.handleGetUser)
		r.Get("/users/{userID}/home", h.handleHome)
		r.Get("/users/{userID}/campaigns", h.handleOwnCampaigns)
		r.Post("/users/{userID}/kyc", h.handleSubmitKYC)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{campaignID}/images", h.handleCampaignImages)
		r.Get("/campaigns/{campaignID}/donations", h.handleCampaignDonations)

		r.Post("/beneficiaries/conflicts", h.handleCheckConflicts)
		r.Post("/cache/invalidate", h.handleInvalidateCache)
	})

	r.Route("/functions/v1", func(r chi.Router) {
		r.Post("/vault-upload-url", vaultFunction(h, h.svc.Vault.UploadURL))
		r.Post("/vault-commit-upload", vaultFunction(h, h.svc.Vault.CommitUpload))
		r.Post("/vault-list", vaultFunction(h, h.svc.Vault.ListFiles))
		r.Post("/vault-delete", vaultFunction(h, okOnly(h.svc.Vault.DeleteFile)))
		r.Post("/vault-download-url", vaultFunction(h, h.svc.Vault.DownloadURL))
		r.Post("/vault-subscription", vaultFunction(h, h.svc.Vault.Subscription))
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxBodyBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
