package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"lark/internal/core/allocation"
	"lark/internal/core/domain"
	"lark/internal/core/port"
)

// Buckets names the object storage buckets used by campaign creation.
type Buckets struct {
	Images    string
	Documents string
}

type cacheInvalidator interface {
	Invalidate(kind domain.CacheKind)
}

// CampaignCreator runs the campaign creation workflow: validation, conflict
// detection, then an ordered pipeline of writes. The pipeline is not
// transactional. When a step fails, everything written by earlier steps
// stays persisted and is reported in a *domain.IncompleteCreationError.
type CampaignCreator struct {
	store     port.CampaignStore
	files     port.ObjectStorage
	checker   *allocation.Checker
	campaigns cacheInvalidator
	events    port.EventPublisher
	buckets   Buckets
	logger    *slog.Logger
}

func NewCampaignCreator(
	store port.CampaignStore,
	files port.ObjectStorage,
	campaigns cacheInvalidator,
	events port.EventPublisher,
	buckets Buckets,
	logger *slog.Logger,
) *CampaignCreator {
	return &CampaignCreator{
		store:     store,
		files:     files,
		checker:   allocation.NewChecker(store),
		campaigns: campaigns,
		events:    events,
		buckets:   buckets,
		logger:    logger,
	}
}

// creationRun is the state of one CreateCampaign call.
type creationRun struct {
	req           domain.CreateCampaignRequest
	campaign      *domain.Campaign
	beneficiaries []domain.CampaignBeneficiary
	progress      domain.CreationProgress
}

type creationStep struct {
	name string
	run  func(ctx context.Context) error
}

// CreateCampaign validates req and creates the campaign with its images,
// diagnosis documents, beneficiaries and their documents, one write at a
// time. No write happens unless the shares are valid and no beneficiary is
// active in another campaign.
//
// Once the first write starts the run ignores cancellation of ctx and goes
// on until it completes or a step fails.
func (c *CampaignCreator) CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !allocation.ValidateShares(req.Beneficiaries) {
		return nil, fmt.Errorf("%w: percent shares must add up to 100", domain.ErrValidation)
	}

	conflicts, err := c.checker.CheckConflicts(ctx, req.BeneficiaryIDs())
	if err != nil {
		return nil, err
	}
	if err = allocation.ConflictError(conflicts); err != nil {
		c.logger.Info("campaign creation rejected", slog.Int("conflicts", len(conflicts)))
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	run := &creationRun{req: req}
	for _, step := range c.pipeline(run) {
		c.logger.Debug("campaign creation step", slog.String("step", step.name))
		if err = step.run(ctx); err != nil {
			err = domain.Classify(err)
			c.logger.Error("campaign creation failed",
				slog.String("step", step.name), slog.Any("error", err))
			if run.campaign == nil {
				return nil, err
			}
			// The campaign row exists, so cached lists are stale either way.
			c.campaigns.Invalidate(domain.CacheCampaigns)
			return nil, &domain.IncompleteCreationError{Step: step.name, Progress: run.progress, Err: err}
		}
		run.progress.CompletedSteps = append(run.progress.CompletedSteps, step.name)
	}

	c.logger.Info("campaign created",
		slog.String("campaign_id", run.campaign.ID.String()),
		slog.Int("images", len(run.progress.ImageIDs)),
		slog.Int("beneficiaries", len(run.progress.BeneficiaryIDs)))
	publish(ctx, c.events, c.logger, port.EventCampaignCreated, run.campaign.ID.String(), campaignCreatedEvent{
		CampaignID:     run.campaign.ID,
		OwnerUserID:    run.campaign.OwnerUserID,
		Title:          run.campaign.Title,
		BeneficiaryIDs: req.BeneficiaryIDs(),
		Images:         len(run.progress.ImageIDs),
	})
	return run.campaign, nil
}

type campaignCreatedEvent struct {
	CampaignID     uuid.UUID   `json:"campaign_id"`
	OwnerUserID    uuid.UUID   `json:"owner_user_id"`
	Title          string      `json:"title"`
	BeneficiaryIDs []uuid.UUID `json:"beneficiary_ids"`
	Images         int         `json:"images"`
}

// pipeline lists the writes of run in execution order. Display order and
// priority follow the position of each item in the request.
func (c *CampaignCreator) pipeline(run *creationRun) []creationStep {
	req := run.req
	steps := []creationStep{{
		name: "create-campaign-record",
		run:  func(ctx context.Context) error { return c.createRecord(ctx, run) },
	}}
	for i, img := range req.CampaignImages {
		i, img := i, img
		steps = append(steps, creationStep{
			name: fmt.Sprintf("upload-campaign-image[%d]", i),
			run:  func(ctx context.Context) error { return c.addImage(ctx, run, i, img) },
		})
	}
	if req.HasDiagnosis {
		for i, doc := range req.DiagnosisImages {
			i, doc := i, doc
			steps = append(steps, creationStep{
				name: fmt.Sprintf("upload-diagnosis-image[%d]", i),
				run:  func(ctx context.Context) error { return c.addDiagnosis(ctx, run, i, doc) },
			})
		}
	}
	for i, draft := range req.Beneficiaries {
		i, draft := i, draft
		steps = append(steps, creationStep{
			name: fmt.Sprintf("create-beneficiary[%d]", i),
			run:  func(ctx context.Context) error { return c.addBeneficiary(ctx, run, i, draft) },
		})
		for j, doc := range draft.RelationshipDocs {
			j, doc := j, doc
			steps = append(steps, creationStep{
				name: fmt.Sprintf("upload-beneficiary-document[%d.%d]", i, j),
				run:  func(ctx context.Context) error { return c.addRelationshipDoc(ctx, run, i, j, doc) },
			})
		}
	}
	return append(steps, creationStep{
		name: "invalidate-cache",
		run: func(context.Context) error {
			c.campaigns.Invalidate(domain.CacheCampaigns)
			return nil
		},
	})
}

func (c *CampaignCreator) createRecord(ctx context.Context, run *creationRun) error {
	req := run.req
	campaign, err := c.store.CreateCampaign(ctx, domain.CampaignInsert{
		OwnerUserID:     req.OwnerUserID,
		Title:           req.Title,
		Description:     req.Description,
		GoalAmount:      req.GoalAmount,
		SoftCap:         req.SoftCap,
		HardCap:         req.HardCap,
		Currency:        req.Currency,
		Status:          domain.CampaignDraft,
		Visibility:      req.Visibility,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		BeneficiaryRule: req.BeneficiaryRule,
		HasDiagnosis:    req.HasDiagnosis,
	})
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	run.campaign = campaign
	run.progress.CampaignID = campaign.ID
	return nil
}

func (c *CampaignCreator) upload(ctx context.Context, bucket, objectPath string, doc domain.DocumentUpload) error {
	if err := c.files.Upload(ctx, bucket, objectPath, doc.Data, doc.MimeType); err != nil {
		return &domain.UploadError{FileName: doc.FileName, Err: err}
	}
	return nil
}

func (c *CampaignCreator) addImage(ctx context.Context, run *creationRun, index int, img domain.DocumentUpload) error {
	objectPath := campaignImagePath(run.campaign.ID, index, img.FileName)
	if err := c.upload(ctx, c.buckets.Images, objectPath, img); err != nil {
		return err
	}
	rec, err := c.store.CreateCampaignImage(ctx, domain.CampaignImageInsert{
		UserID:       run.req.OwnerUserID,
		CampaignID:   run.campaign.ID,
		ImageURL:     c.files.PublicURL(c.buckets.Images, objectPath),
		DisplayOrder: index,
		IsPrimary:    index == 0,
	})
	if err != nil {
		return fmt.Errorf("link image %s: %w", img.FileName, err)
	}
	run.progress.ImageIDs = append(run.progress.ImageIDs, rec.ID)
	return nil
}

func (c *CampaignCreator) addDiagnosis(ctx context.Context, run *creationRun, index int, doc domain.DocumentUpload) error {
	objectPath := diagnosisPath(run.campaign.ID, index, doc.FileName)
	if err := c.upload(ctx, c.buckets.Documents, objectPath, doc); err != nil {
		return err
	}
	rec, err := c.store.CreateDocument(ctx, domain.CampaignDocumentInsert{
		CampaignID:  run.campaign.ID,
		Kind:        domain.DocumentDiagnosis,
		FileName:    doc.FileName,
		MimeType:    doc.MimeType,
		StoragePath: objectPath,
	})
	if err != nil {
		return fmt.Errorf("record diagnosis %s: %w", doc.FileName, err)
	}
	run.progress.DocumentIDs = append(run.progress.DocumentIDs, rec.ID)
	return nil
}

func (c *CampaignCreator) addBeneficiary(ctx context.Context, run *creationRun, index int, draft domain.BeneficiaryDraft) error {
	priority := index + 1
	if draft.Priority != nil {
		priority = *draft.Priority
	}
	rec, err := c.store.CreateBeneficiary(ctx, domain.CampaignBeneficiaryInsert{
		CampaignID:        run.campaign.ID,
		BeneficiaryUserID: draft.User.ID,
		ShareType:         draft.ShareType,
		ShareValue:        draft.ShareValue,
		Priority:          &priority,
		IsActive:          true,
	})
	if err != nil {
		return fmt.Errorf("create beneficiary %s: %w", draft.User.DisplayName, err)
	}
	run.beneficiaries = append(run.beneficiaries, *rec)
	run.progress.BeneficiaryIDs = append(run.progress.BeneficiaryIDs, rec.ID)
	return nil
}

func (c *CampaignCreator) addRelationshipDoc(ctx context.Context, run *creationRun, beneficiary, index int, doc domain.DocumentUpload) error {
	rec := run.beneficiaries[beneficiary]
	objectPath := relationshipDocPath(run.campaign.ID, rec.BeneficiaryUserID, index, doc.FileName)
	if err := c.upload(ctx, c.buckets.Documents, objectPath, doc); err != nil {
		return err
	}
	stored, err := c.store.CreateDocument(ctx, domain.CampaignDocumentInsert{
		CampaignID:    run.campaign.ID,
		BeneficiaryID: &rec.ID,
		Kind:          domain.DocumentRelationship,
		FileName:      doc.FileName,
		MimeType:      doc.MimeType,
		StoragePath:   objectPath,
	})
	if err != nil {
		return fmt.Errorf("record document %s: %w", doc.FileName, err)
	}
	run.progress.DocumentIDs = append(run.progress.DocumentIDs, stored.ID)
	return nil
}
