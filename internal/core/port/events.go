package port

import "context"

const (
	EventCampaignCreated     = "campaign.created"
	EventKYCSubmitted        = "kyc.submitted"
	EventVaultFileCommitted  = "vault.file_committed"
	EventVaultFileDeleted    = "vault.file_deleted"
	EventVaultPlanSubscribed = "vault.plan_subscribed"
)

// EventPublisher emits domain events. Publishing is best effort: callers
// log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}
