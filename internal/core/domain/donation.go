package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	DonationInitiated  DonationStatus = "initiated"
	DonationAuthorized DonationStatus = "authorized"
	DonationPaid       DonationStatus = "paid"
	DonationRefunded   DonationStatus = "refunded"
	DonationChargeback DonationStatus = "chargeback"
	DonationFailed     DonationStatus = "failed"
	DonationCancelled  DonationStatus = "cancelled"
)

type PaymentProvider string

const (
	ProviderMercadoPago PaymentProvider = "mercado_pago"
	ProviderStripe      PaymentProvider = "stripe"
	ProviderManual      PaymentProvider = "manual"
)

// Donation is a contribution to a campaign. Amounts use decimal to keep
// currency values exact.
type Donation struct {
	ID                       uuid.UUID        `json:"id"`
	CampaignID               uuid.UUID        `json:"campaign_id"`
	DonorUserID              *uuid.UUID       `json:"donor_user_id,omitempty"`
	Amount                   decimal.Decimal  `json:"amount"`
	Currency                 string           `json:"currency"`
	ExchangeRate             *decimal.Decimal `json:"exchange_rate,omitempty"`
	AmountInCampaignCurrency decimal.Decimal  `json:"amount_in_campaign_ccy"`
	Status                   DonationStatus   `json:"status"`
	Provider                 PaymentProvider  `json:"provider"`
	ProviderPaymentID        *string          `json:"provider_payment_id,omitempty"`
	ProviderChargeID         *string          `json:"provider_charge_id,omitempty"`
	ProviderFee              *decimal.Decimal `json:"provider_fee,omitempty"`
	NetAmount                *decimal.Decimal `json:"net_amount,omitempty"`
	ReceiptURL               *string          `json:"receipt_url,omitempty"`
	Message                  *string          `json:"message,omitempty"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
}
