package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// seedNamespace derives stable ids so that seeding twice inserts nothing
// new.
var seedNamespace = uuid.MustParse("6f1c3a52-1d4e-4b8a-9f57-2f0c8e6d1a01")

func seedID(parts ...any) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprint(parts...)))
}

type seedUser struct {
	name, email, kyc string
}

var seedUsers = []seedUser{
	{"Ana Pérez", "ana.perez@lark.cl", "kyc_verified"},
	{"María González", "maria.gonzalez@lark.cl", "kyc_verified"},
	{"Pedro Díaz", "pedro.diaz@lark.cl", "kyc_verified"},
	{"Lucía Rojas", "lucia.rojas@lark.cl", "kyc_review"},
	{"Jorge Soto", "jorge.soto@lark.cl", "kyc_pending"},
}

type seedCampaign struct {
	owner         int
	title         string
	goal          int64
	beneficiaries []int
}

var seedCampaigns = []seedCampaign{
	{owner: 0, title: "Ayuda para María", goal: 2_500_000, beneficiaries: []int{1}},
	{owner: 3, title: "Operación Rodilla", goal: 4_000_000, beneficiaries: []int{2}},
	{owner: 4, title: "Tratamiento de Lucía", goal: 1_200_000, beneficiaries: []int{3, 4}},
}

// Seed inserts demo users, campaigns, beneficiaries, images and paid
// donations into the lark database.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	userIDs := make([]uuid.UUID, len(seedUsers))
	for i, u := range seedUsers {
		userIDs[i] = seedID("user", u.email)
		_, err := db.Exec(ctx, `INSERT INTO users (id, display_name, email, kyc_status, default_currency)
VALUES ($1,$2,$3,$4,'CLP') ON CONFLICT DO NOTHING`,
			userIDs[i], u.name, u.email, u.kyc)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	for ci, c := range seedCampaigns {
		campaignID := seedID("campaign", c.title)
		rule := "fixed_shares"
		if len(c.beneficiaries) == 1 {
			rule = "single_beneficiary"
		}
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, owner_user_id, title, goal_amount, currency, status, visibility, start_at, beneficiary_rule)
VALUES ($1,$2,$3,$4,'CLP','active','public',now(),$5) ON CONFLICT DO NOTHING`,
			campaignID, userIDs[c.owner], c.title, decimal.NewFromInt(c.goal), rule)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", c.title, err)
		}

		share := 100.0 / float64(len(c.beneficiaries))
		for _, b := range c.beneficiaries {
			_, err = db.Exec(ctx, `INSERT INTO campaign_beneficiaries
    (id, campaign_id, beneficiary_user_id, share_type, share_value, is_active)
VALUES ($1,$2,$3,'percent',$4,TRUE) ON CONFLICT DO NOTHING`,
				seedID("beneficiary", ci, b), campaignID, userIDs[b], share)
			if err != nil {
				return fmt.Errorf("seed beneficiary: %w", err)
			}
		}

		for j := 0; j < 2; j++ {
			_, err = db.Exec(ctx, `INSERT INTO campaign_images
    (id, user_id, campaign_id, image_url, display_order, is_primary)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
				seedID("image", ci, j), userIDs[c.owner], campaignID,
				fmt.Sprintf("http://localhost:9000/campaign-images/%s/%d_portada.jpg", campaignID, j), j, j == 0)
			if err != nil {
				return fmt.Errorf("seed image: %w", err)
			}
		}

		// donations from everyone but the owner
		total := decimal.Zero
		for d := 0; d < 10; d++ {
			donor := userIDs[r.Intn(len(userIDs))]
			if donor == userIDs[c.owner] {
				continue
			}
			amount := decimal.NewFromInt(int64(5_000 + r.Intn(95)*1_000))
			fee := amount.Mul(decimal.RequireFromString("0.0349")).Round(0)
			tag, err := db.Exec(ctx, `INSERT INTO donations
    (id, campaign_id, donor_user_id, amount, currency, amount_in_campaign_ccy, status, provider,
     provider_fee, net_amount, created_at)
VALUES ($1,$2,$3,$4,'CLP',$4,'paid','mercado_pago',$5,$6,$7) ON CONFLICT DO NOTHING`,
				seedID("donation", ci, d), campaignID, donor, amount, fee, amount.Sub(fee),
				time.Now().Add(-time.Duration(r.Intn(72))*time.Hour))
			if err != nil {
				return fmt.Errorf("seed donation: %w", err)
			}
			if tag.RowsAffected() > 0 {
				total = total.Add(amount)
			}
		}
		if _, err = db.Exec(ctx, `UPDATE campaigns SET total_raised = total_raised + $2 WHERE id = $1`,
			campaignID, total); err != nil {
			return fmt.Errorf("seed total raised: %w", err)
		}
	}
	return nil
}
