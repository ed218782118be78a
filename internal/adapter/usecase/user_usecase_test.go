package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lark/internal/core/domain"
	"lark/internal/core/port/mocks"
)

func TestGetUser(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	uc := NewUserUseCase(users, discardLogger())
	known := testUser("María", "maria@example.com")
	missing := uuid.New()
	broken := uuid.New()

	users.EXPECT().GetUser(mock.Anything, known.ID).Return(known, nil).Once()
	users.EXPECT().GetUser(mock.Anything, missing).Return(nil, nil).Once()
	users.EXPECT().GetUser(mock.Anything, broken).Return(nil, errors.New("boom")).Once()

	got, err := uc.GetUser(context.Background(), known.ID)
	require.NoError(t, err)
	assert.Equal(t, known, got)

	_, err = uc.GetUser(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetUser(context.Background(), broken)
	assert.True(t, domain.Retryable(err))
}

func TestSearchUsers(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	uc := NewUserUseCase(users, discardLogger())
	maria := testUser("María", "maria@example.com")

	users.EXPECT().SearchUsersByEmail(mock.Anything, "maria", SearchLimit).Return([]domain.User{*maria}, nil).Once()

	got, err := uc.SearchUsers(context.Background(), "  maria ")
	require.NoError(t, err)
	assert.Equal(t, []domain.User{*maria}, got)

	blank, err := uc.SearchUsers(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, blank)
	assert.Empty(t, blank)
}

func TestSearcher_DeliversOnlyLatestQuery(t *testing.T) {
	defer goleak.VerifyNone(t)

	var (
		mu      sync.Mutex
		queries []string
	)
	results := make(chan SearchResult, 4)
	search := func(_ context.Context, q string) ([]domain.User, error) {
		mu.Lock()
		queries = append(queries, q)
		mu.Unlock()
		return []domain.User{{Email: q + "@example.com"}}, nil
	}
	s := NewSearcher(search, 20*time.Millisecond, func(r SearchResult) { results <- r })

	s.Search("m")
	s.Search("ma")
	s.Search("mar")

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		assert.Equal(t, "mar", r.Query)
		assert.Equal(t, "mar@example.com", r.Users[0].Email)
	case <-time.After(2 * time.Second):
		t.Fatal("no search result delivered")
	}
	s.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"mar"}, queries)
	assert.Empty(t, results)
}

func TestSearcher_CancelsRunningSearch(t *testing.T) {
	defer goleak.VerifyNone(t)

	started := make(chan struct{}, 1)
	results := make(chan SearchResult, 4)
	search := func(ctx context.Context, q string) ([]domain.User, error) {
		if q == "slow" {
			started <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []domain.User{}, nil
	}
	s := NewSearcher(search, time.Millisecond, func(r SearchResult) { results <- r })

	s.Search("slow")
	<-started
	s.Search("fast")

	select {
	case r := <-results:
		assert.Equal(t, "fast", r.Query)
		assert.NoError(t, r.Err)
	case <-time.After(2 * time.Second):
		t.Fatal("no search result delivered")
	}
	s.Close()
	assert.Empty(t, results)
}

func TestSearcher_CloseStopsPendingSearch(t *testing.T) {
	defer goleak.VerifyNone(t)

	called := false
	s := NewSearcher(func(context.Context, string) ([]domain.User, error) {
		called = true
		return nil, nil
	}, time.Hour, func(SearchResult) { t.Error("unexpected delivery") })

	s.Search("maria")
	s.Close()
	s.Search("ignored")

	assert.False(t, called)
}

func TestSearcher_WaitDeliversLatestWithoutCancelling(t *testing.T) {
	defer goleak.VerifyNone(t)

	var delivered []SearchResult
	s := NewSearcher(func(ctx context.Context, q string) ([]domain.User, error) {
		return []domain.User{{Email: q + "@lark.cl"}}, ctx.Err()
	}, 5*time.Millisecond, func(r SearchResult) { delivered = append(delivered, r) })

	s.Search("lu")
	s.Search("lucia")
	s.Wait()

	require.Len(t, delivered, 1)
	assert.Equal(t, "lucia", delivered[0].Query)
	assert.NoError(t, delivered[0].Err)

	s.Search("jorge")
	s.Wait()
	s.Close()

	require.Len(t, delivered, 2)
	assert.Equal(t, "jorge@lark.cl", delivered[1].Users[0].Email)
}

func TestCampaignDonations(t *testing.T) {
	donations := mocks.NewMockDonationStore(t)
	uc := NewDonationUseCase(donations, discardLogger())
	campaignID, broken := uuid.New(), uuid.New()

	donations.EXPECT().ListDonations(mock.Anything, campaignID, domain.DonationPaid).Return(nil, nil).Once()
	donations.EXPECT().ListDonations(mock.Anything, broken, domain.DonationPaid).Return(nil, errors.New("boom")).Once()

	got, err := uc.CampaignDonations(context.Background(), campaignID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = uc.CampaignDonations(context.Background(), broken)
	var q *domain.QueryError
	require.ErrorAs(t, err, &q)
	assert.Equal(t, "donations", q.Op)
}

func TestHome(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	store := mocks.NewMockCampaignStore(t)
	donations := mocks.NewMockDonationStore(t)
	logger := discardLogger()
	repo := NewCampaignRepository(store, testTTL, logger, newFakeClock().Now)
	home := NewHomeUseCase(NewUserUseCase(users, logger), repo, NewDonationUseCase(donations, logger))

	owner := testUser("Carla", "carla@example.com")
	campaign := domain.Campaign{ID: uuid.New(), OwnerUserID: owner.ID, Title: "Ayuda para María"}
	paid := []domain.Donation{{ID: uuid.New(), CampaignID: campaign.ID, Status: domain.DonationPaid}}

	users.EXPECT().GetUser(mock.Anything, owner.ID).Return(owner, nil).Once()
	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner.ID).Return([]domain.Campaign{campaign}, nil).Once()
	donations.EXPECT().ListDonations(mock.Anything, campaign.ID, domain.DonationPaid).Return(paid, nil).Once()

	got, err := home.Home(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, got.User)
	require.NotNil(t, got.Campaign)
	assert.Equal(t, campaign.ID, got.Campaign.ID)
	assert.Equal(t, paid, got.Donations)
}

func TestHome_WithoutCampaign(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	store := mocks.NewMockCampaignStore(t)
	logger := discardLogger()
	repo := NewCampaignRepository(store, testTTL, logger, newFakeClock().Now)
	home := NewHomeUseCase(NewUserUseCase(users, logger), repo, NewDonationUseCase(mocks.NewMockDonationStore(t), logger))
	user := testUser("Ana", "ana@example.com")

	users.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil).Once()
	store.EXPECT().ListCampaignsByOwner(mock.Anything, user.ID).Return(nil, nil).Once()

	got, err := home.Home(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Campaign)
	assert.Empty(t, got.Donations)
}

func TestHome_StopsOnUserFailure(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	logger := discardLogger()
	repo := NewCampaignRepository(mocks.NewMockCampaignStore(t), testTTL, logger, nil)
	home := NewHomeUseCase(NewUserUseCase(users, logger), repo, NewDonationUseCase(mocks.NewMockDonationStore(t), logger))
	id := uuid.New()

	users.EXPECT().GetUser(mock.Anything, id).Return(nil, nil).Once()

	_, err := home.Home(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
