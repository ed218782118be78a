package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lark/internal/core/domain"
	"lark/internal/core/port/mocks"
)

const testTTL = 10 * time.Second

func TestOwnCampaigns_ServedFromCacheWithinTTL(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	clock := newFakeClock()
	repo := NewCampaignRepository(store, testTTL, discardLogger(), clock.Now)
	owner := uuid.New()
	want := []domain.Campaign{{ID: uuid.New(), OwnerUserID: owner, Title: "Ayuda para María"}}

	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).Return(want, nil).Once()

	first, err := repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
	clock.Advance(testTTL - time.Second)
	second, err := repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)

	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
}

func TestOwnCampaigns_ReloadsAfterTTL(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	clock := newFakeClock()
	repo := NewCampaignRepository(store, testTTL, discardLogger(), clock.Now)
	owner := uuid.New()

	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).Return([]domain.Campaign{}, nil).Times(2)

	_, err := repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
	clock.Advance(testTTL + time.Second)
	_, err = repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
}

func TestOwnCampaigns_InvalidateForcesFetch(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	repo := NewCampaignRepository(store, time.Hour, discardLogger(), newFakeClock().Now)
	owner := uuid.New()

	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).Return([]domain.Campaign{}, nil).Times(3)

	_, err := repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
	repo.Invalidate(domain.CacheCampaigns)
	_, err = repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
	repo.ForceReload()
	_, err = repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
}

func TestOwnCampaigns_InvalidatingImagesKeepsCampaigns(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	repo := NewCampaignRepository(store, time.Hour, discardLogger(), newFakeClock().Now)
	owner := uuid.New()

	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).Return([]domain.Campaign{}, nil).Once()

	_, err := repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
	repo.Invalidate(domain.CacheImages)
	repo.Invalidate(domain.CacheKind("donations"))
	_, err = repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
}

func TestOwnCampaigns_FailureKeepsLoadedList(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	clock := newFakeClock()
	repo := NewCampaignRepository(store, testTTL, discardLogger(), clock.Now)
	owner := uuid.New()
	loaded := []domain.Campaign{{ID: uuid.New(), OwnerUserID: owner}}

	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).Return(loaded, nil).Once()
	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).Return(nil, errors.New("timeout")).Once()
	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).Return(loaded, nil).Once()

	_, err := repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
	clock.Advance(testTTL)

	_, err = repo.OwnCampaigns(context.Background(), owner)
	var q *domain.QueryError
	require.ErrorAs(t, err, &q)
	assert.True(t, domain.Retryable(err))
	assert.Equal(t, "failed to query campaigns: timeout", err.Error())

	again, err := repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestOwnCampaigns_ConcurrentCallDoesNotFetch(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	repo := NewCampaignRepository(store, testTTL, discardLogger(), newFakeClock().Now)
	owner := uuid.New()
	started := make(chan struct{})
	release := make(chan struct{})

	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).
		RunAndReturn(func(context.Context, uuid.UUID) ([]domain.Campaign, error) {
			close(started)
			<-release
			return []domain.Campaign{{ID: uuid.New()}}, nil
		}).Once()

	done := make(chan []domain.Campaign)
	go func() {
		campaigns, _ := repo.OwnCampaigns(context.Background(), owner)
		done <- campaigns
	}()
	<-started

	during, err := repo.OwnCampaigns(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, during)

	close(release)
	assert.Len(t, <-done, 1)
}

func TestOwnCampaigns_InterleavedOwnersFetchOnce(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	clock := newFakeClock()
	repo := NewCampaignRepository(store, testTTL, discardLogger(), clock.Now)
	a, b := uuid.New(), uuid.New()
	campaignsA := []domain.Campaign{{ID: uuid.New(), OwnerUserID: a, Title: "Operación Rodilla"}}
	campaignsB := []domain.Campaign{{ID: uuid.New(), OwnerUserID: b, Title: "Tratamiento de Lucía"}}

	store.EXPECT().ListCampaignsByOwner(mock.Anything, a).Return(campaignsA, nil).Once()
	store.EXPECT().ListCampaignsByOwner(mock.Anything, b).Return(campaignsB, nil).Once()

	for _, step := range []struct {
		owner uuid.UUID
		want  []domain.Campaign
	}{{a, campaignsA}, {b, campaignsB}, {a, campaignsA}, {b, campaignsB}} {
		got, err := repo.OwnCampaigns(context.Background(), step.owner)
		require.NoError(t, err)
		assert.Equal(t, step.want, got)
		clock.Advance(time.Second)
	}
}

func TestOwnCampaigns_OtherOwnerLoadsWhileFirstIsRunning(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	repo := NewCampaignRepository(store, testTTL, discardLogger(), newFakeClock().Now)
	a, b := uuid.New(), uuid.New()
	campaignsB := []domain.Campaign{{ID: uuid.New(), OwnerUserID: b}}
	started := make(chan struct{})
	release := make(chan struct{})

	store.EXPECT().ListCampaignsByOwner(mock.Anything, a).
		RunAndReturn(func(context.Context, uuid.UUID) ([]domain.Campaign, error) {
			close(started)
			<-release
			return []domain.Campaign{{ID: uuid.New(), OwnerUserID: a}}, nil
		}).Once()
	store.EXPECT().ListCampaignsByOwner(mock.Anything, b).Return(campaignsB, nil).Once()

	done := make(chan []domain.Campaign)
	go func() {
		campaigns, _ := repo.OwnCampaigns(context.Background(), a)
		done <- campaigns
	}()
	<-started

	got, err := repo.OwnCampaigns(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, campaignsB, got)

	close(release)
	assert.Len(t, <-done, 1)
}

func TestFirstOwnCampaign(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	repo := NewCampaignRepository(store, testTTL, discardLogger(), newFakeClock().Now)
	owner, empty := uuid.New(), uuid.New()
	newest := domain.Campaign{ID: uuid.New(), Title: "newest"}

	store.EXPECT().ListCampaignsByOwner(mock.Anything, owner).Return([]domain.Campaign{newest, {ID: uuid.New()}}, nil).Once()
	store.EXPECT().ListCampaignsByOwner(mock.Anything, empty).Return(nil, nil).Once()

	first, err := repo.FirstOwnCampaign(context.Background(), owner)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, newest.ID, first.ID)

	none, err := repo.FirstOwnCampaign(context.Background(), empty)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCampaignImages_CachedPerCampaign(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	repo := NewCampaignRepository(store, testTTL, discardLogger(), newFakeClock().Now)
	a, b := uuid.New(), uuid.New()
	imagesA := []domain.CampaignImage{{ID: uuid.New(), CampaignID: a, DisplayOrder: 0, IsPrimary: true}}
	imagesB := []domain.CampaignImage{{ID: uuid.New(), CampaignID: b, DisplayOrder: 0, IsPrimary: true}}

	store.EXPECT().ListCampaignImages(mock.Anything, a).Return(imagesA, nil).Times(2)
	store.EXPECT().ListCampaignImages(mock.Anything, b).Return(imagesB, nil).Once()

	got, err := repo.CampaignImages(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, imagesA, got)
	got, err = repo.CampaignImages(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, imagesA, got)

	got, err = repo.CampaignImages(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, imagesB, got)

	got, err = repo.CampaignImages(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, imagesA, got)
}
