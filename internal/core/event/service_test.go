package event

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/pkg/pointer"
)

type fakeRepository struct {
	events map[string]*Event // keyed by ID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{events: make(map[string]*Event)}
}

func (repo *fakeRepository) ListEvents(_ context.Context, f Filter, limit, offset int) ([]*Event, int, error) {
	out := make([]*Event, 0)
	for _, e := range repo.events {
		if f.FeaturedOnly && !e.Featured {
			continue
		}
		out = append(out, e)
	}
	return out, len(out), nil
}

func (repo *fakeRepository) GetEvent(_ context.Context, id string) (*Event, error) {
	e, ok := repo.events[id]
	if !ok {
		return nil, apperr.NotFound("Event")
	}
	copied := *e
	return &copied, nil
}

func (repo *fakeRepository) GetEventBySlug(_ context.Context, slug string) (*Event, error) {
	for _, e := range repo.events {
		if e.Slug == slug {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Event")
}

func (repo *fakeRepository) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for id, e := range repo.events {
		if id != excludeID && e.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (repo *fakeRepository) CreateEvent(_ context.Context, e *Event) error {
	copied := *e
	repo.events[e.ID] = &copied
	return nil
}

func (repo *fakeRepository) UpdateEvent(_ context.Context, e *Event) error {
	if _, ok := repo.events[e.ID]; !ok {
		return apperr.NotFound("Event")
	}
	copied := *e
	repo.events[e.ID] = &copied
	return nil
}

func (repo *fakeRepository) DeleteEvent(_ context.Context, id string) error {
	delete(repo.events, id)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.DiscardHandler)), repo
}

func TestService_CreateEvent_GeneratesSlug(t *testing.T) {
	service, _ := newTestService()

	e := &Event{Title: "Tết Festival Kickoff", StartsAt: time.Now()}
	require.NoError(t, service.CreateEvent(context.Background(), e))

	assert.Equal(t, "tet-festival-kickoff", e.Slug)
	assert.NotEmpty(t, e.ID)
}

func TestService_CreateEvent_SuffixesDuplicateSlugs(t *testing.T) {
	service, _ := newTestService()

	first := &Event{Title: "Game Night", StartsAt: time.Now()}
	second := &Event{Title: "Game Night", StartsAt: time.Now()}
	third := &Event{Title: "Game Night!", StartsAt: time.Now()}

	require.NoError(t, service.CreateEvent(context.Background(), first))
	require.NoError(t, service.CreateEvent(context.Background(), second))
	require.NoError(t, service.CreateEvent(context.Background(), third))

	assert.Equal(t, "game-night", first.Slug)
	assert.Equal(t, "game-night-2", second.Slug)
	assert.Equal(t, "game-night-3", third.Slug)
}

func TestService_UpdateEvent_KeepsSlugWhenTitleUnchanged(t *testing.T) {
	service, _ := newTestService()

	e := &Event{Title: "Spring Banquet", StartsAt: time.Now()}
	require.NoError(t, service.CreateEvent(context.Background(), e))

	edit := &Event{Title: "Spring Banquet", StartsAt: e.StartsAt, Location: pointer.To("Student Union Ballroom")}
	require.NoError(t, service.UpdateEvent(context.Background(), e.ID, edit))

	assert.Equal(t, "spring-banquet", edit.Slug)
}

func TestService_UpdateEvent_ReslugsOnTitleChange(t *testing.T) {
	service, _ := newTestService()

	e := &Event{Title: "Spring Banquet", StartsAt: time.Now()}
	require.NoError(t, service.CreateEvent(context.Background(), e))

	edit := &Event{Title: "Spring Banquet 2026", StartsAt: e.StartsAt}
	require.NoError(t, service.UpdateEvent(context.Background(), e.ID, edit))

	assert.Equal(t, "spring-banquet-2026", edit.Slug)
}

func TestService_CreateEvent_RequiresTitleAndDate(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateEvent(context.Background(), &Event{})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
