package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(context.Background(), store.NewMemoryPersister(), nil)
	require.NoError(t, err)
	return NewService(s)
}

func TestPlansMarkCurrentSelection(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	plans := svc.Plans(ctx)
	require.Len(t, plans, 3)
	assert.True(t, plans[0].IsActive, "basic is the seeded selection")
	assert.False(t, plans[1].IsActive)
	assert.False(t, plans[2].IsActive)

	_, err := svc.Select(ctx, model.SelectPlanRequest{
		ID: "enterprise", Name: "Enterprise", Price: 399,
	})
	require.NoError(t, err)

	plans = svc.Plans(ctx)
	assert.False(t, plans[0].IsActive)
	assert.True(t, plans[2].IsActive)
}

func TestSelectForcesActive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	selected, err := svc.Select(ctx, model.SelectPlanRequest{
		ID: "pro", Name: "Pro Plan", Price: 199,
		Features: []string{"Advanced scheduling"},
	})
	require.NoError(t, err)
	assert.True(t, selected.IsActive)

	current := svc.Current(ctx)
	assert.Equal(t, "pro", current.ID)
	assert.True(t, current.IsActive)
}

func TestSelectSamePlanTwiceIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := model.SelectPlanRequest{ID: "pro", Name: "Pro Plan", Price: 199}
	first, err := svc.Select(ctx, req)
	require.NoError(t, err)
	second, err := svc.Select(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, svc.Current(ctx))
}
