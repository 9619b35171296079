package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suugaanle/qaamuus/internal/domain/entity"
	"github.com/suugaanle/qaamuus/internal/infrastructure/kvstore"
)

func newTestContributions() *ContributionService {
	return NewContributionService(kvstore.NewMemoryStore(), testLogger())
}

func TestSubmitStartsPending(t *testing.T) {
	svc := newTestContributions()
	ctx := context.Background()

	c, err := svc.Submit(ctx, NewContribution{
		Type:        entity.ContributionWord,
		Title:       "Eray soo jeedin",
		Content:     "Eraygan waa in lagu daraa qaamuuska",
		Categories:  []string{"noun"},
		SubmittedBy: "demo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, entity.StatusPending, c.Status)
	assert.False(t, c.SubmittedAt.IsZero())

	all := svc.ListAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, c.ID, all[0].ID)
}

func TestModerationLifecycle(t *testing.T) {
	svc := newTestContributions()
	ctx := context.Background()

	a, err := svc.Submit(ctx, NewContribution{Type: entity.ContributionOpinion, Title: "Ra'yi", Content: "Fikrad"})
	require.NoError(t, err)
	b, err := svc.Submit(ctx, NewContribution{Type: entity.ContributionWord, Title: "Eray", Content: "Qeexid"})
	require.NoError(t, err)
	c, err := svc.Submit(ctx, NewContribution{Type: entity.ContributionWord, Title: "Eray kale", Content: "Qeexid kale"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, a.ID, entity.StatusApproved))
	require.NoError(t, svc.UpdateStatus(ctx, b.ID, entity.StatusRejected))

	assert.Len(t, svc.ListByStatus(ctx, entity.StatusApproved), 1)
	assert.Len(t, svc.ListByStatus(ctx, entity.StatusRejected), 1)
	pending := svc.ListByStatus(ctx, entity.StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, c.ID, pending[0].ID)

	// Status changes are unconditional overwrites; rejected back to pending
	// is allowed.
	require.NoError(t, svc.UpdateStatus(ctx, b.ID, entity.StatusPending))
	assert.Len(t, svc.ListByStatus(ctx, entity.StatusPending), 2)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, "missing", entity.StatusApproved), ErrContributionNotFound)
}

func TestStatsPartitionTotal(t *testing.T) {
	svc := newTestContributions()
	ctx := context.Background()

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		c, err := svc.Submit(ctx, NewContribution{Type: entity.ContributionOpinion, Title: "T", Content: "C"})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	require.NoError(t, svc.UpdateStatus(ctx, ids[0], entity.StatusApproved))
	require.NoError(t, svc.UpdateStatus(ctx, ids[1], entity.StatusApproved))
	require.NoError(t, svc.UpdateStatus(ctx, ids[2], entity.StatusRejected))

	stats := svc.Stats(ctx)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, stats.Total, stats.Pending+stats.Approved+stats.Rejected)
}

func TestDeleteContribution(t *testing.T) {
	svc := newTestContributions()
	ctx := context.Background()

	c, err := svc.Submit(ctx, NewContribution{Type: entity.ContributionWord, Title: "T", Content: "C"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.Empty(t, svc.ListAll(ctx))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrContributionNotFound)
}
