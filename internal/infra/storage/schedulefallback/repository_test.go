package schedulefallback

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcozcn/salondesk/internal/domain"
	"github.com/mcozcn/salondesk/internal/infra/localstore"
	"github.com/mcozcn/salondesk/pkg/types"
)

func toTimeSlot(s string) types.TimeString {
	return types.TimeString(s)
}

type countingRecorder struct {
	writes map[string]int
}

func (c *countingRecorder) ObserveDegradedWrite(collection string) {
	if c.writes == nil {
		c.writes = map[string]int{}
	}
	c.writes[collection]++
}

func newTestRepo(t *testing.T, recorder DegradedWriteRecorder) *Repository {
	t.Helper()
	store := localstore.NewStore(filepath.Join(t.TempDir(), "localstore.json"))
	return NewRepository(store, recorder)
}

func localSched(id, customerID string, group domain.GroupType, slot string, active bool) *domain.GroupSchedule {
	return &domain.GroupSchedule{
		ID:           domain.NewLocalScheduleID(id),
		CustomerID:   customerID,
		CustomerName: "Customer " + customerID,
		Group:        group,
		TimeSlot:     toTimeSlot(slot),
		StartDate:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		IsActive:     active,
		CreatedAt:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_AppendAndList(t *testing.T) {
	repo := newTestRepo(t, nil)

	require.NoError(t, repo.Append(localSched("l1", "c1", domain.GroupA, "14:00", true)))
	require.NoError(t, repo.Append(localSched("l2", "c2", domain.GroupB, "09:00", true)))

	got := repo.List()
	require.Len(t, got, 2)
	assert.Equal(t, "l1", got[0].ID.Value)
	assert.True(t, got[0].ID.IsLocal())
	assert.Equal(t, "14:00", got[0].TimeSlot.String())
}

func TestRepository_ListActiveBySlot(t *testing.T) {
	repo := newTestRepo(t, nil)

	require.NoError(t, repo.Append(localSched("l1", "c1", domain.GroupA, "14:00", true)))
	require.NoError(t, repo.Append(localSched("l2", "c2", domain.GroupA, "14:00", false)))
	require.NoError(t, repo.Append(localSched("l3", "c3", domain.GroupB, "14:00", true)))
	require.NoError(t, repo.Append(localSched("l4", "c4", domain.GroupA, "15:00", true)))

	got := repo.ListActiveBySlot(domain.GroupA, "14:00")
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID.Value)
}

func TestRepository_Remove(t *testing.T) {
	repo := newTestRepo(t, nil)

	sched := localSched("l1", "c1", domain.GroupA, "14:00", true)
	require.NoError(t, repo.Append(sched))

	require.NoError(t, repo.Remove(sched.ID))
	assert.Empty(t, repo.List())

	assert.ErrorIs(t, repo.Remove(sched.ID), ErrScheduleNotFound)
}

func TestRepository_AppendCountsDegradedWrites(t *testing.T) {
	recorder := &countingRecorder{}
	repo := newTestRepo(t, recorder)

	require.NoError(t, repo.Append(localSched("l1", "c1", domain.GroupA, "14:00", true)))
	require.NoError(t, repo.Append(localSched("l2", "c2", domain.GroupA, "15:00", true)))

	assert.Equal(t, 2, recorder.writes[ScheduleCollection])
}

func TestRepository_EndDateRoundTrip(t *testing.T) {
	repo := newTestRepo(t, nil)

	end := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	sched := localSched("l1", "c1", domain.GroupA, "14:00", false)
	sched.EndDate = &end
	require.NoError(t, repo.Append(sched))

	got := repo.List()
	require.Len(t, got, 1)
	require.NotNil(t, got[0].EndDate)
	assert.Equal(t, end, *got[0].EndDate)
}
