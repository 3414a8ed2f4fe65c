package schedules

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcozcn/salondesk/internal/domain"
	scheduleRepo "github.com/mcozcn/salondesk/internal/infra/storage/schedule"
	"github.com/mcozcn/salondesk/pkg/ptr"
	"github.com/mcozcn/salondesk/pkg/types"
)

func toTimeSlot(s string) types.TimeString {
	return types.TimeString(s)
}

type fakeScheduleRepo struct {
	schedules []*domain.GroupSchedule
	listErr   error
	slotErr   error
	updateErr error
	deleteErr error

	updatedID string
	deletedID string
}

func (f *fakeScheduleRepo) List(ctx context.Context) ([]*domain.GroupSchedule, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.schedules, nil
}

func (f *fakeScheduleRepo) GetActiveByCustomer(ctx context.Context, customerID string) (*domain.GroupSchedule, error) {
	for _, s := range f.schedules {
		if s.CustomerID == customerID && s.IsActive {
			return s, nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetActiveBySlot(ctx context.Context, group domain.GroupType, timeSlot string) ([]*domain.GroupSchedule, error) {
	if f.slotErr != nil {
		return nil, f.slotErr
	}
	var out []*domain.GroupSchedule
	for _, s := range f.schedules {
		if s.Group == group && s.TimeSlot.String() == timeSlot && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, id string, update domain.ScheduleUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeFallbackRepo struct {
	schedules []*domain.GroupSchedule
	removeErr error
	removedID domain.ScheduleID
}

func (f *fakeFallbackRepo) List() []*domain.GroupSchedule {
	return f.schedules
}

func (f *fakeFallbackRepo) ListActiveBySlot(group domain.GroupType, timeSlot string) []*domain.GroupSchedule {
	var out []*domain.GroupSchedule
	for _, s := range f.schedules {
		if s.Group == group && s.TimeSlot.String() == timeSlot && s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeFallbackRepo) Remove(id domain.ScheduleID) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedID = id
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func sched(id domain.ScheduleID, customerID string, group domain.GroupType, slot string, createdAt time.Time) *domain.GroupSchedule {
	return &domain.GroupSchedule{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: "Customer " + customerID,
		Group:        group,
		TimeSlot:     toTimeSlot(slot),
		StartDate:    createdAt,
		IsActive:     true,
		CreatedAt:    createdAt,
	}
}

func TestService_List_MergesRemoteAndLocal(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	remote := &fakeScheduleRepo{schedules: []*domain.GroupSchedule{
		sched(domain.NewRemoteScheduleID("r1"), "c1", domain.GroupA, "14:00", base),
		sched(domain.NewRemoteScheduleID("r2"), "c2", domain.GroupB, "09:00", base.Add(2*time.Hour)),
	}}
	local := &fakeFallbackRepo{schedules: []*domain.GroupSchedule{
		sched(domain.NewLocalScheduleID("l1"), "c3", domain.GroupA, "14:00", base.Add(time.Hour)),
	}}

	svc := NewService(remote, local, noopLogger{})

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Новые первыми
	assert.Equal(t, "r2", got[0].ID.Value)
	assert.Equal(t, "l1", got[1].ID.Value)
	assert.Equal(t, "r1", got[2].ID.Value)
}

func TestService_List_RemoteDownServesLocalOnly(t *testing.T) {
	remote := &fakeScheduleRepo{listErr: errors.New("connection refused")}
	local := &fakeFallbackRepo{schedules: []*domain.GroupSchedule{
		sched(domain.NewLocalScheduleID("l1"), "c1", domain.GroupA, "14:00", time.Now()),
	}}

	svc := NewService(remote, local, noopLogger{})

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].ID.IsLocal())
}

func TestService_FindActiveByCustomer(t *testing.T) {
	remote := &fakeScheduleRepo{schedules: []*domain.GroupSchedule{
		sched(domain.NewRemoteScheduleID("r1"), "c1", domain.GroupA, "14:00", time.Now()),
	}}
	svc := NewService(remote, &fakeFallbackRepo{}, noopLogger{})

	got, err := svc.FindActiveByCustomer(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID.Value)

	_, err = svc.FindActiveByCustomer(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	_, err = svc.FindActiveByCustomer(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_FindActiveByCustomer_NoFallbackOnError(t *testing.T) {
	// Точечный поиск не деградирует в локальное хранилище
	svc := NewService(&errScheduleRepo{}, &fakeFallbackRepo{
		schedules: []*domain.GroupSchedule{
			sched(domain.NewLocalScheduleID("l1"), "c1", domain.GroupA, "14:00", time.Now()),
		},
	}, noopLogger{})

	_, err := svc.FindActiveByCustomer(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrInternal)
}

// errScheduleRepo падает на всех операциях
type errScheduleRepo struct{}

func (errScheduleRepo) List(ctx context.Context) ([]*domain.GroupSchedule, error) {
	return nil, errors.New("db down")
}

func (errScheduleRepo) GetActiveByCustomer(ctx context.Context, customerID string) (*domain.GroupSchedule, error) {
	return nil, errors.New("db down")
}

func (errScheduleRepo) GetActiveBySlot(ctx context.Context, group domain.GroupType, timeSlot string) ([]*domain.GroupSchedule, error) {
	return nil, errors.New("db down")
}

func (errScheduleRepo) Update(ctx context.Context, id string, update domain.ScheduleUpdate) error {
	return errors.New("db down")
}

func (errScheduleRepo) Delete(ctx context.Context, id string) error {
	return errors.New("db down")
}

func TestService_ForSlot(t *testing.T) {
	remote := &fakeScheduleRepo{schedules: []*domain.GroupSchedule{
		sched(domain.NewRemoteScheduleID("r1"), "c1", domain.GroupA, "14:00", time.Now()),
		sched(domain.NewRemoteScheduleID("r2"), "c2", domain.GroupB, "14:00", time.Now()),
	}}
	svc := NewService(remote, &fakeFallbackRepo{}, noopLogger{})

	// Понедельник - группа A
	got, err := svc.ForSlot(context.Background(), 1, "14:00")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.GroupA, got[0].Group)

	// Вторник - группа B
	got, err = svc.ForSlot(context.Background(), 2, "14:00")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.GroupB, got[0].Group)
}

func TestService_ForSlot_SundayIsEmpty(t *testing.T) {
	remote := &fakeScheduleRepo{schedules: []*domain.GroupSchedule{
		sched(domain.NewRemoteScheduleID("r1"), "c1", domain.GroupA, "14:00", time.Now()),
	}}
	svc := NewService(remote, &fakeFallbackRepo{}, noopLogger{})

	for _, day := range []int{0, 7} {
		got, err := svc.ForSlot(context.Background(), day, "14:00")
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestService_ForSlot_Validation(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeFallbackRepo{}, noopLogger{})

	_, err := svc.ForSlot(context.Background(), 8, "14:00")
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = svc.ForSlot(context.Background(), -1, "14:00")
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = svc.ForSlot(context.Background(), 1, "14:30")
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestService_ForSlot_RemoteDownScansLocal(t *testing.T) {
	remote := &fakeScheduleRepo{slotErr: errors.New("connection refused")}
	local := &fakeFallbackRepo{schedules: []*domain.GroupSchedule{
		sched(domain.NewLocalScheduleID("l1"), "c1", domain.GroupA, "14:00", time.Now()),
		sched(domain.NewLocalScheduleID("l2"), "c2", domain.GroupA, "15:00", time.Now()),
	}}
	svc := NewService(remote, local, noopLogger{})

	got, err := svc.ForSlot(context.Background(), 3, "14:00")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID.Value)
}

func TestService_Update(t *testing.T) {
	remote := &fakeScheduleRepo{}
	svc := NewService(remote, &fakeFallbackRepo{}, noopLogger{})

	update := domain.ScheduleUpdate{TimeSlot: ptr.Ptr(toTimeSlot("15:00"))}
	err := svc.Update(context.Background(), domain.NewRemoteScheduleID("r1"), update)
	require.NoError(t, err)
	assert.Equal(t, "r1", remote.updatedID)
}

func TestService_Update_RejectsLocalOrigin(t *testing.T) {
	remote := &fakeScheduleRepo{}
	svc := NewService(remote, &fakeFallbackRepo{}, noopLogger{})

	update := domain.ScheduleUpdate{IsActive: ptr.Ptr(false)}
	err := svc.Update(context.Background(), domain.NewLocalScheduleID("l1"), update)

	assert.ErrorIs(t, err, ErrLocalRecordImmutable)
	assert.Empty(t, remote.updatedID)
}

func TestService_Update_Validation(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeFallbackRepo{}, noopLogger{})

	err := svc.Update(context.Background(), domain.ScheduleID{}, domain.ScheduleUpdate{IsActive: ptr.Ptr(false)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Update(context.Background(), domain.NewRemoteScheduleID("r1"), domain.ScheduleUpdate{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badGroup := domain.GroupType("X")
	err = svc.Update(context.Background(), domain.NewRemoteScheduleID("r1"), domain.ScheduleUpdate{Group: &badGroup})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Update(context.Background(), domain.NewRemoteScheduleID("r1"), domain.ScheduleUpdate{TimeSlot: ptr.Ptr(toTimeSlot("14:30"))})
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestService_Update_NotFound(t *testing.T) {
	remote := &fakeScheduleRepo{updateErr: scheduleRepo.ErrScheduleNotFound}
	svc := NewService(remote, &fakeFallbackRepo{}, noopLogger{})

	err := svc.Update(context.Background(), domain.NewRemoteScheduleID("missing"),
		domain.ScheduleUpdate{IsActive: ptr.Ptr(false)})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestService_Delete_RemoteRecord(t *testing.T) {
	remote := &fakeScheduleRepo{}
	svc := NewService(remote, &fakeFallbackRepo{}, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), domain.NewRemoteScheduleID("r1")))
	assert.Equal(t, "r1", remote.deletedID)
}

func TestService_Delete_LocalRecord(t *testing.T) {
	remote := &fakeScheduleRepo{}
	local := &fakeFallbackRepo{}
	svc := NewService(remote, local, noopLogger{})

	id := domain.NewLocalScheduleID("l1")
	require.NoError(t, svc.Delete(context.Background(), id))

	assert.Equal(t, id, local.removedID)
	assert.Empty(t, remote.deletedID)
}
