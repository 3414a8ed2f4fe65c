package enroll_schedule

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcozcn/salondesk/internal/domain"
	"github.com/mcozcn/salondesk/pkg/types"
)

// fakeScheduleRepo хранит записи в памяти и умеет имитировать отказ БД
type fakeScheduleRepo struct {
	schedules []*domain.GroupSchedule
	down      bool
	nextID    int
}

func (f *fakeScheduleRepo) Create(ctx context.Context, sched *domain.GroupSchedule) (*domain.GroupSchedule, error) {
	if f.down {
		return nil, errors.New("connection refused")
	}
	f.nextID++
	created := *sched
	created.ID = domain.NewRemoteScheduleID(fmt.Sprintf("r%d", f.nextID))
	created.CreatedAt = time.Now()
	f.schedules = append(f.schedules, &created)
	return &created, nil
}

func (f *fakeScheduleRepo) GetActiveBySlot(ctx context.Context, group domain.GroupType, timeSlot string) ([]*domain.GroupSchedule, error) {
	if f.down {
		return nil, errors.New("connection refused")
	}
	var out []*domain.GroupSchedule
	for _, s := range f.schedules {
		if s.Group == group && s.TimeSlot.String() == timeSlot && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeFallbackRepo struct {
	schedules []*domain.GroupSchedule
	appendErr error
}

func (f *fakeFallbackRepo) Append(sched *domain.GroupSchedule) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	copied := *sched
	f.schedules = append(f.schedules, &copied)
	return nil
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

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("dev-%d", g.n)
}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.t
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeScheduleRepo, fallback *fakeFallbackRepo) *UseCase {
	uc := NewUseCase(repo, fallback, fakeTxManager{}, &seqIDGen{}, noopLogger{})
	uc.timeProvider = &fixedTime{t: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	return uc
}

func enrollReq(customerID string, group domain.GroupType, slot string) *Request {
	return &Request{
		CustomerID:   customerID,
		CustomerName: "Customer " + customerID,
		Group:        group,
		TimeSlot:     types.TimeString(slot),
		StartDate:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_EnrollsIntoRemoteStore(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo, &fakeFallbackRepo{})

	resp, err := uc.Execute(context.Background(), enrollReq("c1", domain.GroupA, "14:00"))
	require.NoError(t, err)

	assert.Equal(t, "r1", resp.ID)
	assert.False(t, resp.LocalOrigin)
	assert.True(t, resp.IsActive)
	assert.Len(t, repo.schedules, 1)
}

func TestExecute_FifthEnrollmentFails(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo, &fakeFallbackRepo{})

	for i := 1; i <= domain.SlotCapacity; i++ {
		_, err := uc.Execute(context.Background(), enrollReq(fmt.Sprintf("c%d", i), domain.GroupA, "14:00"))
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), enrollReq("c5", domain.GroupA, "14:00"))
	assert.ErrorIs(t, err, ErrSlotCapacityExceeded)

	// Отказ до любой записи
	assert.Len(t, repo.schedules, domain.SlotCapacity)
}

func TestExecute_GroupsHaveIndependentPools(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo, &fakeFallbackRepo{})

	for i := 1; i <= domain.SlotCapacity; i++ {
		_, err := uc.Execute(context.Background(), enrollReq(fmt.Sprintf("a%d", i), domain.GroupA, "14:00"))
		require.NoError(t, err)
	}

	// Группа B в тот же слот не ограничена группой A
	resp, err := uc.Execute(context.Background(), enrollReq("b1", domain.GroupB, "14:00"))
	require.NoError(t, err)
	assert.Equal(t, domain.GroupB, resp.Group)
}

func TestExecute_SlotsHaveIndependentPools(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo, &fakeFallbackRepo{})

	for i := 1; i <= domain.SlotCapacity; i++ {
		_, err := uc.Execute(context.Background(), enrollReq(fmt.Sprintf("c%d", i), domain.GroupA, "14:00"))
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), enrollReq("c5", domain.GroupA, "15:00"))
	require.NoError(t, err)
}

func TestExecute_RemoteDownDegradesToLocalStore(t *testing.T) {
	repo := &fakeScheduleRepo{down: true}
	fallback := &fakeFallbackRepo{}
	uc := newTestUseCase(repo, fallback)

	resp, err := uc.Execute(context.Background(), enrollReq("c1", domain.GroupA, "14:00"))
	require.NoError(t, err)

	assert.Equal(t, "local-dev-1", resp.ID)
	assert.True(t, resp.LocalOrigin)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), resp.CreatedAt)
	require.Len(t, fallback.schedules, 1)
	assert.True(t, fallback.schedules[0].ID.IsLocal())
}

func TestExecute_LocalCapacityEnforcedWhileDegraded(t *testing.T) {
	repo := &fakeScheduleRepo{down: true}
	fallback := &fakeFallbackRepo{}
	uc := newTestUseCase(repo, fallback)

	for i := 1; i <= domain.SlotCapacity; i++ {
		_, err := uc.Execute(context.Background(), enrollReq(fmt.Sprintf("c%d", i), domain.GroupB, "09:00"))
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), enrollReq("c5", domain.GroupB, "09:00"))
	assert.ErrorIs(t, err, ErrSlotCapacityExceeded)
	assert.Len(t, fallback.schedules, domain.SlotCapacity)
}

func TestExecute_BothStoresDownFails(t *testing.T) {
	repo := &fakeScheduleRepo{down: true}
	fallback := &fakeFallbackRepo{appendErr: errors.New("disk full")}
	uc := newTestUseCase(repo, fallback)

	_, err := uc.Execute(context.Background(), enrollReq("c1", domain.GroupA, "14:00"))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeFallbackRepo{})

	tests := []struct {
		name   string
		modify func(*Request)
	}{
		{"empty customer id", func(r *Request) { r.CustomerID = "" }},
		{"empty customer name", func(r *Request) { r.CustomerName = "" }},
		{"unknown group", func(r *Request) { r.Group = "C" }},
		{"off-catalog slot", func(r *Request) { r.TimeSlot = "14:30" }},
		{"zero start date", func(r *Request) { r.StartDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := enrollReq("c1", domain.GroupA, "14:00")
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Сквозной сценарий смены работы стойки при падении и возврате БД
func TestExecute_DegradedRecordsCountAgainstMergedCapacity(t *testing.T) {
	repo := &fakeScheduleRepo{}
	fallback := &fakeFallbackRepo{}
	uc := newTestUseCase(repo, fallback)

	// Два зачисления при живой БД
	for i := 1; i <= 2; i++ {
		_, err := uc.Execute(context.Background(), enrollReq(fmt.Sprintf("c%d", i), domain.GroupA, "14:00"))
		require.NoError(t, err)
	}

	// БД падает, третье зачисление уходит в локальный резерв
	repo.down = true
	resp, err := uc.Execute(context.Background(), enrollReq("c3", domain.GroupA, "14:00"))
	require.NoError(t, err)
	assert.True(t, resp.LocalOrigin)

	// БД вернулась: удаленная проверка видит два занятых места,
	// локальная запись живет в своей коллекции до сверки
	repo.down = false
	_, err = uc.Execute(context.Background(), enrollReq("c4", domain.GroupA, "14:00"))
	require.NoError(t, err)
	assert.Len(t, repo.schedules, 3)
	assert.Len(t, fallback.schedules, 1)
}
