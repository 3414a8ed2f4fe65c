package schedulefallback

import (
	"fmt"

	"github.com/mcozcn/salondesk/internal/domain"
)

// ScheduleCollection имя коллекции записей расписания в локальном хранилище
const ScheduleCollection = "group_schedules"

// CollectionStore контракт локального хранилища коллекций.
// Чтение никогда не возвращает ошибку: отсутствующая коллекция - пустая.
type CollectionStore interface {
	ReadCollection(name string, dest interface{})
	WriteCollection(name string, records interface{}) error
}

// DegradedWriteRecorder счетчик записей, попавших в локальное хранилище
type DegradedWriteRecorder interface {
	ObserveDegradedWrite(collection string)
}

// Repository типизированный доступ к локальной коллекции расписаний.
// Это резервная часть двойного хранилища: записи появляются здесь только
// когда удаленная БД недоступна, и остаются до ручной сверки.
type Repository struct {
	store    CollectionStore
	recorder DegradedWriteRecorder
}

// NewRepository создает репозиторий локальных расписаний.
// recorder может быть nil, если метрики выключены.
func NewRepository(store CollectionStore, recorder DegradedWriteRecorder) *Repository {
	return &Repository{store: store, recorder: recorder}
}

// Append добавляет запись в конец локальной коллекции
func (r *Repository) Append(sched *domain.GroupSchedule) error {
	records := r.readAll()
	records = append(records, fromDomain(sched))

	if err := r.store.WriteCollection(ScheduleCollection, records); err != nil {
		return fmt.Errorf("%w: Append: %v", ErrWriteFailed, err)
	}

	if r.recorder != nil {
		r.recorder.ObserveDegradedWrite(ScheduleCollection)
	}

	return nil
}

// List возвращает все локальные записи расписания.
// Нечитаемые записи пропускаются.
func (r *Repository) List() []*domain.GroupSchedule {
	records := r.readAll()

	schedules := make([]*domain.GroupSchedule, 0, len(records))
	for _, rec := range records {
		sched, ok := rec.toDomain()
		if !ok {
			continue
		}
		schedules = append(schedules, sched)
	}

	return schedules
}

// ListActiveBySlot возвращает активные локальные записи для пары
// (группа, временной слот) - тот же фильтр, что применяет удаленный репозиторий
func (r *Repository) ListActiveBySlot(group domain.GroupType, timeSlot string) []*domain.GroupSchedule {
	all := r.List()

	matched := make([]*domain.GroupSchedule, 0)
	for _, sched := range all {
		if sched.IsActive && sched.Group == group && sched.TimeSlot.String() == timeSlot {
			matched = append(matched, sched)
		}
	}

	return matched
}

// Remove удаляет локальную запись по идентификатору
func (r *Repository) Remove(id domain.ScheduleID) error {
	records := r.readAll()

	remaining := make([]scheduleRecord, 0, len(records))
	found := false
	for _, rec := range records {
		if rec.ID == id.String() {
			found = true
			continue
		}
		remaining = append(remaining, rec)
	}

	if !found {
		return ErrScheduleNotFound
	}

	if err := r.store.WriteCollection(ScheduleCollection, remaining); err != nil {
		return fmt.Errorf("%w: Remove: %v", ErrWriteFailed, err)
	}

	return nil
}

func (r *Repository) readAll() []scheduleRecord {
	records := make([]scheduleRecord, 0)
	r.store.ReadCollection(ScheduleCollection, &records)
	return records
}
