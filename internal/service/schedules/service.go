package schedules

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/mcozcn/salondesk/internal/domain"
	scheduleRepo "github.com/mcozcn/salondesk/internal/infra/storage/schedule"
	"github.com/mcozcn/salondesk/pkg/types"
)

// Service менеджер группового расписания.
// Единственная точка принятия решений о том, кто из клиентов занимает какую
// пару (группа, временной слот), и единственный компонент, который сводит
// удаленное и локальное хранилища в одно логическое представление.
//
// Политика деградации по видам операций (намеренно асимметричная):
//   - чтение всего списка и чтение по слоту: ошибки удаленной БД поглощаются,
//     данные дополняются/заменяются локальной коллекцией;
//   - точечное чтение по клиенту и обновление/удаление по id: ошибки
//     возвращаются вызывающему - локальная коллекция может не содержать
//     нужной записи, и угадывать здесь опаснее, чем отказать.
type Service struct {
	scheduleRepo ScheduleRepository
	fallbackRepo FallbackRepository
	logger       Logger
}

// NewService создает новый экземпляр менеджера расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	fallbackRepo FallbackRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		fallbackRepo: fallbackRepo,
		logger:       logger,
	}
}

// List возвращает объединенный список записей расписания: удаленные и
// локальные, новые первыми. Локальная коллекция читается всегда, не только
// при сбое - иначе записи, созданные в деградированном режиме, пропали бы
// из представления и из проверок вместимости.
//
// Дедупликация не нужна: пространства идентификаторов не пересекаются
// (локальные id несут префикс).
func (s *Service) List(ctx context.Context) ([]*domain.GroupSchedule, error) {
	remote, err := s.scheduleRepo.List(ctx)
	if err != nil {
		// Ошибку удаленной БД не пробрасываем: показываем то, что есть локально
		s.logger.Warn("List: remote store unavailable, serving local-only view: %v", err)
		remote = nil
	}

	local := s.fallbackRepo.List()

	// Удаленные записи идут первыми, стабильная сортировка сохраняет этот
	// порядок для записей с одинаковым created_at
	merged := make([]*domain.GroupSchedule, 0, len(remote)+len(local))
	merged = append(merged, remote...)
	merged = append(merged, local...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	s.logger.Info("List: returning %d schedules (%d remote, %d local)", len(merged), len(remote), len(local))
	return merged, nil
}

// FindActiveByCustomer возвращает активную запись расписания клиента.
// Точечный поиск выполняется только в удаленной БД, ошибки пробрасываются.
func (s *Service) FindActiveByCustomer(ctx context.Context, customerID string) (*domain.GroupSchedule, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	sched, err := s.scheduleRepo.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("FindActiveByCustomer: repository error for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: FindActiveByCustomer - repository error: %v", ErrInternal, err)
	}

	return sched, nil
}

// ForSlot возвращает активные записи, занимающие слот в указанный день недели.
// День недели определяет группу: 1/3/5 - группа A, 2/4/6 - группа B.
// Воскресенье (0 или 7) не принадлежит ни одной группе и дает пустой список.
// При сбое удаленной БД применяется тот же фильтр к локальной коллекции.
func (s *Service) ForSlot(ctx context.Context, dayOfWeek int, timeSlot types.TimeString) ([]*domain.GroupSchedule, error) {
	if dayOfWeek < 0 || dayOfWeek > 7 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, dayOfWeek)
	}
	if !domain.IsValidTimeSlot(timeSlot) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeSlot, timeSlot)
	}

	group, ok := domain.GroupForWeekday(dayOfWeek)
	if !ok {
		// Воскресенье: занятий нет
		return []*domain.GroupSchedule{}, nil
	}

	schedules, err := s.scheduleRepo.GetActiveBySlot(ctx, group, timeSlot.String())
	if err != nil {
		s.logger.Warn("ForSlot: remote store unavailable for group=%s slot=%s, scanning local collection: %v",
			group, timeSlot, err)
		return s.fallbackRepo.ListActiveBySlot(group, timeSlot.String()), nil
	}

	return schedules, nil
}

// Update применяет частичное обновление записи расписания: смену группы или
// слота, либо деактивацию (is_active=false + end_date).
//
// При смене группы/слота вызывающая сторона обязана предварительно проверить
// вместимость целевого слота - менеджер здесь эту проверку не повторяет.
// Локального резервного пути у обновлений нет: деактивация требует доступной
// удаленной БД.
func (s *Service) Update(ctx context.Context, id domain.ScheduleID, update domain.ScheduleUpdate) error {
	if id.IsZero() {
		return fmt.Errorf("%w: schedule id is required", ErrInvalidInput)
	}
	if update.IsEmpty() {
		return fmt.Errorf("%w: update contains no fields", ErrInvalidInput)
	}
	if update.Group != nil && !update.Group.IsValid() {
		return fmt.Errorf("%w: unknown group %q", ErrInvalidInput, *update.Group)
	}
	if update.TimeSlot != nil && !domain.IsValidTimeSlot(*update.TimeSlot) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, *update.TimeSlot)
	}

	if id.IsLocal() {
		s.logger.Warn("Update: rejected update of local-origin schedule id=%s", id)
		return ErrLocalRecordImmutable
	}

	if err := s.scheduleRepo.Update(ctx, id.Value, update); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("Update: repository error for schedule id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if update.IsDeactivation() {
		s.logger.Info("Update: schedule id=%s deactivated", id)
	} else {
		s.logger.Info("Update: schedule id=%s updated", id)
	}

	return nil
}

// Delete физически удаляет запись расписания. Записи локального происхождения
// удаляются из локальной коллекции, остальные - из удаленной БД.
// Для освобождения места использовать деактивацию, она сохраняет историю.
func (s *Service) Delete(ctx context.Context, id domain.ScheduleID) error {
	if id.IsZero() {
		return fmt.Errorf("%w: schedule id is required", ErrInvalidInput)
	}

	if id.IsLocal() {
		if err := s.fallbackRepo.Remove(id); err != nil {
			s.logger.Warn("Delete: local schedule id=%s: %v", id, err)
			return ErrScheduleNotFound
		}
		s.logger.Info("Delete: local schedule id=%s removed", id)
		return nil
	}

	if err := s.scheduleRepo.Delete(ctx, id.Value); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: schedule id=%s removed", id)
	return nil
}
