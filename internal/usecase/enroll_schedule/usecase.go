package enroll_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcozcn/salondesk/internal/domain"
)

// UseCase use case записи клиента в группу с проверкой вместимости.
//
// Вместимость проверяется по каждому из трех дней занятий группы, но все три
// занятия черпают места из одного пула пары (группа, слот): место недельное,
// а не по-дневное. Пятая активная запись в одну пару невозможна.
//
// Проверка и вставка выполняются в одной сериализуемой транзакции, чтобы два
// параллельных зачисления в последнее свободное место не прошли проверку
// одновременно. Если удаленная БД недоступна, операция тихо деградирует:
// проверка повторяется по локальной коллекции и запись создается локально -
// отказ инфраструктуры не должен останавливать работу стойки.
type UseCase struct {
	scheduleRepo ScheduleRepository
	fallbackRepo FallbackRepository
	txManager    TransactionManager
	idGen        IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	fallbackRepo FallbackRepository,
	txManager TransactionManager,
	idGen IDGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		fallbackRepo: fallbackRepo,
		txManager:    txManager,
		idGen:        idGen,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case записи в группу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EnrollSchedule: customer=%s, group=%s, slot=%s, start=%s",
		req.CustomerID, req.Group, req.TimeSlot, req.StartDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EnrollSchedule: validation failed: %v", err)
		return nil, err
	}

	sched := &domain.GroupSchedule{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Group:        req.Group,
		TimeSlot:     req.TimeSlot,
		StartDate:    req.StartDate,
		IsActive:     true,
	}

	// 2. Основной путь: проверка вместимости и вставка в одной
	// сериализуемой транзакции
	var result *domain.GroupSchedule
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkRemoteCapacity(txCtx, req); err != nil {
			return err
		}

		created, err := uc.scheduleRepo.Create(txCtx, sched)
		if err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}

		result = created
		return nil
	})

	// Отказ по вместимости - бизнес-правило: громко и до любой записи
	if errors.Is(err, ErrSlotCapacityExceeded) {
		uc.logger.Warn("EnrollSchedule: %v", err)
		return nil, err
	}

	// 3. Деградация: удаленная БД недоступна, пишем в локальный резерв
	if err != nil {
		uc.logger.Warn("EnrollSchedule: remote store unavailable, degrading to local store: %v", err)

		local, derr := uc.enrollLocally(req, sched)
		if derr != nil {
			return nil, derr
		}
		result = local
	}

	uc.logger.Info("EnrollSchedule: customer=%s enrolled, schedule id=%s", req.CustomerID, result.ID)
	return fromDomain(result), nil
}

// checkRemoteCapacity проверяет вместимость слота по удаленной БД.
// Правило требует свободного места по каждому из трех дней занятий группы;
// внутри транзакции выборка блокирует занятые места (FOR UPDATE).
func (uc *UseCase) checkRemoteCapacity(ctx context.Context, req *Request) error {
	for _, day := range req.Group.Days() {
		group, ok := domain.GroupForWeekday(day)
		if !ok {
			continue
		}

		occupied, err := uc.scheduleRepo.GetActiveBySlot(ctx, group, req.TimeSlot.String())
		if err != nil {
			return fmt.Errorf("check capacity: %w", err)
		}

		if len(occupied) >= domain.SlotCapacity {
			return fmt.Errorf("%w: group %s at %s is full (%d/%d)",
				ErrSlotCapacityExceeded, req.Group, req.TimeSlot, len(occupied), domain.SlotCapacity)
		}
	}

	return nil
}

// enrollLocally выполняет деградированную запись: проверка вместимости по
// локальной коллекции и вставка записи с локальным идентификатором
func (uc *UseCase) enrollLocally(req *Request, sched *domain.GroupSchedule) (*domain.GroupSchedule, error) {
	for _, day := range req.Group.Days() {
		group, ok := domain.GroupForWeekday(day)
		if !ok {
			continue
		}

		occupied := uc.fallbackRepo.ListActiveBySlot(group, req.TimeSlot.String())
		if len(occupied) >= domain.SlotCapacity {
			err := fmt.Errorf("%w: group %s at %s is full (%d/%d)",
				ErrSlotCapacityExceeded, req.Group, req.TimeSlot, len(occupied), domain.SlotCapacity)
			uc.logger.Warn("EnrollSchedule: %v", err)
			return nil, err
		}
	}

	sched.ID = domain.NewLocalScheduleID(uc.idGen.NewID())
	sched.CreatedAt = uc.timeProvider.Now()

	if err := uc.fallbackRepo.Append(sched); err != nil {
		// Оба хранилища отказали - поглощать больше нечем
		uc.logger.Error("EnrollSchedule: local store write failed: %v", err)
		return nil, fmt.Errorf("%w: local store write failed: %v", ErrInternal, err)
	}

	return sched, nil
}
