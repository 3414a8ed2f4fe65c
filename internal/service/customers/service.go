package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mcozcn/salondesk/internal/domain"
	customerRepo "github.com/mcozcn/salondesk/internal/infra/storage/customer"
)

// Service сервис картотеки клиентов.
// Записи расписания ссылаются на клиентов по id; сама картотека живет здесь.
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, cust *domain.Customer) (*domain.Customer, error) {
	name := strings.TrimSpace(cust.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	cust.Name = name

	created, err := s.customerRepo.Create(ctx, cust)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: customer id=%s created", created.ID)
	return created, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	cust, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return cust, nil
}

// List получает всех клиентов, новые первыми
func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return customers, nil
}

// Update применяет частичное обновление клиента
func (s *Service) Update(ctx context.Context, id string, update domain.CustomerUpdate) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if update.IsEmpty() {
		return fmt.Errorf("%w: update contains no fields", ErrInvalidInput)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}

	if err := s.customerRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: customer id=%s updated", id)
	return nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		s.logger.Error("Delete: repository error for customer=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: customer id=%s removed", id)
	return nil
}
