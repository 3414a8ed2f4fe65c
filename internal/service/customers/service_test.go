package customers

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcozcn/salondesk/internal/domain"
	customerRepo "github.com/mcozcn/salondesk/internal/infra/storage/customer"
	"github.com/mcozcn/salondesk/pkg/ptr"
)

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*domain.Customer{}}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, cust *domain.Customer) (*domain.Customer, error) {
	f.nextID++
	created := *cust
	created.ID = fmt.Sprintf("c%d", f.nextID)
	f.customers[created.ID] = &created
	return &created, nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	cust, ok := f.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return cust, nil
}

func (f *fakeCustomerRepo) List(ctx context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, id string, update domain.CustomerUpdate) error {
	cust, ok := f.customers[id]
	if !ok {
		return customerRepo.ErrCustomerNotFound
	}
	if update.Name != nil {
		cust.Name = *update.Name
	}
	if update.Phone != nil {
		cust.Phone = update.Phone
	}
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.customers[id]; !ok {
		return customerRepo.ErrCustomerNotFound
	}
	delete(f.customers, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Create(t *testing.T) {
	svc := NewService(newFakeCustomerRepo(), noopLogger{})

	created, err := svc.Create(context.Background(), &domain.Customer{Name: "  Ayşe Demir  "})
	require.NoError(t, err)

	assert.Equal(t, "c1", created.ID)
	assert.Equal(t, "Ayşe Demir", created.Name)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newFakeCustomerRepo(), noopLogger{})

	_, err := svc.Create(context.Background(), &domain.Customer{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &domain.Customer{
		Name: strings.Repeat("x", domain.MaxCustomerNameLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, noopLogger{})

	created, err := svc.Create(context.Background(), &domain.Customer{Name: "Test"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, noopLogger{})

	created, err := svc.Create(context.Background(), &domain.Customer{Name: "Before"})
	require.NoError(t, err)

	err = svc.Update(context.Background(), created.ID, domain.CustomerUpdate{Name: ptr.Ptr("After")})
	require.NoError(t, err)
	assert.Equal(t, "After", repo.customers[created.ID].Name)

	err = svc.Update(context.Background(), created.ID, domain.CustomerUpdate{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Update(context.Background(), created.ID, domain.CustomerUpdate{Name: ptr.Ptr("  ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Update(context.Background(), "missing", domain.CustomerUpdate{Name: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, noopLogger{})

	created, err := svc.Create(context.Background(), &domain.Customer{Name: "Test"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrCustomerNotFound)
}
