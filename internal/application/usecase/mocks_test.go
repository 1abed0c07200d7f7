package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

// MockProductRepository implementación de ProductRepository con testify/mock.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, text string) ([]*entity.Product, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *entity.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *entity.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) StockAvailable(ctx context.Context, id int64) (*int, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockProductRepository) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id int64, qty int) (int64, error) {
	args := m.Called(ctx, id, qty)
	return args.Get(0).(int64), args.Error(1)
}

// MockSaleRepository implementación de SaleRepository con testify/mock.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) List(ctx context.Context) ([]*entity.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) Search(ctx context.Context, text string) ([]*entity.Sale, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) FilterByDates(ctx context.Context, desde, hasta time.Time) ([]*entity.Sale, error) {
	args := m.Called(ctx, desde, hasta)
	return args.Get(0).([]*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) Create(ctx context.Context, s *entity.Sale) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) AddLineItem(ctx context.Context, saleID, productID int64, qty int, unitPrice decimal.Decimal) (int64, error) {
	args := m.Called(ctx, saleID, productID, qty, unitPrice)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) ListLineItems(ctx context.Context, saleID int64) ([]*entity.SaleLineItem, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).([]*entity.SaleLineItem), args.Error(1)
}

// MockCustomerRepository implementación de CustomerRepository con testify/mock.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *entity.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *entity.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Frequent(ctx context.Context, limit int, desde, hasta *time.Time) ([]entity.FrequentCustomer, error) {
	args := m.Called(ctx, limit, desde, hasta)
	return args.Get(0).([]entity.FrequentCustomer), args.Error(1)
}

// MockReportRepository implementación de ReportRepository con testify/mock.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SalesByDay(ctx context.Context, days int) ([]entity.DailySales, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]entity.DailySales), args.Error(1)
}

func (m *MockReportRepository) TopProducts(ctx context.Context, days, limit int) ([]entity.TopProduct, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).([]entity.TopProduct), args.Error(1)
}

func (m *MockReportRepository) ProductsByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CategoryCount), args.Error(1)
}

func (m *MockReportRepository) SalesSummary(ctx context.Context, desde, hasta time.Time) (entity.SalesSummary, error) {
	args := m.Called(ctx, desde, hasta)
	return args.Get(0).(entity.SalesSummary), args.Error(1)
}

func (m *MockReportRepository) CountProducts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportRepository) CountCustomers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportRepository) SalesToday(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockConfigRepository implementación de ConfigRepository con testify/mock.
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) GetAll(ctx context.Context) ([]*entity.ConfigEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.ConfigEntry), args.Error(1)
}

func (m *MockConfigRepository) Get(ctx context.Context, key string) (*entity.ConfigEntry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ConfigEntry), args.Error(1)
}

func (m *MockConfigRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// MockUserRepository implementación de UserRepository con testify/mock.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (*entity.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error) {
	args := m.Called(ctx, id, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// fakeTxRunner pasa los mocks al callback; committed indica si fn terminó sin error.
type fakeTxRunner struct {
	sales     *MockSaleRepository
	products  *MockProductRepository
	committed bool
}

func (f *fakeTxRunner) RunSale(ctx context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	if err := fn(f.sales, f.products); err != nil {
		return err
	}
	f.committed = true
	return nil
}
