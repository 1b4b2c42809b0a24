package commands_test

import (
	"context"

	"gridstore/internal/core/application/usecases/commands"
	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/grid"
	"gridstore/internal/core/domain/model/history"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/product"
	"gridstore/internal/core/domain/model/tracking"
	"gridstore/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockGridRepository struct {
	mock.Mock
}

func (m *MockGridRepository) Add(ctx context.Context, aggregate *grid.Grid) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockGridRepository) Update(ctx context.Context, aggregate *grid.Grid) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockGridRepository) Get(ctx context.Context, id kernel.UUID) (*grid.Grid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*grid.Grid), args.Error(1)
}

func (m *MockGridRepository) GetAll(ctx context.Context) ([]*grid.Grid, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*grid.Grid), args.Error(1)
}

func (m *MockGridRepository) ExistsActive(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockCellRepository struct {
	mock.Mock
}

func (m *MockCellRepository) AddBatch(ctx context.Context, cells []*cell.Cell) error {
	args := m.Called(ctx, cells)
	return args.Error(0)
}

func (m *MockCellRepository) Update(ctx context.Context, aggregate *cell.Cell) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCellRepository) Get(ctx context.Context, id kernel.UUID) (*cell.Cell, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cell.Cell), args.Error(1)
}

func (m *MockCellRepository) GetByGrid(ctx context.Context, gridID kernel.UUID) ([]*cell.Cell, error) {
	args := m.Called(ctx, gridID)
	return args.Get(0).([]*cell.Cell), args.Error(1)
}

func (m *MockCellRepository) GetFillingByOrderKey(ctx context.Context, orderKey string) (*cell.Cell, error) {
	args := m.Called(ctx, orderKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cell.Cell), args.Error(1)
}

func (m *MockCellRepository) GetFirstEmpty(ctx context.Context) (*cell.Cell, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cell.Cell), args.Error(1)
}

func (m *MockCellRepository) DeleteBatch(ctx context.Context, cells []*cell.Cell) error {
	args := m.Called(ctx, cells)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) GetByCell(ctx context.Context, cellID kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, cellID)
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteByCell(ctx context.Context, cellID kernel.UUID) error {
	args := m.Called(ctx, cellID)
	return args.Error(0)
}

type MockTrackingRepository struct {
	mock.Mock
}

func (m *MockTrackingRepository) Add(ctx context.Context, aggregate *tracking.Tracker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTrackingRepository) Update(ctx context.Context, aggregate *tracking.Tracker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetActiveByKey(ctx context.Context, orderKey string) (*tracking.Tracker, error) {
	args := m.Called(ctx, orderKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Tracker), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Add(ctx context.Context, record *history.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockUoW satisfies the full five-repository unit of work.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) GridRepository() ports.GridRepository {
	args := m.Called()
	return args.Get(0).(ports.GridRepository)
}

func (m *MockUoW) CellRepository() ports.CellRepository {
	args := m.Called()
	return args.Get(0).(ports.CellRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockGridUoWFactory struct {
	mock.Mock
}

func (m *MockGridUoWFactory) Create() commands.GridUoW {
	args := m.Called()
	return args.Get(0).(commands.GridUoW)
}

type MockCellUoWFactory struct {
	mock.Mock
}

func (m *MockCellUoWFactory) Create() commands.CellUoW {
	args := m.Called()
	return args.Get(0).(commands.CellUoW)
}
