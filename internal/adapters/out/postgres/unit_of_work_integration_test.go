package postgres_test

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	postgres_adapter "gridstore/internal/adapters/out/postgres"
	"gridstore/internal/adapters/out/postgres/cellrepo"
	"gridstore/internal/adapters/out/postgres/gridrepo"
	"gridstore/internal/adapters/out/postgres/historyrepo"
	"gridstore/internal/adapters/out/postgres/productrepo"
	"gridstore/internal/adapters/out/postgres/trackingrepo"
	"gridstore/internal/core/application/usecases/commands"
	"gridstore/internal/core/domain/model/cell"
	"gridstore/internal/core/domain/model/grid"
	"gridstore/internal/core/domain/model/history"
	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/product"
	"gridstore/internal/core/domain/model/scan"
	"gridstore/internal/core/domain/model/tracking"
	"gridstore/internal/core/ports"
	"gridstore/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect through lib/pq so unique-violation errors surface as pq errors,
	// the same way the production wiring connects.
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&gridrepo.GridDTO{},
		&cellrepo.CellDTO{},
		&productrepo.ProductDTO{},
		&trackingrepo.TrackerDTO{},
		&historyrepo.HistoryRecordDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE grids, cells, products, order_trackers, cell_history").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// createTestGrid creates a valid active grid for testing purposes.
func createTestGrid(name string, width, height int) *grid.Grid {
	g, _ := grid.NewGrid(kernel.NewUUID(), name, width, height)
	return g
}

// seedGrid persists a grid with its generated cells outside any transaction
// and returns the cells in walking order.
func (suite *UnitOfWorkIntegrationTestSuite) seedGrid(g *grid.Grid) []*cell.Cell {
	ctx := context.Background()
	cells, err := g.GenerateCells()
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.GridRepository().Add(ctx, g))
	suite.Require().NoError(uow.CellRepository().AddBatch(ctx, cells))
	return cells
}

// createTestProduct creates a valid product for the given cell.
// The sequence is baked into both the code and the QR payload.
func createTestProduct(cellID kernel.UUID, orderNumber string, sequence, total int) *product.Product {
	code := fmt.Sprintf("VA-M-%s-%d", orderNumber, sequence)
	qr := "101725-" + code
	parsed, _ := scan.ParseProductCode(code)
	p, _ := product.NewProduct(
		kernel.NewUUID(), cellID, code, "M", "blue", qr,
		sequence, total, parsed, "101725", time.Now().UTC(),
	)
	return p
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.GridRepository(), "First instance should provide grid repository")
	suite.NotNil(uow1.CellRepository(), "First instance should provide cell repository")
	suite.NotNil(uow2.ProductRepository(), "Second instance should provide product repository")
	suite.NotNil(uow2.TrackingRepository(), "Second instance should provide tracking repository")
	suite.NotNil(uow2.HistoryRepository(), "Second instance should provide history repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_GridLifecycle verifies a grid and its generated cells
// persist atomically and read back in walking order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GridLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testGrid := createTestGrid("Main Floor", 3, 2)
	cells, err := testGrid.GenerateCells()
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.GridRepository().Add(ctx, testGrid)
	suite.Require().NoError(err)
	err = uow.CellRepository().AddBatch(ctx, cells)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify with new unit of work
	newUow := suite.factory.Create()

	retrievedGrid, err := newUow.GridRepository().Get(ctx, testGrid.ID())
	suite.Require().NoError(err)
	suite.Equal("Main Floor", retrievedGrid.Name())
	suite.Equal(6, retrievedGrid.TotalCells())
	suite.True(retrievedGrid.IsActive())

	retrievedCells, err := newUow.CellRepository().GetByGrid(ctx, testGrid.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrievedCells, 6)

	names := make([]string, 0, len(retrievedCells))
	for _, c := range retrievedCells {
		names = append(names, c.Name())
	}
	suite.Equal([]string{"A1", "A2", "A3", "B1", "B2", "B3"}, names,
		"Cells should read back in walking order")

	exists, err := newUow.GridRepository().ExistsActive(ctx)
	suite.Require().NoError(err)
	suite.True(exists)
}

// TestUnitOfWork_ProductReceiptWorkflow walks a two-product order through a
// 2x1 grid: the first scan claims A1, the second fills it, and the tracker
// completes alongside the cell.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ProductReceiptWorkflow() {
	ctx := context.Background()
	testGrid := createTestGrid("Receiving", 2, 1)
	suite.seedGrid(testGrid)

	now := time.Now().UTC()
	orderCode := "VA-M-000126"
	orderKey := scan.ComposeOrderKey(orderCode, "101725")

	// First scan: claim the first empty cell.
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	claimed, err := uow.CellRepository().GetFirstEmpty(ctx)
	suite.Require().NoError(err)
	suite.Equal("A1", claimed.Name())

	err = claimed.AttachOrder(orderCode, "101725", orderKey, 2)
	suite.Require().NoError(err)
	err = claimed.IncrementCount(now)
	suite.Require().NoError(err)
	err = uow.CellRepository().Update(ctx, claimed)
	suite.Require().NoError(err)

	first := createTestProduct(claimed.ID(), "000126", 1, 2)
	err = uow.ProductRepository().Add(ctx, first)
	suite.Require().NoError(err)

	tracker, err := tracking.NewTracker(kernel.NewUUID(), orderCode, "101725", orderKey, claimed.ID(), 2)
	suite.Require().NoError(err)
	err = tracker.RecordReceipt(now)
	suite.Require().NoError(err)
	err = uow.TrackingRepository().Add(ctx, tracker)
	suite.Require().NoError(err)

	record, err := history.NewProductAddedRecord(
		kernel.NewUUID(), claimed.ID(), claimed.Name(),
		orderCode, "101725", orderKey,
		history.ProductSnapshot{Code: first.Code(), Size: "M", Color: "blue", Sequence: 1},
		"", now,
	)
	suite.Require().NoError(err)
	err = uow.HistoryRepository().Add(ctx, record)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Second scan: the filling cell is found by order key and fills up.
	uow2 := suite.factory.Create()
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	filling, err := uow2.CellRepository().GetFillingByOrderKey(ctx, orderKey)
	suite.Require().NoError(err)
	suite.True(claimed.IsEqual(filling))
	suite.Equal(1, filling.CurrentCount())

	err = filling.IncrementCount(now)
	suite.Require().NoError(err)
	suite.Equal(cell.StatusFull, filling.Status())
	err = uow2.CellRepository().Update(ctx, filling)
	suite.Require().NoError(err)

	second := createTestProduct(filling.ID(), "000126", 2, 2)
	err = uow2.ProductRepository().Add(ctx, second)
	suite.Require().NoError(err)

	activeTracker, err := uow2.TrackingRepository().GetActiveByKey(ctx, orderKey)
	suite.Require().NoError(err)
	err = activeTracker.RecordReceipt(now)
	suite.Require().NoError(err)
	suite.Equal(tracking.StatusCompleted, activeTracker.Status())
	err = uow2.TrackingRepository().Update(ctx, activeTracker)
	suite.Require().NoError(err)

	err = uow2.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state
	finalUow := suite.factory.Create()

	finalCell, err := finalUow.CellRepository().Get(ctx, claimed.ID())
	suite.Require().NoError(err)
	suite.Equal(cell.StatusFull, finalCell.Status())
	suite.Equal(2, finalCell.CurrentCount())
	suite.Equal(orderKey, finalCell.OrderKey())
	suite.NotNil(finalCell.FilledAt())

	products, err := finalUow.ProductRepository().GetByCell(ctx, claimed.ID())
	suite.Require().NoError(err)
	suite.Len(products, 2)

	finalTracker, err := finalUow.TrackingRepository().GetActiveByKey(ctx, orderKey)
	suite.Require().NoError(err)
	suite.Equal(tracking.StatusCompleted, finalTracker.Status())
	suite.Equal(2, finalTracker.ReceivedCount())
	suite.NotNil(finalTracker.CompletedAt())

	var historyCount int64
	err = suite.db.Table("cell_history").Where("cell_id = ?", claimed.ID().Bytes()).Count(&historyCount).Error
	suite.Require().NoError(err)
	suite.EqualValues(1, historyCount)
}

// TestUnitOfWork_DuplicateProductCode verifies the unique index on the product
// code surfaces as the duplicate sentinel.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateProductCode() {
	ctx := context.Background()
	testGrid := createTestGrid("Receiving", 1, 1)
	cells := suite.seedGrid(testGrid)

	uow := suite.factory.Create()
	first := createTestProduct(cells[0].ID(), "000200", 1, 2)
	err := uow.ProductRepository().Add(ctx, first)
	suite.Require().NoError(err)

	exists, err := uow.ProductRepository().ExistsByCode(ctx, first.Code())
	suite.Require().NoError(err)
	suite.True(exists)

	duplicate := createTestProduct(cells[0].ID(), "000200", 1, 2)
	err = uow.ProductRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, ports.ErrDuplicateProductCode)
}

// TestUnitOfWork_FirstEmptySkipsInactiveGrids verifies allocation walks only
// active grids, oldest grid first.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FirstEmptySkipsInactiveGrids() {
	ctx := context.Background()

	inactive, err := grid.RestoreGrid(kernel.NewUUID(), "Retired", 2, 2, false)
	suite.Require().NoError(err)
	suite.seedGrid(inactive)

	active := createTestGrid("Current", 2, 2)
	suite.seedGrid(active)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	found, err := uow.CellRepository().GetFirstEmpty(ctx)
	suite.Require().NoError(err)
	suite.Equal("A1", found.Name())
	suite.Equal(active.ID(), found.GridID(), "Should skip the inactive grid")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_NoEmptyCell verifies allocation reports not-found when every
// active cell is taken.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_NoEmptyCell() {
	ctx := context.Background()
	testGrid := createTestGrid("Tiny", 1, 1)
	cells := suite.seedGrid(testGrid)

	uow := suite.factory.Create()
	err := cells[0].AttachOrder("VA-M-000300", "101725", "VA-M-000300-101725", 1)
	suite.Require().NoError(err)
	err = uow.CellRepository().Update(ctx, cells[0])
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	_, err = uow.CellRepository().GetFirstEmpty(ctx)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_ShippedTrackerIsInvisible verifies a shipped tracker no
// longer answers for its order key and a fresh tracker takes over.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShippedTrackerIsInvisible() {
	ctx := context.Background()
	testGrid := createTestGrid("Receiving", 1, 1)
	cells := suite.seedGrid(testGrid)

	now := time.Now().UTC()
	orderKey := "VA-M-000400-101725"

	uow := suite.factory.Create()
	shipped, err := tracking.NewTracker(kernel.NewUUID(), "VA-M-000400", "101725", orderKey, cells[0].ID(), 3)
	suite.Require().NoError(err)
	err = uow.TrackingRepository().Add(ctx, shipped)
	suite.Require().NoError(err)

	err = shipped.MarkShipped(now)
	suite.Require().NoError(err)
	err = uow.TrackingRepository().Update(ctx, shipped)
	suite.Require().NoError(err)

	_, err = uow.TrackingRepository().GetActiveByKey(ctx, orderKey)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Shipped tracker should not be active")

	fresh, err := tracking.NewTracker(kernel.NewUUID(), "VA-M-000400", "101725", orderKey, cells[0].ID(), 3)
	suite.Require().NoError(err)
	err = uow.TrackingRepository().Add(ctx, fresh)
	suite.Require().NoError(err)

	retrieved, err := uow.TrackingRepository().GetActiveByKey(ctx, orderKey)
	suite.Require().NoError(err)
	suite.True(fresh.IsEqual(retrieved), "Fresh tracker should take over the key")
}

// TestUnitOfWork_ClearRollback verifies a rolled-back clear leaves the cell,
// its products, and the ledger untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ClearRollback() {
	ctx := context.Background()
	testGrid := createTestGrid("Receiving", 1, 1)
	cells := suite.seedGrid(testGrid)
	target := cells[0]

	now := time.Now().UTC()

	setupUow := suite.factory.Create()
	err := target.AttachOrder("VA-M-000500", "101725", "VA-M-000500-101725", 2)
	suite.Require().NoError(err)
	err = target.IncrementCount(now)
	suite.Require().NoError(err)
	err = setupUow.CellRepository().Update(ctx, target)
	suite.Require().NoError(err)
	err = setupUow.ProductRepository().Add(ctx, createTestProduct(target.ID(), "000500", 1, 2))
	suite.Require().NoError(err)

	// Clear inside a transaction, then roll back.
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProductRepository().DeleteByCell(ctx, target.ID())
	suite.Require().NoError(err)
	err = target.Clear(now)
	suite.Require().NoError(err)
	err = uow.CellRepository().Update(ctx, target)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Everything is still there.
	checkUow := suite.factory.Create()
	persisted, err := checkUow.CellRepository().Get(ctx, target.ID())
	suite.Require().NoError(err)
	suite.Equal(cell.StatusFilling, persisted.Status())
	suite.Equal(1, persisted.CurrentCount())

	products, err := checkUow.ProductRepository().GetByCell(ctx, target.ID())
	suite.Require().NoError(err)
	suite.Len(products, 1)
}

// TestUnitOfWork_ConcurrentClaimsPickDistinctCells verifies two transactions
// racing for an empty cell end up with different cells: the row lock on the
// first empty cell makes the second claim wait and re-evaluate.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentClaimsPickDistinctCells() {
	ctx := context.Background()
	testGrid := createTestGrid("Receiving", 2, 1)
	suite.seedGrid(testGrid)

	uow1 := suite.factory.Create()
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	firstCell, err := uow1.CellRepository().GetFirstEmpty(ctx)
	suite.Require().NoError(err)
	suite.Equal("A1", firstCell.Name())

	// The second claim blocks on the row lock until the first commits.
	type claim struct {
		name string
		err  error
	}
	done := make(chan claim, 1)
	go func() {
		uow2 := suite.factory.Create()
		if err := uow2.Begin(ctx); err != nil {
			done <- claim{err: err}
			return
		}
		c, err := uow2.CellRepository().GetFirstEmpty(ctx)
		if err != nil {
			_ = uow2.Rollback(ctx)
			done <- claim{err: err}
			return
		}
		if err := c.AttachOrder("VA-M-000601", "101725", "VA-M-000601-101725", 1); err != nil {
			_ = uow2.Rollback(ctx)
			done <- claim{err: err}
			return
		}
		if err := uow2.CellRepository().Update(ctx, c); err != nil {
			_ = uow2.Rollback(ctx)
			done <- claim{err: err}
			return
		}
		done <- claim{name: c.Name(), err: uow2.Commit(ctx)}
	}()

	// Give the competing claim time to park on the lock, then finish ours.
	time.Sleep(100 * time.Millisecond)
	err = firstCell.AttachOrder("VA-M-000600", "101725", "VA-M-000600-101725", 1)
	suite.Require().NoError(err)
	err = uow1.CellRepository().Update(ctx, firstCell)
	suite.Require().NoError(err)
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	result := <-done
	suite.Require().NoError(result.err)
	suite.Equal("A2", result.name, "Competing claim should land on the next cell")
}

// uowFactoryAdapter narrows the repository factory to the interface the
// assignment handler consumes, the same way the composition root does.
type uowFactoryAdapter struct {
	factory ports.UnitOfWorkFactory
}

func (a uowFactoryAdapter) Create() commands.UoW {
	return a.factory.Create()
}

// TestUnitOfWork_ConcurrentSameOrderScansShareOneCell verifies that racing
// scans of one new order never split across two empty cells: the first
// claim wins a cell and every competitor resolves to it through the
// filling-cell lookup after waiting out the row lock.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentSameOrderScansShareOneCell() {
	ctx := context.Background()
	testGrid := createTestGrid("Receiving", 2, 1)
	suite.seedGrid(testGrid)

	handler := commands.NewAssignProductCommandHandler(
		uowFactoryAdapter{suite.factory}, kernel.NewSystemClock())

	const scans = 4
	results := make(chan commands.AssignmentResult, scans)
	failures := make(chan error, scans)

	var wg sync.WaitGroup
	for i := 1; i <= scans; i++ {
		wg.Add(1)
		go func(seq int) {
			defer wg.Done()
			code := fmt.Sprintf("VA-M-000700-%d", seq)
			cmd, err := commands.NewAssignProductCommand(
				code, "M", "blue", "101725-"+code,
				strconv.Itoa(seq), strconv.Itoa(scans))
			if err != nil {
				failures <- err
				return
			}
			result, err := handler.Handle(ctx, cmd)
			if err != nil {
				failures <- err
				return
			}
			results <- result
		}(i)
	}
	wg.Wait()
	close(results)
	close(failures)

	for err := range failures {
		suite.Require().NoError(err)
	}

	cellNames := make(map[string]struct{})
	received := 0
	for result := range results {
		cellNames[result.CellName] = struct{}{}
		received++
	}
	suite.Require().Equal(scans, received)
	suite.Require().Len(cellNames, 1, "All scans of one order must land in a single cell")

	// One cell ended up full with every product, the other stayed empty.
	uow := suite.factory.Create()
	cells, err := uow.CellRepository().GetByGrid(ctx, testGrid.ID())
	suite.Require().NoError(err)

	var fullCells, emptyCells int
	for _, c := range cells {
		switch c.Status() {
		case cell.StatusFull:
			fullCells++
			suite.Equal(scans, c.CurrentCount())
			products, err := uow.ProductRepository().GetByCell(ctx, c.ID())
			suite.Require().NoError(err)
			suite.Len(products, scans)
		case cell.StatusEmpty:
			emptyCells++
		}
	}
	suite.Equal(1, fullCells)
	suite.Equal(1, emptyCells)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
