package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"mercurydash/internal/adapters/out/postgres/orderrepo"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
	"mercurydash/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) newAcceptedOrder() *order.Order {
	price, err := kernel.NewPriceFromCents(2200)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"1600 Pennsylvania Avenue", price, time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Accept())
	return o
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newAcceptedOrder()

	suite.Require().NoError(suite.repo.Add(ctx, o))

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(o))
	suite.Equal(order.Accepted, restored.Status())
	suite.Equal(o.DeliveryAddress(), restored.DeliveryAddress())
	suite.Equal(o.TotalPrice().Cents(), restored.TotalPrice().Cents())
	suite.Nil(restored.Driver())
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGetAll_SortedByCreation() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)
	price, err := kernel.NewPriceFromCents(500)
	suite.Require().NoError(err)

	var want []kernel.UUID
	for i := 0; i < 3; i++ {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"somewhere", price, base.Add(time.Duration(i)*time.Second),
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repo.Add(ctx, o))
		want = append(want, o.ID())
	}

	orders, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	for i, o := range orders {
		suite.True(o.ID().IsEqual(want[i]))
	}
}

func (suite *OrderRepositoryTestSuite) TestUpdateFromStatus_StaleGuardFails() {
	ctx := context.Background()
	o := suite.newAcceptedOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(o.Claim(kernel.NewUUID()))

	err := suite.repo.UpdateFromStatus(ctx, o, order.Pending)
	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)
}

// TestUpdateFromStatus_TwoDriverRace races two claims for the same order.
// Exactly one write must land; the other must observe the conflict.
func (suite *OrderRepositoryTestSuite) TestUpdateFromStatus_TwoDriverRace() {
	ctx := context.Background()
	o := suite.newAcceptedOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	driver1 := kernel.NewUUID()
	driver2 := kernel.NewUUID()

	claim := func(driverID kernel.UUID) error {
		local, err := suite.repo.Get(ctx, o.ID())
		if err != nil {
			return err
		}
		if err := local.Claim(driverID); err != nil {
			return err
		}
		return suite.repo.UpdateFromStatus(ctx, local, order.Accepted)
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, driverID := range []kernel.UUID{driver1, driver2} {
		wg.Add(1)
		go func(i int, driverID kernel.UUID) {
			defer wg.Done()
			results[i] = claim(driverID)
		}(i, driverID)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		default:
			suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)
			conflicts++
		}
	}
	suite.Equal(1, wins, "exactly one driver wins")
	suite.Equal(1, conflicts)

	stored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, stored.Status())
	suite.Require().NotNil(stored.Driver())
	winner := *stored.Driver()
	suite.True(winner.IsEqual(driver1) || winner.IsEqual(driver2))
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryTestSuite))
}
