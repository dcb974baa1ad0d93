package orderrepo

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
	"mercurydash/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordingTracker struct {
	tracked []kernel.UUID
}

func (t *recordingTracker) TrackAggregate(id kernel.UUID, _ any) {
	t.tracked = append(t.tracked, id)
}

func newMockRepo(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *recordingTracker) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	tracker := &recordingTracker{}
	return NewGormOrderRepository(db, tracker), mock, tracker
}

func claimedOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.NewPriceFromCents(1850)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"221B Baker Street", price, time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, o.Accept())
	require.NoError(t, o.Claim(driverID))
	return o
}

func TestGormOrderRepository_UpdateFromStatus_ClaimGuard(t *testing.T) {
	repo, mock, tracker := newMockRepo(t)
	driverID := kernel.NewUUID()
	o := claimedOrder(t, driverID)

	// The pick-up edge must guard on both the prior status and the driver
	// column being empty.
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "orders" SET "driver_id"=$1,"status"=$2 WHERE (id = $3 AND status = $4) AND driver_id IS NULL`,
	)).
		WithArgs(driverID.Bytes(), order.OutForDelivery.String(), o.ID().Bytes(), order.Accepted.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateFromStatus(t.Context(), o, order.Accepted)

	require.NoError(t, err)
	require.Len(t, tracker.tracked, 1)
	assert.True(t, tracker.tracked[0].IsEqual(o.ID()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_UpdateFromStatus_ZeroRowsIsConflict(t *testing.T) {
	repo, mock, tracker := newMockRepo(t)
	o := claimedOrder(t, kernel.NewUUID())

	mock.ExpectExec(`UPDATE "orders" SET .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFromStatus(t.Context(), o, order.Accepted)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	assert.Empty(t, tracker.tracked, "losing writes are not tracked")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_UpdateFromStatus_NoDriverGuardOffClaimEdge(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	driverID := kernel.NewUUID()
	o := claimedOrder(t, driverID)
	require.NoError(t, o.CompleteDelivery(driverID))

	// The delivery edge guards on status alone; the driver column is
	// already bound and stays bound.
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "orders" SET "driver_id"=$1,"status"=$2 WHERE id = $3 AND status = $4`,
	)).
		WithArgs(driverID.Bytes(), order.Delivered.String(), o.ID().Bytes(), order.OutForDelivery.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateFromStatus(t.Context(), o, order.OutForDelivery)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_Add(t *testing.T) {
	repo, mock, tracker := newMockRepo(t)

	price, err := kernel.NewPriceFromCents(999)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"4 Privet Drive", price, time.Now(),
	)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "orders" .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Add(t.Context(), o))
	require.Len(t, tracker.tracked, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_Get_NotFound(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	id := kernel.NewUUID()

	mock.ExpectQuery(`SELECT \* FROM "orders" .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(t.Context(), id)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_Get_RoundTrip(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	driverID := kernel.NewUUID()
	o := claimedOrder(t, driverID)

	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "restaurant_id", "driver_id",
		"delivery_address", "total_price_cents", "status", "created_at",
	}).AddRow(
		o.ID().Bytes().String(), o.Customer().Bytes().String(), o.Restaurant().Bytes().String(),
		sql.NullString{String: driverID.String(), Valid: true},
		o.DeliveryAddress(), o.TotalPrice().Cents(), o.Status().String(), o.CreatedAt(),
	)

	mock.ExpectQuery(`SELECT \* FROM "orders" .+`).WillReturnRows(rows)

	restored, err := repo.Get(t.Context(), o.ID())

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(o))
	assert.Equal(t, order.OutForDelivery, restored.Status())
	require.NotNil(t, restored.Driver())
	assert.True(t, restored.Driver().IsEqual(driverID))
	require.NoError(t, mock.ExpectationsWereMet())
}
