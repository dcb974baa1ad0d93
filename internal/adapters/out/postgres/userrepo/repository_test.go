package userrepo

import (
	"regexp"
	"testing"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/user"
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

func newMockRepo(t *testing.T) (*GormUserRepository, sqlmock.Sqlmock, *recordingTracker) {
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
	return NewGormUserRepository(db, tracker), mock, tracker
}

func TestGormUserRepository_Add(t *testing.T) {
	repo, mock, tracker := newMockRepo(t)

	u, err := user.NewUser(kernel.NewUUID(), "dave@example.com", "Dave", actor.Driver)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WithArgs(u.ID().Bytes(), "dave@example.com", "Dave", "driver").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Add(t.Context(), u)

	require.NoError(t, err)
	require.Len(t, tracker.tracked, 1)
	assert.True(t, u.ID().IsEqual(tracker.tracked[0]))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_GetByEmail(t *testing.T) {
	t.Run("restores the record with its wire-form role", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)
		id := kernel.NewUUID()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WithArgs("olga@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role"}).
				AddRow(id.String(), "olga@example.com", "Olga", "restaurant_owner"))

		u, err := repo.GetByEmail(t.Context(), "olga@example.com")

		require.NoError(t, err)
		assert.True(t, id.IsEqual(u.ID()))
		assert.Equal(t, actor.RestaurantOwner, u.Role())
	})

	t.Run("empty email is rejected before hitting the database", func(t *testing.T) {
		repo, _, _ := newMockRepo(t)

		_, err := repo.GetByEmail(t.Context(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WithArgs("ghost@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role"}))

		_, err := repo.GetByEmail(t.Context(), "ghost@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
