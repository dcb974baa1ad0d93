package queries_test

import (
	"testing"

	"mercurydash/internal/core/application/usecases/queries"
	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetVisibleOrdersQuery_Valid(t *testing.T) {
	customer, err := actor.NewActor(kernel.NewUUID(), actor.Customer)
	require.NoError(t, err)

	query, err := queries.NewGetVisibleOrdersQuery(customer)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, actor.Customer, query.Actor().Role())
}

func TestNewGetVisibleOrdersQuery_UnconstructedActor(t *testing.T) {
	_, err := queries.NewGetVisibleOrdersQuery(actor.Actor{})

	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}

func TestGetVisibleOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetVisibleOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetVisibleOrdersQueryIsNotConstructed)
}
