package identity_test

import (
	"testing"
	"time"

	"mercurydash/internal/adapters/out/identity"
	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, secret string) identity.TokenService {
	t.Helper()
	svc, err := identity.NewTokenService([]byte(secret), time.Hour)
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newService(t, "test-secret")
	driver, err := actor.NewActor(kernel.NewUUID(), actor.Driver)
	require.NoError(t, err)

	token, err := svc.Issue(driver, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	act, err := svc.Verify(token)
	require.NoError(t, err)
	assert.True(t, act.ID().IsEqual(driver.ID()))
	assert.Equal(t, actor.Driver, act.Role())
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuing := newService(t, "secret-a")
	verifying := newService(t, "secret-b")
	customer, err := actor.NewActor(kernel.NewUUID(), actor.Customer)
	require.NoError(t, err)

	token, err := issuing.Issue(customer, time.Now())
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	require.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := newService(t, "test-secret")
	owner, err := actor.NewActor(kernel.NewUUID(), actor.RestaurantOwner)
	require.NoError(t, err)

	token, err := svc.Issue(owner, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := newService(t, "test-secret")

	_, err := svc.Verify("not.a.token")
	require.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := identity.NewTokenService(nil, time.Hour)
	require.ErrorIs(t, err, identity.ErrSecretIsRequired)
}
