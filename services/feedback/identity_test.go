package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentityCustomer(t *testing.T) {
	identity := ResolveIdentity("cust-123", "")

	assert.Equal(t, ClassCustomer, identity.Class)
	assert.Equal(t, "customer:cust-123", identity.Key)
}

func TestResolveIdentityTokenWinsOverPhone(t *testing.T) {
	identity := ResolveIdentity("cust-123", "9876543210")

	assert.Equal(t, ClassCustomer, identity.Class)
	assert.Equal(t, "customer:cust-123", identity.Key)
}

func TestResolveIdentityGuest(t *testing.T) {
	identity := ResolveIdentity("", "9876543210")

	assert.Equal(t, ClassGuest, identity.Class)
	assert.Equal(t, "guest:9876543210", identity.Key)
}

func TestResolveIdentityAnonymous(t *testing.T) {
	identity := ResolveIdentity("", "")

	assert.Equal(t, ClassAnonymous, identity.Class)
	assert.Empty(t, identity.Key)
}

func TestResolveIdentityKeysNeverCollide(t *testing.T) {
	// A guest phone equal to a customer token must map to a different key.
	customer := ResolveIdentity("9876543210", "")
	guest := ResolveIdentity("", "9876543210")

	assert.NotEqual(t, customer.Key, guest.Key)
}
