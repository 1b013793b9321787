package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/kajanthann/E-COM-FOREVER/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, users UserStore, id string) {
	t.Helper()
	require.NoError(t, users.Create(&models.User{
		ID:       id,
		Name:     "Test User",
		Email:    id + "@example.com",
		Password: "x",
		CartData: models.CartMap{},
	}))
}

func TestUserStoreCartRoundTrip(t *testing.T) {
	s := NewMemory()
	seedUser(t, s.Users, "u1")

	require.NoError(t, s.Users.SaveCart("u1", models.CartMap{"p1": {"M": 2}}))

	user, err := s.Users.ByID("u1")
	require.NoError(t, err)
	assert.True(t, user.CartData.Equal(models.CartMap{"p1": {"M": 2}}))
}

func TestUserStoreSaveCartNormalizes(t *testing.T) {
	s := NewMemory()
	seedUser(t, s.Users, "u1")

	require.NoError(t, s.Users.SaveCart("u1", models.CartMap{"p1": {"M": 0}, "p2": {"L": 1}}))

	user, err := s.Users.ByID("u1")
	require.NoError(t, err)
	assert.True(t, user.CartData.Equal(models.CartMap{"p2": {"L": 1}}))
}

func TestUserStoreNotFound(t *testing.T) {
	s := NewMemory()

	_, err := s.Users.ByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Users.SaveCart("missing", models.CartMap{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	s := NewMemory()
	seedUser(t, s.Users, "u1")

	err := s.Users.Create(&models.User{ID: "u2", Email: "u1@example.com"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserStoreReadsAreCopies(t *testing.T) {
	s := NewMemory()
	seedUser(t, s.Users, "u1")
	require.NoError(t, s.Users.SaveCart("u1", models.CartMap{"p1": {"M": 1}}))

	user, err := s.Users.ByID("u1")
	require.NoError(t, err)
	user.CartData["p1"]["M"] = 99

	again, err := s.Users.ByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.CartData["p1"]["M"])
}

func TestOrderStoreConflictOnDuplicateID(t *testing.T) {
	s := NewMemory()
	order := &models.Order{ID: "o1", UserID: "u1", CreatedAt: time.Now()}

	require.NoError(t, s.Orders.Insert(order))
	assert.ErrorIs(t, s.Orders.Insert(&models.Order{ID: "o1"}), ErrConflict)
}

func TestOrderStoreSortsNewestFirst(t *testing.T) {
	s := NewMemory()
	base := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Orders.Insert(&models.Order{
			ID:        fmt.Sprintf("o%d", i),
			UserID:    "u1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	orders, err := s.Orders.ByUser("u1")
	require.NoError(t, err)
	require.Len(t, orders, 5)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt),
			"orders must be sorted newest first")
	}
	assert.Equal(t, "o4", orders[0].ID)

	all, err := s.Orders.All()
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "o4", all[0].ID)
	assert.Equal(t, "o0", all[4].ID)
}

func TestOrderStoreTieBreakByInsertionOrder(t *testing.T) {
	s := NewMemory()
	now := time.Now()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Orders.Insert(&models.Order{
			ID:        fmt.Sprintf("o%d", i),
			UserID:    "u1",
			CreatedAt: now,
		}))
	}

	orders, err := s.Orders.ByUser("u1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	// Same timestamp: later insertions come first.
	assert.Equal(t, "o2", orders[0].ID)
	assert.Equal(t, "o1", orders[1].ID)
	assert.Equal(t, "o0", orders[2].ID)
}

func TestOrderStoreUpdateStatus(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Orders.Insert(&models.Order{
		ID: "o1", UserID: "u1", Status: models.StatusOrderPlaced, CreatedAt: time.Now(),
	}))

	require.NoError(t, s.Orders.UpdateStatus("o1", models.StatusShipped))

	orders, err := s.Orders.ByUser("u1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, orders[0].Status)

	assert.ErrorIs(t, s.Orders.UpdateStatus("missing", models.StatusShipped), ErrNotFound)
}

func TestProductStorePriceOf(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Products.Create(&models.Product{ID: "p1", Name: "Shirt", Price: 20}))

	price, ok := s.Products.PriceOf("p1")
	assert.True(t, ok)
	assert.Equal(t, 20.0, price)

	_, ok = s.Products.PriceOf("missing")
	assert.False(t, ok)
}

func TestProductStoreDelete(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Products.Create(&models.Product{ID: "p1", Name: "Shirt", Price: 20}))

	require.NoError(t, s.Products.Delete("p1"))
	assert.ErrorIs(t, s.Products.Delete("p1"), ErrNotFound)
	_, err := s.Products.ByID("p1")
	assert.ErrorIs(t, err, ErrNotFound)
}
