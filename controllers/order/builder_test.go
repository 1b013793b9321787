package orderControllers

import (
	"testing"

	"github.com/kajanthann/E-COM-FOREVER/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullAddress = models.Address{
	FirstName: "Ada",
	LastName:  "Lovelace",
	Email:     "ada@example.com",
	Street:    "1 Analytical Way",
	City:      "London",
	State:     "LDN",
	Zipcode:   "E1 6AN",
	Country:   "UK",
	Phone:     "+44 20 0000 0000",
}

func fixedPrices(prices map[string]float64) func(string) (float64, bool) {
	return func(id string) (float64, bool) {
		price, ok := prices[id]
		return price, ok
	}
}

func TestBuildOrderRejectsEmptyCart(t *testing.T) {
	_, err := BuildOrder("u1", models.CartMap{}, fixedPrices(nil), fullAddress, "cod")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildOrderRejectsCartWithOnlyUnresolvableItems(t *testing.T) {
	cart := models.CartMap{"gone": {"M": 2}}
	_, err := BuildOrder("u1", cart, fixedPrices(nil), fullAddress, "cod")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildOrderListsEveryMissingAddressField(t *testing.T) {
	cart := models.CartMap{"p1": {"M": 1}}
	addr := models.Address{FirstName: "Ada", Email: "ada@example.com"}

	_, err := BuildOrder("u1", cart, fixedPrices(map[string]float64{"p1": 20}), addr, "cod")

	var addrErr *InvalidAddressError
	require.ErrorAs(t, err, &addrErr)
	assert.ElementsMatch(t, []string{
		"lastName", "street", "city", "state", "zipcode", "country", "phone",
	}, addrErr.Missing)
}

func TestBuildOrderComputesAmountWithDeliveryFee(t *testing.T) {
	cart := models.CartMap{"p1": {"M": 2}}

	order, err := BuildOrder("u1", cart, fixedPrices(map[string]float64{"p1": 20}), fullAddress, "cod")
	require.NoError(t, err)

	assert.Equal(t, 40.0+DeliveryFee, order.Amount)
	assert.Equal(t, models.StatusOrderPlaced, order.Status)
	assert.False(t, order.Payment)
	assert.Equal(t, "u1", order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, "M", order.Items[0].Size)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 20.0, order.Items[0].Price)
}

func TestBuildOrderFreezesPricesAtBuildTime(t *testing.T) {
	cart := models.CartMap{"p1": {"M": 1}}
	prices := map[string]float64{"p1": 20}

	order, err := BuildOrder("u1", cart, fixedPrices(prices), fullAddress, "cod")
	require.NoError(t, err)

	// A later catalog price change never touches the placed order.
	prices["p1"] = 99
	assert.Equal(t, 20.0, order.Items[0].Price)
	assert.Equal(t, 30.0, order.Amount)
}

func TestBuildOrderSkipsDeletedProducts(t *testing.T) {
	cart := models.CartMap{
		"p1":   {"M": 1},
		"gone": {"L": 5},
	}

	order, err := BuildOrder("u1", cart, fixedPrices(map[string]float64{"p1": 20}), fullAddress, "cod")
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 20.0+DeliveryFee, order.Amount)
}

func TestBuildOrderFlattensDeterministically(t *testing.T) {
	cart := models.CartMap{
		"b": {"M": 1},
		"a": {"S": 2, "L": 3},
	}
	prices := fixedPrices(map[string]float64{"a": 1, "b": 2})

	order, err := BuildOrder("u1", cart, prices, fullAddress, "cod")
	require.NoError(t, err)

	require.Len(t, order.Items, 3)
	assert.Equal(t, "a", order.Items[0].ProductID)
	assert.Equal(t, "L", order.Items[0].Size)
	assert.Equal(t, "a", order.Items[1].ProductID)
	assert.Equal(t, "S", order.Items[1].Size)
	assert.Equal(t, "b", order.Items[2].ProductID)
}
