package client_test

import (
	"testing"

	"boutique/client"
	"boutique/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	scarlet = models.Product{ID: "scarlet-confession", Name: "Confesiune Scarlet", Price: "249.00"}
	regina  = models.Product{ID: "regina-inimii", Name: "Regina Inimii", Price: "749.00"}
)

func TestCart_AddMergesByProductID(t *testing.T) {
	cart := client.NewCart()

	cart.AddProduct(scarlet)
	cart.AddProduct(regina)
	cart.AddProduct(scarlet)

	items := cart.Items()
	require.Len(t, items, 2, "at most one line per product id")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, cart.Count())
}

func TestCart_UpdateQuantityFloorsAtOne(t *testing.T) {
	cart := client.NewCart()
	cart.AddProduct(scarlet)

	cart.UpdateQuantity("scarlet-confession", 5)
	assert.Equal(t, 5, cart.Items()[0].Quantity)

	cart.UpdateQuantity("scarlet-confession", 0)
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	cart.UpdateQuantity("regina-inimii", 3) // not in cart, ignored
	require.Len(t, cart.Items(), 1)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := client.NewCart()
	cart.AddProduct(scarlet)
	cart.AddProduct(regina)

	cart.RemoveItem("scarlet-confession")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "regina-inimii", items[0].Product.ID)
}

func TestCart_TotalIsExactDecimal(t *testing.T) {
	cart := client.NewCart()
	cart.AddProduct(scarlet)
	cart.UpdateQuantity("scarlet-confession", 2)

	// 249.00 × 2 = 498.00 RON
	assert.Equal(t, "498.00", cart.Total().StringFixed(2))

	cart.AddProduct(regina)
	assert.Equal(t, "1247.00", cart.Total().StringFixed(2))
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	cart := client.NewCart()
	cart.AddProduct(scarlet)

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
