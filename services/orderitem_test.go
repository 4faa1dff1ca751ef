package services

import (
	"testing"

	"restaurant-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrderItemsResolvesMenuNames(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)
	seedMenuItem(t, db, 2, "Soup", 8.0)

	res := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
		Items: []OrderItemRequest{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	})
	require.Equal(t, models.StatusCreated, res.Status)

	details, err := items.List()
	require.NoError(t, err)
	require.Len(t, details, 2)

	names := map[string]bool{}
	for _, d := range details {
		names[d.MenuItemName] = true
		assert.Equal(t, float64(d.Quantity)*d.UnitPrice, d.TotalPrice)
	}
	assert.True(t, names["Pasta"])
	assert.True(t, names["Soup"])
}

func TestListOrderItemsDanglingMenuReference(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	menu := NewMenuItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)

	res := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
		Items:      []OrderItemRequest{{MenuItemID: 1, Quantity: 2}},
	})
	require.Equal(t, models.StatusCreated, res.Status)

	require.Equal(t, models.StatusDeleted, menu.Delete(1).Status)

	details, err := items.List()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Unknown", details[0].MenuItemName)
	// Snapshot pricing survives the menu item's removal.
	assert.Equal(t, 15.0, details[0].UnitPrice)
	assert.Equal(t, 30.0, details[0].TotalPrice)
}

func TestListByOrder(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)

	first := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
		Items:      []OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
	})
	require.Equal(t, models.StatusCreated, first.Status)
	second := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-02",
		CustomerID: &customer.ID,
		Items:      []OrderItemRequest{{MenuItemID: 1, Quantity: 2}},
	})
	require.Equal(t, models.StatusCreated, second.Status)

	details, err := items.ListByOrder(second.CreatedID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, second.CreatedID, details[0].OrderID)
	assert.Equal(t, 2, details[0].Quantity)
}

func TestFindOrderItem(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)

	res := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
		Items:      []OrderItemRequest{{MenuItemID: 1, Quantity: 2}},
	})
	require.Equal(t, models.StatusCreated, res.Status)

	all, err := items.List()
	require.NoError(t, err)
	require.Len(t, all, 1)

	detail, err := items.Find(all[0].OrderItemID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Pasta", detail.MenuItemName)
	assert.Equal(t, 30.0, detail.TotalPrice)

	missing, err := items.Find(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAddOrderItemSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)
	seedMenuItem(t, db, 2, "Soup", 8.0)

	created := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
		Items:      []OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
	})
	require.Equal(t, models.StatusCreated, created.Status)

	res := items.Add(CreateOrderItemRequest{OrderID: created.CreatedID, MenuItemID: 2, Quantity: 3})
	require.Equal(t, models.StatusCreated, res.Status)

	line, err := items.Find(res.CreatedID)
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, 8.0, line.UnitPrice)
	assert.Equal(t, 24.0, line.TotalPrice)

	// The order's derived total picks up the new line.
	summary, err := orders.Find(created.CreatedID)
	require.NoError(t, err)
	assert.Equal(t, 39.0, summary.TotalOrderPrice)
}

func TestAddOrderItemMissingReferences(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)

	created := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
	})
	require.Equal(t, models.StatusCreated, created.Status)

	res := items.Add(CreateOrderItemRequest{OrderID: 999, MenuItemID: 1, Quantity: 1})
	assert.Equal(t, models.StatusReferenceNotFound, res.Status)
	assert.Contains(t, res.Message(), "order 999")

	res = items.Add(CreateOrderItemRequest{OrderID: created.CreatedID, MenuItemID: 777, Quantity: 1})
	assert.Equal(t, models.StatusReferenceNotFound, res.Status)
	assert.Contains(t, res.Message(), "777")

	assert.Zero(t, countRows(t, db, &models.OrderItem{}))
}

func TestUpdateOrderItemRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)

	created := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
		Items:      []OrderItemRequest{{MenuItemID: 1, Quantity: 2}},
	})
	require.Equal(t, models.StatusCreated, created.Status)

	all, err := items.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	lineID := all[0].OrderItemID

	res := items.Update(lineID, UpdateOrderItemRequest{Quantity: 4, UnitPrice: 12.5})
	require.Equal(t, models.StatusUpdated, res.Status)

	line, err := items.Find(lineID)
	require.NoError(t, err)
	assert.Equal(t, 4, line.Quantity)
	assert.Equal(t, 12.5, line.UnitPrice)
	assert.Equal(t, 50.0, line.TotalPrice)
}

func TestUpdateOrderItemValidation(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)

	created := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
		Items:      []OrderItemRequest{{MenuItemID: 1, Quantity: 2}},
	})
	require.Equal(t, models.StatusCreated, created.Status)

	all, err := items.List()
	require.NoError(t, err)
	lineID := all[0].OrderItemID

	res := items.Update(lineID, UpdateOrderItemRequest{OrderItemID: lineID + 1, Quantity: 1, UnitPrice: 1})
	assert.Equal(t, models.StatusInvalid, res.Status)

	res = items.Update(4040, UpdateOrderItemRequest{Quantity: 1, UnitPrice: 1})
	assert.Equal(t, models.StatusNotFound, res.Status)

	res = items.Update(lineID, UpdateOrderItemRequest{MenuItemID: 555, Quantity: 1, UnitPrice: 1})
	assert.Equal(t, models.StatusReferenceNotFound, res.Status)
}

func TestListByMenuItem(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)
	seedMenuItem(t, db, 2, "Soup", 8.0)

	mk := func(reqItems ...OrderItemRequest) {
		res := orders.Create(CreateOrderRequest{
			OrderDate:  "2025-01-01",
			CustomerID: &customer.ID,
			Items:      reqItems,
		})
		require.Equal(t, models.StatusCreated, res.Status)
	}
	mk(OrderItemRequest{MenuItemID: 1, Quantity: 1})
	mk(OrderItemRequest{MenuItemID: 1, Quantity: 2}, OrderItemRequest{MenuItemID: 2, Quantity: 1})

	details, err := items.ListByMenuItem(1)
	require.NoError(t, err)
	require.Len(t, details, 2)
	for _, d := range details {
		assert.Equal(t, uint(1), d.MenuItemID)
		assert.Equal(t, "Pasta", d.MenuItemName)
	}

	none, err := items.ListByMenuItem(42)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListByCustomer(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	other := seedCustomer(t, db, "Ravi")
	seedMenuItem(t, db, 1, "Pasta", 15.0)
	seedMenuItem(t, db, 2, "Soup", 8.0)

	mk := func(cid uint, reqItems ...OrderItemRequest) {
		id := cid
		res := orders.Create(CreateOrderRequest{
			OrderDate:  "2025-01-01",
			CustomerID: &id,
			Items:      reqItems,
		})
		require.Equal(t, models.StatusCreated, res.Status)
	}
	mk(customer.ID, OrderItemRequest{MenuItemID: 1, Quantity: 2})
	mk(customer.ID, OrderItemRequest{MenuItemID: 2, Quantity: 1})
	mk(other.ID, OrderItemRequest{MenuItemID: 2, Quantity: 5})

	rows, err := items.ListByCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	names := map[string]bool{}
	for _, row := range rows {
		assert.Equal(t, "Isha", row.CustomerName)
		names[row.MenuItemName] = true
	}
	assert.True(t, names["Pasta"])
	assert.True(t, names["Soup"])

	missing, err := items.ListByCustomer(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteOrderItem(t *testing.T) {
	db := newTestDB(t)
	items := NewOrderItemService(db)
	orders := NewOrderService(db)

	customer := seedCustomer(t, db, "Isha")
	seedMenuItem(t, db, 1, "Pasta", 15.0)

	res := orders.Create(CreateOrderRequest{
		OrderDate:  "2025-01-01",
		CustomerID: &customer.ID,
		Items:      []OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
	})
	require.Equal(t, models.StatusCreated, res.Status)

	details, err := items.List()
	require.NoError(t, err)
	require.Len(t, details, 1)

	require.Equal(t, models.StatusDeleted, items.Delete(details[0].OrderItemID).Status)
	assert.Equal(t, models.StatusNotFound, items.Delete(details[0].OrderItemID).Status)
	assert.Zero(t, countRows(t, db, &models.OrderItem{}))
}
