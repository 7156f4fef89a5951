package repository

import (
	"testing"

	"go-restaurant-ws/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductsCRUD(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryProducts(store)

	p := &model.Product{ID: "1", Name: "Mussarela", Stock: 15, MinStock: 20, Unit: "kg", Category: "Queijos"}
	require.NoError(t, repo.Create(p))

	got, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Mussarela", got.Name)

	got.Stock = 25
	require.NoError(t, repo.Update(got))

	// the earlier read is a copy; only the stored record changed
	stored, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Stock)

	require.NoError(t, repo.Delete("1"))
	_, err = repo.FindByID("1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete("1"), ErrNotFound)
}

func TestMemoryProductsFilter(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryProducts(store)

	seed := []model.Product{
		{ID: "1", Name: "Pizza Margherita", Category: "Pizzas"},
		{ID: "2", Name: "Pizza Calabresa", Category: "Pizzas"},
		{ID: "3", Name: "Refrigerante 2L", Category: "Bebidas"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(&seed[i]))
	}

	cases := []struct {
		name   string
		filter ProductFilter
		want   int
	}{
		{"no filter", ProductFilter{}, 3},
		{"category all", ProductFilter{Category: "all"}, 3},
		{"category exact", ProductFilter{Category: "Pizzas"}, 2},
		{"search case-insensitive", ProductFilter{Search: "pIzZa"}, 2},
		{"search and category", ProductFilter{Search: "cala", Category: "Pizzas"}, 1},
		{"no match", ProductFilter{Search: "sushi"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.FindAll(tc.filter)
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestMemoryProductsPreserveInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryProducts(store)

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, repo.Create(&model.Product{ID: id, Name: "p" + id}))
	}

	got, err := repo.FindAll(ProductFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestMemoryOrdersUpdateStatus(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryOrders(store)

	require.NoError(t, repo.Create(&model.Order{ID: "1", Status: model.OrderPending}))
	require.NoError(t, repo.UpdateStatus("1", model.OrderCompleted))

	got, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderCompleted, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus("9", model.OrderCompleted), ErrNotFound)
}

func TestMemoryOrdersCopyOutIsDeep(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryOrders(store)

	require.NoError(t, repo.Create(&model.Order{
		ID:     "1",
		Status: model.OrderPending,
		Items:  []model.OrderItem{{Name: "Pizza Margherita", Quantity: 2, Price: 45.90}},
	}))

	got, err := repo.FindByID("1")
	require.NoError(t, err)
	got.Items[0].Quantity = 99

	all, err := repo.FindAll()
	require.NoError(t, err)
	all[0].Items[0].Quantity = 77

	stored, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity, "mutating a returned order must not reach the stored items")
}

func TestMemoryTablesCopyOutIsDeep(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryTables(store)

	customers := 4
	startTime := "19:30"
	require.NoError(t, repo.Create(&model.Table{
		ID:        1,
		Status:    model.TableOccupied,
		Customers: &customers,
		StartTime: &startTime,
	}))

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	*got.Customers = 99
	*got.StartTime = "23:59"

	all, err := repo.FindAll()
	require.NoError(t, err)
	*all[0].Customers = 77

	stored, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 4, *stored.Customers, "mutating a returned table must not reach the stored record")
	assert.Equal(t, "19:30", *stored.StartTime)
}

func TestMemoryTablesUpdate(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryTables(store)

	require.NoError(t, repo.Create(&model.Table{ID: 1, Status: model.TableAvailable}))

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	got.Status = model.TableReserved
	require.NoError(t, repo.Update(got))

	stored, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, model.TableReserved, stored.Status)

	_, err = repo.FindByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMovementsAppend(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryMovements(store)

	require.NoError(t, repo.Create(&model.StockMovement{ID: "1", ProductID: "1", Type: model.MovementIn, Quantity: 10}))
	require.NoError(t, repo.Create(&model.StockMovement{ID: "2", ProductID: "1", Type: model.MovementOut, Quantity: 3}))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, model.MovementIn, all[0].Type)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
