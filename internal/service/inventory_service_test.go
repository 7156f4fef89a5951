package service

import (
	"testing"
	"time"

	"go-restaurant-ws/internal/model"
	"go-restaurant-ws/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryFixture() (InventoryService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	svc := NewInventoryService(
		repository.NewMemoryProducts(store),
		repository.NewMemoryMovements(store),
		nil,
	)
	return svc, store
}

func validProduct() *model.Product {
	return &model.Product{
		Name:     "Mussarela",
		Price:    38.00,
		Stock:    15,
		MinStock: 20,
		Unit:     "kg",
		Category: "Queijos",
	}
}

func TestCreateProductAssignsSequentialIDAndDate(t *testing.T) {
	svc, _ := newInventoryFixture()

	created, err := svc.CreateProduct(validProduct())
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
	assert.Equal(t, time.Now().Format("2006-01-02"), created.LastUpdated)

	second := validProduct()
	second.Name = "Provolone"
	created, err = svc.CreateProduct(second)
	require.NoError(t, err)
	assert.Equal(t, "2", created.ID)

	products, err := svc.ListProducts(repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCreateProductMissingFieldLeavesCatalogUnchanged(t *testing.T) {
	svc, _ := newInventoryFixture()

	cases := []struct {
		name string
		req  *model.Product
	}{
		{"missing name", &model.Product{Stock: 10, MinStock: 5, Unit: "kg", Category: "Queijos"}},
		{"missing stock", &model.Product{Name: "Parmesão", MinStock: 5, Unit: "kg", Category: "Queijos"}},
		{"missing min stock", &model.Product{Name: "Parmesão", Stock: 10, Unit: "kg", Category: "Queijos"}},
		{"missing unit", &model.Product{Name: "Parmesão", Stock: 10, MinStock: 5, Category: "Queijos"}},
		{"missing category", &model.Product{Name: "Parmesão", Stock: 10, MinStock: 5, Unit: "kg"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(tc.req)
			require.Error(t, err)

			products, listErr := svc.ListProducts(repository.ProductFilter{})
			require.NoError(t, listErr)
			assert.Empty(t, products)
		})
	}
}

func TestListProductsFilter(t *testing.T) {
	svc, _ := newInventoryFixture()

	seed := []*model.Product{
		{Name: "Pizza Margherita", Stock: 30, MinStock: 10, Unit: "un", Category: "Pizzas"},
		{Name: "Pizza Calabresa", Stock: 25, MinStock: 10, Unit: "un", Category: "Pizzas"},
		{Name: "Refrigerante 2L", Stock: 45, MinStock: 30, Unit: "un", Category: "Bebidas"},
	}
	for _, p := range seed {
		_, err := svc.CreateProduct(p)
		require.NoError(t, err)
	}

	all, err := svc.ListProducts(repository.ProductFilter{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pizzas, err := svc.ListProducts(repository.ProductFilter{Category: "Pizzas"})
	require.NoError(t, err)
	assert.Len(t, pizzas, 2)
	for _, p := range pizzas {
		assert.Equal(t, "Pizzas", p.Category)
	}

	// substring match is case-insensitive and combines with category
	matched, err := svc.ListProducts(repository.ProductFilter{Search: "MARGHERITA", Category: "Pizzas"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Pizza Margherita", matched[0].Name)

	none, err := svc.ListProducts(repository.ProductFilter{Search: "margherita", Category: "Bebidas"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLowStockFlagFollowsStockLevel(t *testing.T) {
	svc, _ := newInventoryFixture()

	created, err := svc.CreateProduct(validProduct())
	require.NoError(t, err)

	products, err := svc.ListProducts(repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].LowStock, "stock 15 below min 20 must flag low stock")

	update := validProduct()
	update.Stock = 25
	_, err = svc.UpdateProduct(created.ID, update)
	require.NoError(t, err)

	products, err = svc.ListProducts(repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.False(t, products[0].LowStock)
}

func TestUpdateProductRecordsStockMovement(t *testing.T) {
	svc, _ := newInventoryFixture()

	created, err := svc.CreateProduct(validProduct())
	require.NoError(t, err)

	up := validProduct()
	up.Stock = 25
	_, err = svc.UpdateProduct(created.ID, up)
	require.NoError(t, err)

	down := validProduct()
	down.Stock = 18
	_, err = svc.UpdateProduct(created.ID, down)
	require.NoError(t, err)

	movements, err := svc.ListMovements()
	require.NoError(t, err)
	require.Len(t, movements, 2)

	assert.Equal(t, model.MovementIn, movements[0].Type)
	assert.Equal(t, 10, movements[0].Quantity)
	assert.Equal(t, created.ID, movements[0].ProductID)

	assert.Equal(t, model.MovementOut, movements[1].Type)
	assert.Equal(t, 7, movements[1].Quantity)
}

func TestUpdateWithoutStockChangeRecordsNothing(t *testing.T) {
	svc, _ := newInventoryFixture()

	created, err := svc.CreateProduct(validProduct())
	require.NoError(t, err)

	rename := validProduct()
	rename.Name = "Mussarela de Búfala"
	_, err = svc.UpdateProduct(created.ID, rename)
	require.NoError(t, err)

	movements, err := svc.ListMovements()
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := newInventoryFixture()

	_, err := svc.UpdateProduct("42", validProduct())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newInventoryFixture()

	created, err := svc.CreateProduct(validProduct())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(created.ID))

	products, err := svc.ListProducts(repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)

	assert.ErrorIs(t, svc.DeleteProduct(created.ID), ErrProductNotFound)
}
