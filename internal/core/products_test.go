package core

import (
	"testing"

	"demo-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRoundTrip(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateProduct(models.CreateProductRequest{
		Name:  "Monitor",
		Price: 249.99,
		Stock: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, "General", created.Category, "category defaults to General")

	got, err := svc.GetProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateProductRequest
	}{
		{name: "missing name", req: models.CreateProductRequest{Price: 10}},
		{name: "zero price", req: models.CreateProductRequest{Name: "Pen", Price: 0}},
		{name: "negative price", req: models.CreateProductRequest{Name: "Pen", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			_, err := svc.CreateProduct(tt.req)
			requireKind(t, err, KindInvalidInput)
		})
	}
}

func TestListProductsCategoryFilter(t *testing.T) {
	svc := newTestService()

	all := svc.ListProducts("")
	assert.Len(t, all, 4)

	electronics := svc.ListProducts("Electronics")
	require.Len(t, electronics, 2)
	assert.Equal(t, "Laptop", electronics[0].Name, "insertion order preserved")
	assert.Equal(t, "Headphones", electronics[1].Name)

	// Filter match is case-insensitive.
	assert.Len(t, svc.ListProducts("electronics"), 2)
	assert.Len(t, svc.ListProducts("FURNITURE"), 1)
	assert.Empty(t, svc.ListProducts("Groceries"))
}

func TestUpdateProductCoalesces(t *testing.T) {
	svc := newTestService()

	p, err := svc.UpdateProduct(4, models.UpdateProductRequest{
		Price: floatPtr(5.99),
		Stock: intPtr(900),
	})
	require.NoError(t, err)
	assert.Equal(t, "Notebook", p.Name)
	assert.Equal(t, 5.99, p.Price)
	assert.Equal(t, 900, p.Stock)
	assert.Equal(t, "Stationery", p.Category)

	_, err = svc.UpdateProduct(99, models.UpdateProductRequest{})
	requireKind(t, err, KindNotFound)
}

func TestSearchProducts(t *testing.T) {
	svc := newTestService()

	results, err := svc.SearchProducts("note")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Notebook", results[0].Name)

	results, err = svc.SearchProducts("HEAD")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Headphones", results[0].Name)

	results, err = svc.SearchProducts("zzz")
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = svc.SearchProducts("   ")
	requireKind(t, err, KindInvalidInput)
}

func TestSetStock(t *testing.T) {
	svc := newTestService()

	p, err := svc.SetStock(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, "Laptop", p.Name, "only stock changes")
	assert.Equal(t, 999.99, p.Price)

	_, err = svc.SetStock(99, 5)
	requireKind(t, err, KindNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.DeleteProduct(4))
	assert.Len(t, svc.ListProducts(""), 3)
	requireKind(t, svc.DeleteProduct(4), KindNotFound)
}
