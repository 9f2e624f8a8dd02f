package service

import (
	"context"
	"strings"
	"testing"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/apperror"
	"github.com/google/uuid"
)

func newProductFixture() (*ProductService, *memProductRepo) {
	products := newMemProductRepo()
	return NewProductService(products), products
}

func strPtr(s string) *string { return &s }

func TestCreateProduct(t *testing.T) {
	svc, _ := newProductFixture()

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:              "Widget",
		SKU:               "WID-001",
		Price:             19.99,
		Cost:              8.50,
		StockQuantity:     40,
		LowStockThreshold: 10,
		Category:          strPtr("Gadgets"),
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	if product.Price != 1999 {
		t.Errorf("price = %d cents, want 1999", product.Price)
	}
	if product.Cost != 850 {
		t.Errorf("cost = %d cents, want 850", product.Cost)
	}
	if !product.IsActive {
		t.Error("new product should default to active")
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newProductFixture()

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:  "",
		SKU:   "",
		Price: -5,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Fatalf("code = %d, want 422", appErr.Code)
	}

	fields := make(map[string]bool)
	for _, fe := range appErr.Errors {
		fields[fe.Field] = true
	}
	for _, want := range []string{"name", "sku", "price"} {
		if !fields[want] {
			t.Errorf("missing field error for %q", want)
		}
	}
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	svc, _ := newProductFixture()

	input := &CreateProductInput{Name: "Widget", SKU: "WID-001", Price: 10, Cost: 5}
	if _, err := svc.CreateProduct(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Other Widget", SKU: "WID-001", Price: 12, Cost: 6,
	})
	if err == nil {
		t.Fatal("expected conflict error for duplicate SKU")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 409 {
		t.Errorf("code = %d, want 409", appErr.Code)
	}
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := newProductFixture()

	created, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Widget", SKU: "WID-001", Price: 10, Cost: 5, StockQuantity: 20,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := 12.50
	updated, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ProductID: created.ID,
		Price:     &newPrice,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 1250 {
		t.Errorf("price = %d, want 1250", updated.Price)
	}
	if updated.Name != "Widget" {
		t.Errorf("name changed unexpectedly to %q", updated.Name)
	}
}

func TestUpdateProductSKUConflict(t *testing.T) {
	svc, _ := newProductFixture()

	first, _ := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "First", SKU: "SKU-A", Price: 10, Cost: 5,
	})
	if _, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Second", SKU: "SKU-B", Price: 10, Cost: 5,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	taken := "SKU-B"
	_, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ProductID: first.ID,
		SKU:       &taken,
	})
	if err == nil {
		t.Fatal("expected conflict for SKU taken by another product")
	}

	// Re-submitting the product's own SKU is not a conflict
	own := "SKU-A"
	if _, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ProductID: first.ID,
		SKU:       &own,
	}); err != nil {
		t.Fatalf("updating with own SKU failed: %v", err)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := newProductFixture()

	name := "Nope"
	_, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ProductID: uuid.New(),
		Name:      &name,
	})
	if err == nil {
		t.Fatal("expected not found error")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}

func TestLowStockBoundary(t *testing.T) {
	svc, products := newProductFixture()

	atThreshold := products.add(entity.Product{
		Name: "At Threshold", SKU: "AT-1", StockQuantity: 5, LowStockThreshold: 5, IsActive: true,
	})
	products.add(entity.Product{
		Name: "Above Threshold", SKU: "AB-1", StockQuantity: 6, LowStockThreshold: 5, IsActive: true,
	})
	products.add(entity.Product{
		Name: "Inactive Low", SKU: "IN-1", StockQuantity: 0, LowStockThreshold: 5, IsActive: false,
	})

	low, err := svc.GetLowStockProducts(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetLowStockProducts failed: %v", err)
	}
	if len(low) != 1 {
		t.Fatalf("low stock count = %d, want 1", len(low))
	}
	if low[0].ID != atThreshold {
		t.Errorf("wrong product flagged: %s", low[0].Name)
	}
	if !low[0].IsLowStock() {
		t.Error("IsLowStock should be true at the threshold")
	}
}

func TestReduceStock(t *testing.T) {
	svc, products := newProductFixture()
	id := products.add(entity.Product{
		Name: "Widget", SKU: "WID-001", StockQuantity: 10, IsActive: true,
	})

	if err := svc.ReduceStock(context.Background(), id, 4); err != nil {
		t.Fatalf("ReduceStock failed: %v", err)
	}
	if stock := products.stockOf(id); stock != 6 {
		t.Errorf("stock = %d, want 6", stock)
	}
}

func TestReduceStockInsufficient(t *testing.T) {
	svc, products := newProductFixture()
	id := products.add(entity.Product{
		Name: "Widget", SKU: "WID-001", StockQuantity: 3, IsActive: true,
	})

	err := svc.ReduceStock(context.Background(), id, 5)
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	appErr := apperror.GetAppError(err)
	if !strings.Contains(appErr.Message, "Available: 3") {
		t.Errorf("message = %q, want available count", appErr.Message)
	}
	if stock := products.stockOf(id); stock != 3 {
		t.Errorf("stock changed to %d on failure", stock)
	}
}

func TestReduceStockInvalidQuantity(t *testing.T) {
	svc, products := newProductFixture()
	id := products.add(entity.Product{
		Name: "Widget", SKU: "WID-001", StockQuantity: 3, IsActive: true,
	})

	if err := svc.ReduceStock(context.Background(), id, 0); err == nil {
		t.Fatal("expected error for zero quantity")
	}
	if err := svc.ReduceStock(context.Background(), id, -2); err == nil {
		t.Fatal("expected error for negative quantity")
	}
}

func TestGetPOSCatalog(t *testing.T) {
	svc, products := newProductFixture()

	products.add(entity.Product{
		Name: "Visible", SKU: "V-1", StockQuantity: 5, IsActive: true, Category: strPtr("Gadgets"),
	})
	products.add(entity.Product{
		Name: "Out Of Stock", SKU: "O-1", StockQuantity: 0, IsActive: true, Category: strPtr("Gadgets"),
	})
	products.add(entity.Product{
		Name: "Inactive", SKU: "I-1", StockQuantity: 5, IsActive: false, Category: strPtr("Hidden"),
	})

	catalog, err := svc.GetPOSCatalog(context.Background(), "", "")
	if err != nil {
		t.Fatalf("GetPOSCatalog failed: %v", err)
	}
	if len(catalog.Products) != 1 {
		t.Fatalf("catalog products = %d, want 1", len(catalog.Products))
	}
	if catalog.Products[0].Name != "Visible" {
		t.Errorf("unexpected product %q in catalog", catalog.Products[0].Name)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc, products := newProductFixture()
	id := products.add(entity.Product{
		Name: "Widget", SKU: "WID-001", StockQuantity: 3, IsActive: true,
	})

	if err := svc.DeleteProduct(context.Background(), id); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if _, err := svc.GetProduct(context.Background(), id); err == nil {
		t.Fatal("expected not found after delete")
	}
	if err := svc.DeleteProduct(context.Background(), id); err == nil {
		t.Fatal("expected not found deleting twice")
	}
}
