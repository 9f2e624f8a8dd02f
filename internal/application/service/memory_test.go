package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/google/uuid"
)

// In-memory repositories for service tests. All methods are safe for
// concurrent use so the stock contention tests exercise real interleaving.

type memProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
	order    []uuid.UUID
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *memProductRepo) add(p entity.Product) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = &p
	r.order = append(r.order, p.ID)
	return p.ID
}

func (r *memProductRepo) stockOf(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		return p.StockQuantity
	}
	return -1
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	clone := *product
	r.products[product.ID] = &clone
	r.order = append(r.order, product.ID)
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) matches(p *entity.Product, params *repository.ProductFilterParams) bool {
	if params.ActiveOnly && !p.IsActive {
		return false
	}
	if params.InStockOnly && p.StockQuantity <= 0 {
		return false
	}
	if params.LowStock && !(p.IsActive && p.StockQuantity <= p.LowStockThreshold) {
		return false
	}
	if params.Category != "" && (p.Category == nil || *p.Category != params.Category) {
		return false
	}
	return true
}

func (r *memProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.Product
	for _, id := range r.order {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if r.matches(p, params) {
			matched = append(matched, *p)
		}
	}

	if params.SortBy == "name" {
		sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	}

	total := int64(len(matched))
	params.Pagination.Validate()
	offset := params.Pagination.Offset()
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memProductRepo) GetLowStock(ctx context.Context, limit int) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var low []entity.Product
	for _, id := range r.order {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if p.IsActive && p.StockQuantity <= p.LowStockThreshold {
			low = append(low, *p)
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].StockQuantity != low[j].StockQuantity {
			return low[i].StockQuantity < low[j].StockQuantity
		}
		return low[i].Name < low[j].Name
	})
	if limit > 0 && len(low) > limit {
		low = low[:limit]
	}
	return low, nil
}

func (r *memProductRepo) Categories(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range r.products {
		if p.IsActive && p.Category != nil && !seen[*p.Category] {
			seen[*p.Category] = true
			categories = append(categories, *p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *memProductRepo) AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.StockQuantity < amount {
		return false, nil
	}
	p.StockQuantity -= amount
	return true, nil
}

type memSaleRepo struct {
	mu       sync.Mutex
	products *memProductRepo
	sales    map[uuid.UUID]*entity.Sale
	items    map[uuid.UUID][]entity.SaleItem
	numbers  map[string]bool
	order    []uuid.UUID

	// failDuplicates forces the first N creates to report a sale number
	// collision, for exercising the retry loop
	failDuplicates int
}

func newMemSaleRepo(products *memProductRepo) *memSaleRepo {
	return &memSaleRepo{
		products: products,
		sales:    make(map[uuid.UUID]*entity.Sale),
		items:    make(map[uuid.UUID][]entity.SaleItem),
		numbers:  make(map[string]bool),
	}
}

// addSale inserts a sale directly, bypassing stock checks. For seeding
// report fixtures with controlled timestamps.
func (r *memSaleRepo) addSale(sale entity.Sale, items []entity.SaleItem) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].SaleID = sale.ID
	}
	r.sales[sale.ID] = &sale
	r.items[sale.ID] = items
	r.numbers[sale.SaleNumber] = true
	r.order = append(r.order, sale.ID)
	return sale.ID
}

func (r *memSaleRepo) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failDuplicates > 0 {
		r.failDuplicates--
		return repository.ErrDuplicateSaleNumber
	}
	if r.numbers[sale.SaleNumber] {
		return repository.ErrDuplicateSaleNumber
	}

	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	decrements := make(map[uuid.UUID]int)
	var order []uuid.UUID
	for _, item := range items {
		if _, seen := decrements[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		decrements[item.ProductID] += item.Quantity
	}

	for _, productID := range order {
		p, ok := r.products.products[productID]
		if !ok {
			return &repository.StockConflictError{ProductID: productID}
		}
		if p.StockQuantity < decrements[productID] {
			return &repository.StockConflictError{
				ProductID:   productID,
				ProductName: p.Name,
				Available:   p.StockQuantity,
			}
		}
	}

	for _, productID := range order {
		r.products.products[productID].StockQuantity -= decrements[productID]
	}

	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	stored := *sale
	storedItems := make([]entity.SaleItem, len(items))
	for i, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.SaleID = sale.ID
		storedItems[i] = item
	}
	r.sales[sale.ID] = &stored
	r.items[sale.ID] = storedItems
	r.numbers[sale.SaleNumber] = true
	r.order = append(r.order, sale.ID)
	return nil
}

func (r *memSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *memSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	clone.Items = append([]entity.SaleItem(nil), r.items[id]...)
	return &clone, nil
}

func (r *memSaleRepo) GetBySaleNumber(ctx context.Context, saleNumber string) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sales {
		if s.SaleNumber == saleNumber {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.Sale
	for i := len(r.order) - 1; i >= 0; i-- {
		s := r.sales[r.order[i]]
		if params.Status != nil && s.Status != *params.Status {
			continue
		}
		if params.PaymentMethod != nil && s.PaymentMethod != *params.PaymentMethod {
			continue
		}
		if params.StartDate != nil && s.CreatedAt.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && !s.CreatedAt.Before(*params.EndDate) {
			continue
		}
		matched = append(matched, *s)
	}

	total := int64(len(matched))
	params.Pagination.Validate()
	offset := params.Pagination.Offset()
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memSaleRepo) Recent(ctx context.Context, limit int) ([]entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recent []entity.Sale
	for i := len(r.order) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, *r.sales[r.order[i]])
	}
	return recent, nil
}

func (r *memSaleRepo) CancelWithRestock(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sales[id]
	if !ok || s.Status != enum.SaleStatusCompleted {
		return false, nil
	}
	s.Status = enum.SaleStatusCancelled

	r.products.mu.Lock()
	defer r.products.mu.Unlock()
	for _, item := range r.items[id] {
		if p, ok := r.products.products[item.ProductID]; ok {
			p.StockQuantity += item.Quantity
		}
	}
	return true, nil
}

func (r *memSaleRepo) MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sales[id]
	if !ok || s.Status != enum.SaleStatusCompleted {
		return false, nil
	}
	s.Status = enum.SaleStatusRefunded
	return true, nil
}

type memReportRepo struct {
	sales    *memSaleRepo
	products *memProductRepo
}

func newMemReportRepo(sales *memSaleRepo, products *memProductRepo) *memReportRepo {
	return &memReportRepo{sales: sales, products: products}
}

func (r *memReportRepo) SalesTotals(ctx context.Context, from, to time.Time) (*repository.SalesTotals, error) {
	r.sales.mu.Lock()
	defer r.sales.mu.Unlock()

	totals := &repository.SalesTotals{}
	for _, s := range r.sales.sales {
		if s.Status != enum.SaleStatusCompleted {
			continue
		}
		if s.CreatedAt.Before(from) || !s.CreatedAt.Before(to) {
			continue
		}
		totals.SalesCount++
		totals.RevenueCents += s.TotalAmount
	}
	return totals, nil
}

func (r *memReportRepo) ItemsSold(ctx context.Context, from, to time.Time) (int64, error) {
	r.sales.mu.Lock()
	defer r.sales.mu.Unlock()

	var count int64
	for id, s := range r.sales.sales {
		if s.Status != enum.SaleStatusCompleted {
			continue
		}
		if s.CreatedAt.Before(from) || !s.CreatedAt.Before(to) {
			continue
		}
		for _, item := range r.sales.items[id] {
			count += int64(item.Quantity)
		}
	}
	return count, nil
}

func (r *memReportRepo) TopProducts(ctx context.Context, since time.Time, limit int) ([]repository.TopProductResult, error) {
	r.sales.mu.Lock()
	byProduct := make(map[uuid.UUID]*repository.TopProductResult)
	for id, s := range r.sales.sales {
		if s.Status != enum.SaleStatusCompleted || s.CreatedAt.Before(since) {
			continue
		}
		for _, item := range r.sales.items[id] {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &repository.TopProductResult{ProductID: item.ProductID}
				byProduct[item.ProductID] = entry
			}
			entry.QuantitySold += int64(item.Quantity)
			entry.RevenueCents += item.TotalPrice
		}
	}
	r.sales.mu.Unlock()

	r.products.mu.Lock()
	var results []repository.TopProductResult
	for id, entry := range byProduct {
		if p, ok := r.products.products[id]; ok {
			entry.ProductName = p.Name
			entry.ProductSKU = p.SKU
		}
		results = append(results, *entry)
	}
	r.products.mu.Unlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].QuantitySold != results[j].QuantitySold {
			return results[i].QuantitySold > results[j].QuantitySold
		}
		return results[i].ProductID.String() < results[j].ProductID.String()
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (r *memReportRepo) InventoryTotals(ctx context.Context) (*repository.InventoryTotals, error) {
	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	totals := &repository.InventoryTotals{}
	for _, p := range r.products.products {
		if !p.IsActive {
			continue
		}
		totals.TotalProducts++
		if p.StockQuantity <= p.LowStockThreshold {
			totals.LowStockCount++
		}
		if p.StockQuantity == 0 {
			totals.OutOfStockCount++
		}
		totals.TotalValueCents += int64(p.StockQuantity) * p.Cost
	}
	return totals, nil
}
