package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendio/vendio/internal/shared"
)

type memoryRepo struct {
	sales     map[int64]*Sale
	saleOrder []int64
	items     map[int64][]LineItem
	clients   map[int64]string
	products  map[int64]string
	nextSale  int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		sales:    make(map[int64]*Sale),
		items:    make(map[int64][]LineItem),
		clients:  make(map[int64]string),
		products: make(map[int64]string),
		nextSale: 1,
	}
}

func (r *memoryRepo) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, r)
}

func (r *memoryRepo) rowsFor(saleID int64) []SaleRow {
	sale := r.sales[saleID]
	var rows []SaleRow
	for _, it := range r.items[saleID] {
		rows = append(rows, SaleRow{
			SaleID:      saleID,
			ClientID:    sale.ClientID,
			ClientName:  r.clients[sale.ClientID],
			ProductName: r.products[it.ProductID],
			Price:       it.Price,
			Quantity:    it.Quantity,
			DeletedAt:   sale.DeletedAt,
		})
	}
	return rows
}

func (r *memoryRepo) ListRows(ctx context.Context, req ListSalesRequest) ([]SaleRow, error) {
	var rows []SaleRow
	for _, id := range r.saleOrder {
		sale := r.sales[id]
		if sale.DeletedAt != nil && !req.IncludeCancelled {
			continue
		}
		if req.ClientID != nil && sale.ClientID != *req.ClientID {
			continue
		}
		rows = append(rows, r.rowsFor(id)...)
	}
	return rows, nil
}

func (r *memoryRepo) RowsBySale(ctx context.Context, saleID int64) ([]SaleRow, error) {
	if _, ok := r.sales[saleID]; !ok {
		return nil, nil
	}
	return r.rowsFor(saleID), nil
}

func (r *memoryRepo) GetSale(ctx context.Context, id int64) (Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return Sale{}, ErrNotFound
	}
	return *sale, nil
}

func (r *memoryRepo) InsertSale(ctx context.Context, clientID int64) (Sale, error) {
	now := time.Now()
	sale := Sale{ID: r.nextSale, ClientID: clientID, CreatedAt: now, UpdatedAt: now}
	r.sales[sale.ID] = &sale
	r.saleOrder = append(r.saleOrder, sale.ID)
	r.nextSale++
	return sale, nil
}

func (r *memoryRepo) InsertLineItems(ctx context.Context, saleID int64, items []LineItem) error {
	r.items[saleID] = append(r.items[saleID], items...)
	return nil
}

func (r *memoryRepo) SoftDeleteSale(ctx context.Context, id int64) error {
	if sale, ok := r.sales[id]; ok && sale.DeletedAt == nil {
		now := time.Now()
		sale.DeletedAt = &now
	}
	return nil
}

func (r *memoryRepo) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	_, ok := r.clients[clientID]
	return ok, nil
}

func (r *memoryRepo) ProductExists(ctx context.Context, productID int64) (bool, error) {
	_, ok := r.products[productID]
	return ok, nil
}

func seededRepo() *memoryRepo {
	repo := newMemoryRepo()
	repo.clients[1] = "Maria Souza"
	repo.products[2] = "Notebook Basico"
	repo.products[3] = "Fone de Ouvido"
	return repo
}

func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }
func floatPtr(f float64) *float64 { return &f }

func flatRequest() CreateSaleRequest {
	return CreateSaleRequest{
		ClientID:  int64Ptr(1),
		ProductID: int64Ptr(2),
		Price:     floatPtr(8.50),
		Quantity:  intPtr(10),
	}
}

func TestCreateSale(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	rows, err := svc.Create(context.Background(), flatRequest())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Maria Souza", rows[0].ClientName)
	assert.Equal(t, "Notebook Basico", rows[0].ProductName)
	assert.InDelta(t, 8.50, rows[0].Price, 0.0001)
	assert.Equal(t, 10, rows[0].Quantity)
	assert.Equal(t, StatusInProgress, rows[0].Status())
}

func TestCreateSaleMultipleItems(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	rows, err := svc.Create(context.Background(), CreateSaleRequest{
		ClientID: int64Ptr(1),
		Items: []CreateSaleItem{
			{ProductID: int64Ptr(2), Price: floatPtr(8.50), Quantity: intPtr(10)},
			{ProductID: int64Ptr(3), Price: floatPtr(1.99), Quantity: intPtr(2)},
		},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].SaleID, rows[1].SaleID)
}

func TestCreateSaleMissingProductFailsFast(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateSaleRequest{
		ClientID: int64Ptr(1),
		Items: []CreateSaleItem{
			{ProductID: int64Ptr(2), Price: floatPtr(8.50), Quantity: intPtr(10)},
			{ProductID: int64Ptr(7), Price: floatPtr(1.00), Quantity: intPtr(1)},
		},
	})
	require.Error(t, err)
	assert.Equal(t, shared.KindValidation, shared.KindOf(err))
	assert.Equal(t, "product (7) does not exist", shared.PublicMessage(err))
	assert.Empty(t, repo.sales)
}

func TestCreateSaleMissingClient(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)

	req := flatRequest()
	req.ClientID = int64Ptr(42)
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "client (42) does not exist", shared.PublicMessage(err))
	assert.Empty(t, repo.sales)
}

func TestShowMissingSale(t *testing.T) {
	svc := NewService(seededRepo())

	_, err := svc.Show(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	assert.Equal(t, "no sale found for id 999", shared.PublicMessage(err))
}

func TestCancelSale(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	ctx := context.Background()

	rows, err := svc.Create(ctx, flatRequest())
	require.NoError(t, err)
	saleID := rows[0].SaleID

	require.NoError(t, svc.Cancel(ctx, saleID))

	// Gone from the default listing.
	listed, err := svc.List(ctx, ListSalesRequest{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Still retrievable with cancelled status.
	listed, err = svc.List(ctx, ListSalesRequest{IncludeCancelled: true})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, StatusCancelled, listed[0].Status())

	shown, err := svc.Show(ctx, saleID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, shown[0].Status())
}

func TestCancelIsIdempotent(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	ctx := context.Background()

	rows, err := svc.Create(ctx, flatRequest())
	require.NoError(t, err)
	saleID := rows[0].SaleID

	require.NoError(t, svc.Cancel(ctx, saleID))
	firstDeletedAt := repo.sales[saleID].DeletedAt

	require.NoError(t, svc.Cancel(ctx, saleID))
	assert.Equal(t, firstDeletedAt, repo.sales[saleID].DeletedAt)
}

func TestCancelMissingSale(t *testing.T) {
	svc := NewService(seededRepo())

	err := svc.Cancel(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	assert.Equal(t, "cannot cancel, order (5) does not exist", shared.PublicMessage(err))
}

func TestListByClient(t *testing.T) {
	repo := seededRepo()
	repo.clients[2] = "Joao Lima"
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, flatRequest())
	require.NoError(t, err)

	other := flatRequest()
	other.ClientID = int64Ptr(2)
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	rows, err := svc.List(ctx, ListSalesRequest{ClientID: int64Ptr(2)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Joao Lima", rows[0].ClientName)
}
