package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/mock"
	"github.com/retailpoint/possync/internal/remote"
	"github.com/retailpoint/possync/internal/store"
	"github.com/retailpoint/possync/models"
)

type stubOnline bool

func (s stubOnline) IsOnline() bool { return bool(s) }

type orchestratorFixture struct {
	orch      *Orchestrator
	queue     *Queue
	sales     store.PendingSaleRepository
	products  store.ProductCacheRepository
	conflicts store.ConflictLogRepository
	remote    *mock.MockStore
	status    *StatusTracker
}

func newFixture(t *testing.T, online bool) *orchestratorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	sales := store.NewMemoryPendingSaleRepository()
	products := store.NewMemoryProductRepository()
	conflicts := store.NewMemoryConflictLogRepository()
	remoteStore := mock.NewMockStore(ctrl)

	queue := NewQueue(sales, logger.Nop())
	resolver := NewConflictResolver(conflicts, logger.Nop())
	status := NewStatusTracker()

	orch := NewOrchestrator(queue, products, resolver, remoteStore,
		stubOnline(online), status, logger.Nop())

	return &orchestratorFixture{
		orch:      orch,
		queue:     queue,
		sales:     sales,
		products:  products,
		conflicts: conflicts,
		remote:    remoteStore,
		status:    status,
	}
}

func (f *orchestratorFixture) enqueue(t *testing.T, sale models.PendingSale) models.PendingSale {
	t.Helper()
	queued, err := f.queue.Enqueue(context.Background(), sale)
	require.NoError(t, err)
	return queued
}

func TestOrchestrator_Offline_NoActivity(t *testing.T) {
	f := newFixture(t, false)
	f.enqueue(t, validSale())

	// No remote expectations registered: any call would fail the test.
	res := f.orch.SyncAll(context.Background(), "t-1")

	assert.False(t, res.Success)
	assert.Zero(t, res.Synced)
	assert.Zero(t, res.Failed)
}

func TestOrchestrator_SingleFlight_ConcurrentTriggerIsNoOp(t *testing.T) {
	f := newFixture(t, true)

	f.orch.inFlight.Store(true)
	res := f.orch.SyncAll(context.Background(), "t-1")

	assert.Equal(t, models.SyncResult{}, res)

	// Guard released by the owning pass, not the rejected trigger.
	assert.True(t, f.orch.inFlight.Load())
}

func TestOrchestrator_Push_HappyPath(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	sale := validSale()
	sale.Items = sale.Items[:1] // 3x APPLE at 2.50
	sale.Total = 7.50
	sale = f.enqueue(t, sale)

	f.remote.EXPECT().FindSaleByKey(gomock.Any(), sale.ID).
		Return(models.RemoteSale{}, remote.ErrNotFound)
	f.remote.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return("r-100", nil)
	f.remote.EXPECT().CreateSaleItems(gomock.Any(), "r-100", sale.Items).Return(nil)
	f.remote.EXPECT().GetProductStock(gomock.Any(), "p-1").Return(10.0, nil)
	f.remote.EXPECT().SetProductStock(gomock.Any(), "p-1", 7.0, gomock.Any()).Return(nil)
	f.remote.EXPECT().AppendStockHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mv models.StockMovement) error {
			assert.Equal(t, "p-1", mv.ProductID)
			assert.Equal(t, -3.0, mv.Delta)
			assert.Equal(t, models.StockReasonSale, mv.Reason)
			assert.Equal(t, sale.ID, mv.ReferenceID)
			return nil
		})

	res := f.orch.PushPending(ctx, "t-1")

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Synced)
	assert.Zero(t, res.Failed)

	stored, err := f.sales.Get(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, stored.Synced)
}

func TestOrchestrator_Push_AlreadyDurableRemotely(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	sale := f.enqueue(t, validSale())

	// A previous pass applied the sale but died before flipping the local
	// flag. Only the flag is repaired; nothing is re-sent and no stock is
	// deducted a second time.
	f.remote.EXPECT().FindSaleByKey(gomock.Any(), sale.ID).
		Return(models.RemoteSale{RemoteID: "r-1", IdempotencyKey: sale.ID}, nil)

	res := f.orch.PushPending(ctx, "t-1")

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Synced)

	stored, err := f.sales.Get(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, stored.Synced)
}

func TestOrchestrator_Push_ItemsFailureTriggersCompensatingDelete(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	sale := f.enqueue(t, validSale())

	f.remote.EXPECT().FindSaleByKey(gomock.Any(), sale.ID).
		Return(models.RemoteSale{}, remote.ErrNotFound)
	f.remote.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return("r-200", nil)
	f.remote.EXPECT().CreateSaleItems(gomock.Any(), "r-200", gomock.Any()).
		Return(errors.New("constraint violation"))
	f.remote.EXPECT().DeleteSale(gomock.Any(), "r-200").Return(nil)

	res := f.orch.PushPending(ctx, "t-1")

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Failed)

	stored, err := f.sales.Get(ctx, sale.ID)
	require.NoError(t, err)
	assert.False(t, stored.Synced, "sale must stay queued for the next trigger")
	assert.Equal(t, 1, stored.Attempts)
	assert.Contains(t, stored.LastError, "constraint violation")
}

func TestOrchestrator_Push_StockClampedAtZero(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	sale := validSale()
	sale.Items = []models.SaleItem{
		{ProductID: "p-1", SKU: "APPLE", Quantity: 5, UnitPrice: 2.00, Subtotal: 10.00},
	}
	sale.Total = 10.00
	sale = f.enqueue(t, sale)

	f.remote.EXPECT().FindSaleByKey(gomock.Any(), sale.ID).
		Return(models.RemoteSale{}, remote.ErrNotFound)
	f.remote.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return("r-300", nil)
	f.remote.EXPECT().CreateSaleItems(gomock.Any(), "r-300", gomock.Any()).Return(nil)
	// Only 2 on hand against a quantity of 5: stock lands on zero.
	f.remote.EXPECT().GetProductStock(gomock.Any(), "p-1").Return(2.0, nil)
	f.remote.EXPECT().SetProductStock(gomock.Any(), "p-1", 0.0, gomock.Any()).Return(nil)
	f.remote.EXPECT().AppendStockHistory(gomock.Any(), gomock.Any()).Return(nil)

	res := f.orch.PushPending(ctx, "t-1")
	assert.True(t, res.Success)
}

func TestOrchestrator_Push_FailingRecordDoesNotStopBatch(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	bad := validSale()
	bad.ID = "sale-bad"
	bad.CreatedAt = 1000
	bad = f.enqueue(t, bad)

	good := validSale()
	good.ID = "sale-good"
	good.CreatedAt = 2000
	good = f.enqueue(t, good)

	f.remote.EXPECT().FindSaleByKey(gomock.Any(), "sale-bad").
		Return(models.RemoteSale{}, errors.New("timeout"))

	f.remote.EXPECT().FindSaleByKey(gomock.Any(), "sale-good").
		Return(models.RemoteSale{}, remote.ErrNotFound)
	f.remote.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return("r-400", nil)
	f.remote.EXPECT().CreateSaleItems(gomock.Any(), "r-400", gomock.Any()).Return(nil)
	f.remote.EXPECT().GetProductStock(gomock.Any(), gomock.Any()).Return(50.0, nil).Times(2)
	f.remote.EXPECT().SetProductStock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.remote.EXPECT().AppendStockHistory(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res := f.orch.PushPending(ctx, "t-1")

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Synced)
	assert.Equal(t, 1, res.Failed)

	stored, err := f.sales.Get(ctx, "sale-good")
	require.NoError(t, err)
	assert.True(t, stored.Synced)
}

func remoteProduct(remoteID, name string, updatedAt int64) models.Product {
	return models.Product{
		RemoteID:  remoteID,
		TenantID:  "t-1",
		SKU:       "SKU-" + remoteID,
		Name:      name,
		UnitPrice: 1.00,
		Unit:      "pcs",
		Stock:     10,
		UpdatedAt: updatedAt,
	}
}

func TestOrchestrator_Pull_InsertsNewProducts(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return([]models.Product{remoteProduct("p-1", "Apple", 1000)}, nil)

	res := f.orch.PullProducts(ctx, "t-1")

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Synced)
	assert.Empty(t, res.Conflicts)

	cached, err := f.products.GetByRemoteID(ctx, "p-1")
	require.NoError(t, err)
	assert.NotEmpty(t, cached.LocalID)
	assert.True(t, cached.Synced)
	assert.Equal(t, "Apple", cached.Name)
}

func TestOrchestrator_Pull_OverwritesCleanCopyWithoutConflict(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	existing := remoteProduct("p-1", "Apple", 1000)
	existing.LocalID = "local-1"
	existing.Synced = true
	_, err := f.products.Put(ctx, existing)
	require.NoError(t, err)

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return([]models.Product{remoteProduct("p-1", "Apple Gala", 2000)}, nil)

	res := f.orch.PullProducts(ctx, "t-1")

	assert.True(t, res.Success)
	assert.Empty(t, res.Conflicts, "clean overwrite is not a conflict")

	cached, err := f.products.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "Apple Gala", cached.Name)
	assert.Equal(t, int64(2000), cached.UpdatedAt)
}

func TestOrchestrator_Pull_DirtyCopy_RemoteWins(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	dirty := remoteProduct("p-1", "Apple (local edit)", 1000)
	dirty.LocalID = "local-1"
	dirty.Synced = false
	_, err := f.products.Put(ctx, dirty)
	require.NoError(t, err)

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return([]models.Product{remoteProduct("p-1", "Apple (remote edit)", 2000)}, nil)

	res := f.orch.PullProducts(ctx, "t-1")

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, models.ResolutionRemote, res.Conflicts[0].Resolution)

	cached, err := f.products.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "Apple (remote edit)", cached.Name)
	assert.True(t, cached.Synced)

	entries, err := f.conflicts.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1, "exactly one audit entry per detected conflict")
}

func TestOrchestrator_Pull_DirtyCopy_LocalWins(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	dirty := remoteProduct("p-1", "Apple (local edit)", 3000)
	dirty.LocalID = "local-1"
	dirty.Synced = false
	_, err := f.products.Put(ctx, dirty)
	require.NoError(t, err)

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return([]models.Product{remoteProduct("p-1", "Apple (remote edit)", 2000)}, nil)

	res := f.orch.PullProducts(ctx, "t-1")

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, models.ResolutionLocal, res.Conflicts[0].Resolution)

	// The losing remote version must not touch the cache, but the decision
	// is still audited.
	cached, err := f.products.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "Apple (local edit)", cached.Name)
	assert.False(t, cached.Synced)

	entries, err := f.conflicts.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestOrchestrator_Pull_TimestampTieGoesRemote(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	dirty := remoteProduct("p-1", "Apple (local edit)", 2000)
	dirty.LocalID = "local-1"
	dirty.Synced = false
	_, err := f.products.Put(ctx, dirty)
	require.NoError(t, err)

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return([]models.Product{remoteProduct("p-1", "Apple (remote edit)", 2000)}, nil)

	res := f.orch.PullProducts(ctx, "t-1")

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, models.ResolutionRemote, res.Conflicts[0].Resolution)
}

func TestOrchestrator_Pull_SkipsInvalidRecords(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	invalid := remoteProduct("p-bad", "Broken", 1000)
	invalid.SKU = ""

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return([]models.Product{invalid, remoteProduct("p-ok", "Fine", 1000)}, nil)

	res := f.orch.PullProducts(ctx, "t-1")

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Synced)
	assert.Equal(t, 1, res.Failed)

	_, err := f.products.GetByRemoteID(ctx, "p-ok")
	assert.NoError(t, err)
	_, err = f.products.GetByRemoteID(ctx, "p-bad")
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestOrchestrator_Pull_InvalidRecordKeepsCachedCopy(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	cached := remoteProduct("p-1", "Apple", 1000)
	cached.LocalID = "local-1"
	cached.Synced = true
	_, err := f.products.Put(ctx, cached)
	require.NoError(t, err)

	// The product is still active remotely; this snapshot of it is just
	// transiently malformed.
	invalid := remoteProduct("p-1", "Apple", 2000)
	invalid.Stock = -5

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return([]models.Product{invalid}, nil)

	res := f.orch.PullProducts(ctx, "t-1")

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Failed)

	got, err := f.products.Get(ctx, "local-1")
	require.NoError(t, err, "a skipped record must leave the cached copy untouched")
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, int64(1000), got.UpdatedAt, "the malformed snapshot must not be applied")
}

func TestOrchestrator_Pull_EvictsInactiveCleanProducts(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	gone := remoteProduct("p-gone", "Discontinued", 1000)
	gone.LocalID = "local-gone"
	gone.Synced = true
	_, err := f.products.Put(ctx, gone)
	require.NoError(t, err)

	dirtyGone := remoteProduct("p-dirty", "Edited offline", 1000)
	dirtyGone.LocalID = "local-dirty"
	dirtyGone.Synced = false
	_, err = f.products.Put(ctx, dirtyGone)
	require.NoError(t, err)

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return([]models.Product{remoteProduct("p-1", "Apple", 1000)}, nil)

	res := f.orch.PullProducts(ctx, "t-1")
	assert.True(t, res.Success)

	_, err = f.products.Get(ctx, "local-gone")
	assert.ErrorIs(t, err, store.ErrProductNotFound, "clean inactive products are evicted")
	_, err = f.products.Get(ctx, "local-dirty")
	assert.NoError(t, err, "dirty products survive eviction")
}

func TestOrchestrator_SyncAll_PushThenPull(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	sale := f.enqueue(t, validSale())

	pushDone := false
	f.remote.EXPECT().FindSaleByKey(gomock.Any(), sale.ID).
		DoAndReturn(func(context.Context, string) (models.RemoteSale, error) {
			pushDone = true
			return models.RemoteSale{RemoteID: "r-1"}, nil
		})
	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		DoAndReturn(func(context.Context, string) ([]models.Product, error) {
			assert.True(t, pushDone, "pull must run after push")
			return nil, nil
		})

	res := f.orch.SyncAll(ctx, "t-1")

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Synced)

	status := f.status.Snapshot()
	require.NotNil(t, status.LastResult)
	assert.True(t, status.LastResult.Success)
	require.NotNil(t, status.LastSyncAt)
}

func TestOrchestrator_SyncAll_RemoteListFailure(t *testing.T) {
	f := newFixture(t, true)

	f.remote.EXPECT().ListActiveProducts(gomock.Any(), "t-1").
		Return(nil, remote.ErrUnavailable)

	res := f.orch.SyncAll(context.Background(), "t-1")

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Failed)
}
