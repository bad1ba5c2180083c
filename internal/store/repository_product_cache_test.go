package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/models"
)

func newTestProductRepo(t *testing.T) (*productCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &productCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testProduct() models.Product {
	return models.Product{
		LocalID:    "local-1",
		RemoteID:   "remote-1",
		TenantID:   "t-1",
		SKU:        "APPLE",
		Name:       "Apple",
		UnitPrice:  2.50,
		Unit:       "kg",
		DefaultQty: 1,
		Stock:      10,
		UpdatedAt:  1700000000000,
		Synced:     true,
	}
}

func productRows(p models.Product) *sqlmock.Rows {
	return sqlmock.
		NewRows(productColumns).
		AddRow(p.LocalID, p.RemoteID, p.TenantID, p.SKU, p.Name,
			p.UnitPrice, p.Unit, p.DefaultQty, p.Stock, p.UpdatedAt, p.Synced)
}

func TestProductCachePut_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	p := testProduct()

	mock.ExpectExec("INSERT INTO product_cache").
		WithArgs(p.LocalID, p.RemoteID, p.TenantID, p.SKU, p.Name,
			p.UnitPrice, p.Unit, p.DefaultQty, p.Stock, p.UpdatedAt, p.Synced).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Put(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.LocalID != p.LocalID {
		t.Errorf("expected local_id %s, got %s", p.LocalID, saved.LocalID)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductCachePut_DBError(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO product_cache").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Put(context.Background(), testProduct())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestProductCacheGet_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	p := testProduct()

	mock.ExpectQuery("FROM product_cache").
		WithArgs(p.LocalID).
		WillReturnRows(productRows(p))

	got, err := repo.Get(context.Background(), p.LocalID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p {
		t.Errorf("expected %+v, got %+v", p, got)
	}
}

func TestProductCacheGet_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM product_cache").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductCacheGetByRemoteID_NullRemoteID(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(productColumns).
		AddRow("local-1", nil, "t-1", "APPLE", "Apple", 2.50, "kg", 1.0, 10.0, 1700000000000, false)

	mock.ExpectQuery("FROM product_cache").
		WillReturnRows(rows)

	got, err := repo.GetByRemoteID(context.Background(), "remote-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RemoteID != "" {
		t.Errorf("expected empty remote id for NULL column, got %q", got.RemoteID)
	}
}

func TestProductCacheGetByIndex_UnknownIndex(t *testing.T) {
	repo, _, db := newTestProductRepo(t)
	defer db.Close()

	_, err := repo.GetByIndex(context.Background(), "name", "Apple")
	if !errors.Is(err, ErrUnknownIndex) {
		t.Fatalf("expected ErrUnknownIndex, got %v", err)
	}
}

func TestProductCacheGetByIndex_Tenant(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	p := testProduct()

	mock.ExpectQuery("FROM product_cache WHERE tenant_id").
		WithArgs("t-1").
		WillReturnRows(productRows(p))

	got, err := repo.GetByIndex(context.Background(), "tenant_id", "t-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].LocalID != p.LocalID {
		t.Errorf("expected one product %s, got %+v", p.LocalID, got)
	}
}

func TestProductCacheDelete(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM product_cache").
		WithArgs("local-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "local-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
