package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/possync/internal/config"
	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/models"
)

func newTestHTTPStore(t *testing.T, srv *httptest.Server) *httpStore {
	t.Helper()
	store, err := NewHTTPStore(config.Remote{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return store
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{Subject: subject}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare host", "backend.local:8080", "http://backend.local:8080", false},
		{"https kept", "https://backend.local", "https://backend.local", false},
		{"trailing slash trimmed", "http://backend.local/", "http://backend.local", false},
		{"empty", "", "", true},
		{"whitespace", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPStore_Login(t *testing.T) {
	token := ""
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cashier", body["login"])

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	token = signedToken(t, "operator-7")
	store := newTestHTTPStore(t, srv)

	session, err := store.Login(context.Background(), "cashier", "secret")
	require.NoError(t, err)
	assert.Equal(t, "operator-7", session.UserID)
	assert.Equal(t, token, store.Token())
}

func TestHTTPStore_Login_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestHTTPStore(t, srv)

	_, err := store.Login(context.Background(), "cashier", "nope")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, store.Token())
}

func TestHTTPStore_Ping(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := newTestHTTPStore(t, srv)

	require.NoError(t, store.Ping(context.Background()))

	healthy = false
	require.ErrorIs(t, store.Ping(context.Background()), ErrUnavailable)
}

func TestHTTPStore_Ping_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // port is now dead

	store := newTestHTTPStore(t, srv)
	require.ErrorIs(t, store.Ping(context.Background()), ErrUnavailable)
}

func TestHTTPStore_FindSaleByKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/sales/lookup", r.URL.Path)

		switch r.URL.Query().Get("idempotency_key") {
		case "known-key":
			_ = json.NewEncoder(w).Encode(models.RemoteSale{
				RemoteID:       "r-1",
				IdempotencyKey: "known-key",
			})
		default:
			http.Error(w, "no such sale", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := newTestHTTPStore(t, srv)

	sale, err := store.FindSaleByKey(context.Background(), "known-key")
	require.NoError(t, err)
	assert.Equal(t, "r-1", sale.RemoteID)

	_, err = store.FindSaleByKey(context.Background(), "unknown-key")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPStore_CreateSale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sales", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sale-1", payload["idempotency_key"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"remote_id":"r-42"}`))
	}))
	defer srv.Close()

	store := newTestHTTPStore(t, srv)

	remoteID, err := store.CreateSale(context.Background(), models.PendingSale{
		ID:       "sale-1",
		TenantID: "t-1",
		Total:    7.50,
	})
	require.NoError(t, err)
	assert.Equal(t, "r-42", remoteID)
}

func TestHTTPStore_CreateSale_EmptyRemoteID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := newTestHTTPStore(t, srv)

	_, err := store.CreateSale(context.Background(), models.PendingSale{ID: "sale-1"})
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestHTTPStore_StockRoundTrip(t *testing.T) {
	var gotStock float64
	var gotMovement models.StockMovement

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/products/p-1/stock":
			_, _ = w.Write([]byte(`{"stock":10}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/products/p-1/stock":
			var body struct {
				Stock float64 `json:"stock"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gotStock = body.Stock
		case r.Method == http.MethodPost && r.URL.Path == "/api/products/p-1/stock-history":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMovement))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	store := newTestHTTPStore(t, srv)
	ctx := context.Background()

	stock, err := store.GetProductStock(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, stock)

	require.NoError(t, store.SetProductStock(ctx, "p-1", 8, 1700000000000))
	assert.Equal(t, 8.0, gotStock)

	movement := models.StockMovement{
		ProductID:   "p-1",
		Delta:       -2,
		Reason:      models.StockReasonSale,
		ReferenceID: "sale-1",
		OccurredAt:  1700000000000,
	}
	require.NoError(t, store.AppendStockHistory(ctx, movement))
	assert.Equal(t, movement, gotMovement)
}

func TestHTTPStore_ListActiveProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		require.Equal(t, "t-1", r.URL.Query().Get("tenant_id"))

		_ = json.NewEncoder(w).Encode([]models.Product{
			{RemoteID: "p-1", TenantID: "t-1", SKU: "APPLE", Name: "Apple", UpdatedAt: 1000},
			{RemoteID: "p-2", TenantID: "t-1", SKU: "PEAR", Name: "Pear", UpdatedAt: 2000},
		})
	}))
	defer srv.Close()

	store := newTestHTTPStore(t, srv)

	products, err := store.ListActiveProducts(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "APPLE", products[0].SKU)
}

func TestHTTPStore_AuthHeaderOnAuthedCalls(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Product{})
	}))
	defer srv.Close()

	store := newTestHTTPStore(t, srv)
	store.SetToken("abc.def.ghi")

	_, err := store.ListActiveProducts(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc.def.ghi", gotAuth)
}

func TestHTTPStore_LazyLoginBeforeFirstAuthedCall(t *testing.T) {
	token := ""
	loginCalls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			loginCalls++
			w.Header().Set("Authorization", "Bearer "+token)
		case "/api/products":
			require.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode([]models.Product{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	token = signedToken(t, "operator-7")
	store, err := NewHTTPStore(config.Remote{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
		Login:          "cashier",
		Password:       "secret",
	}, logger.Nop())
	require.NoError(t, err)

	_, err = store.ListActiveProducts(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, 1, loginCalls)

	// Token is held now; no second login.
	_, err = store.ListActiveProducts(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, 1, loginCalls)
}
