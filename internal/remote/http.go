package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/retailpoint/possync/internal/config"
	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/utils"
	"github.com/retailpoint/possync/models"
)

type httpStore struct {
	client *resty.Client
	logger *logger.Logger

	// login and password are kept for lazy session re-establishment when the
	// process started offline. Immutable after construction.
	login    string
	password string

	mu    sync.RWMutex
	token string
}

// NewHTTPStore constructs the HTTP/REST implementation of [Store]. It
// normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying client with the resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPStore(cfg config.Remote, logger *logger.Logger) (*httpStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid remote http address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpStore{
		client:   cli,
		logger:   logger,
		login:    cfg.Login,
		password: cfg.Password,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (h *httpStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the adapter, or an empty
// string if none has been set.
func (h *httpStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpStore) authedRequest(ctx context.Context) *resty.Request {
	if h.Token() == "" && h.login != "" {
		// Startup may have happened offline; re-establish the session before
		// the first authenticated call. A failure here surfaces on the call
		// itself as ErrUnauthorized.
		if _, err := h.Login(ctx, h.login, h.password); err != nil {
			h.logger.Debug().Err(err).Msg("lazy login failed")
		}
	}

	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// Login authenticates the operator against the remote store. On success the
// bearer token is extracted from the Authorization response header and stored
// via SetToken; the operator id is parsed from the token's subject claim.
func (h *httpStore) Login(ctx context.Context, login, password string) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"login": login, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.UserIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Session{Token: token, UserID: userID}, nil
}

// Ping implements [Store] via the unauthenticated health endpoint.
func (h *httpStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return mapHTTPError(resp)
}

func (h *httpStore) FindSaleByKey(ctx context.Context, key string) (models.RemoteSale, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("idempotency_key", key).
		Get("/api/sales/lookup")
	if err != nil {
		return models.RemoteSale{}, fmt.Errorf("find sale request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteSale{}, err
	}

	var sale models.RemoteSale
	if err = json.Unmarshal(resp.Body(), &sale); err != nil {
		return models.RemoteSale{}, fmt.Errorf("decode found sale: %w", err)
	}
	return sale, nil
}

func (h *httpStore) CreateSale(ctx context.Context, sale models.PendingSale) (string, error) {
	payload := map[string]any{
		"idempotency_key": sale.ID,
		"tenant_id":       sale.TenantID,
		"user_id":         sale.UserID,
		"total":           sale.Total,
		"created_at":      sale.CreatedAt,
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/api/sales")
	if err != nil {
		return "", fmt.Errorf("create sale request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created struct {
		RemoteID string `json:"remote_id"`
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode created sale: %w", err)
	}
	if created.RemoteID == "" {
		return "", fmt.Errorf("%w: empty remote id in create sale response", ErrBadRequest)
	}
	return created.RemoteID, nil
}

func (h *httpStore) CreateSaleItems(ctx context.Context, remoteSaleID string, items []models.SaleItem) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"items": items}).
		Post("/api/sales/" + url.PathEscape(remoteSaleID) + "/items")
	if err != nil {
		return fmt.Errorf("create sale items request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpStore) DeleteSale(ctx context.Context, remoteSaleID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/sales/" + url.PathEscape(remoteSaleID))
	if err != nil {
		return fmt.Errorf("delete sale request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpStore) GetProductStock(ctx context.Context, productID string) (float64, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/products/" + url.PathEscape(productID) + "/stock")
	if err != nil {
		return 0, fmt.Errorf("get product stock request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var stock struct {
		Stock float64 `json:"stock"`
	}
	if err = json.Unmarshal(resp.Body(), &stock); err != nil {
		return 0, fmt.Errorf("decode product stock: %w", err)
	}
	return stock.Stock, nil
}

func (h *httpStore) SetProductStock(ctx context.Context, productID string, stock float64, updatedAt int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"stock": stock, "updated_at": updatedAt}).
		Put("/api/products/" + url.PathEscape(productID) + "/stock")
	if err != nil {
		return fmt.Errorf("set product stock request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpStore) AppendStockHistory(ctx context.Context, movement models.StockMovement) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(movement).
		Post("/api/products/" + url.PathEscape(movement.ProductID) + "/stock-history")
	if err != nil {
		return fmt.Errorf("append stock history request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpStore) ListActiveProducts(ctx context.Context, tenantID string) ([]models.Product, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("tenant_id", tenantID).
		Get("/api/products")
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var products []models.Product
	if err = json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("decode product snapshot: %w", err)
	}
	return products, nil
}
