package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"kacip-storefront/app"
	"kacip-storefront/cart"
	"kacip-storefront/catalog"
	"kacip-storefront/customers"
	"kacip-storefront/handlers"
	"kacip-storefront/identity"
	"kacip-storefront/locations"
	"kacip-storefront/middleware"
	"kacip-storefront/models"
	"kacip-storefront/orders"
	"kacip-storefront/routes"
	"kacip-storefront/session"
	"kacip-storefront/storage"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	router   *gin.Engine
	h        *handlers.Handler
	registry *app.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "handlers.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	local, err := identity.NewLocalBackend(db, identity.NewTokenIssuer([]byte("test-secret"), time.Hour))
	require.NoError(t, err)
	require.NoError(t, local.EnsureUser(context.Background(), "Admin User", "admin@kacip.com", "admin123", models.RoleAdmin))

	menu := catalog.NewStore(catalog.DefaultMenu())
	registry := app.NewRegistry(app.Deps{
		Catalog:     menu,
		Identity:    local,
		Storage:     storage.NewMemoryKV(),
		Logger:      log.New(io.Discard, "", 0),
		NoticeTTL:   time.Minute,
		SearchDelay: 20 * time.Millisecond,
	})
	t.Cleanup(registry.Close)

	h := &handlers.Handler{
		Catalog:   menu,
		Stores:    locations.NewDirectory(locations.DefaultStores()),
		Orders:    orders.NewBook(orders.DemoOrders(time.Now())),
		Customers: customers.NewDirectory(customers.DemoCustomers()),
		Identity:  local,
	}
	r := gin.New()
	routes.SetupRoutes(r, h, registry)
	return &testServer{router: r, h: h, registry: registry}
}

func (s *testServer) do(t *testing.T, method, path, clientID, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set(middleware.ClientIDHeader, clientID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type cartResponse struct {
	Cart cart.Snapshot `json:"cart"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  identity.Identity `json:"user"`
}

type orderResponse struct {
	Order models.Order `json:"order"`
}

func (s *testServer) login(t *testing.T, clientID, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", clientID, "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[authResponse](t, w).Token
}

func (s *testServer) register(t *testing.T, clientID, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/register", clientID, "", gin.H{
		"name": "Nurul Huda", "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[authResponse](t, w).Token
}

// ── Public ──────────────────────────────────────────────────────────────────

func TestListMenu(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/menu?category=coffee", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, decode[struct{ Count int }](t, w).Count)

	w = s.do(t, http.MethodGet, "/api/menu?q=latte", "", "", nil)
	assert.Equal(t, 3, decode[struct{ Count int }](t, w).Count)

	w = s.do(t, http.MethodGet, "/api/menu?category=tea", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/menu/items/nope", "", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListStores_Nearby(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/stores?city=kuala%20lumpur", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[struct{ Count int }](t, w).Count)

	w = s.do(t, http.MethodGet, "/api/stores?lat=abc&lng=101.6", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ── Client context & cart ───────────────────────────────────────────────────

func TestClientContext_IssuesAndReusesID(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/cart", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(middleware.ClientIDHeader)
	require.NotEmpty(t, id)
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.ClientIDCookie+"="+id)

	w = s.do(t, http.MethodPost, "/api/cart/items", id, "", gin.H{"item_id": "espresso"})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: middleware.ClientIDCookie, Value: id})
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, 1, decode[cartResponse](t, w).Cart.TotalItems)
	assert.Equal(t, 1, s.registry.Len())
}

func TestCart_AddUpdateRemove(t *testing.T) {
	s := newTestServer(t)
	const client = "cart-client"

	for _, id := range []string{"espresso", "latte", "espresso"} {
		w := s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": id})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w := s.do(t, http.MethodGet, "/api/cart", client, "", nil)
	snap := decode[cartResponse](t, w).Cart
	assert.Equal(t, 3, snap.TotalItems)
	assert.InDelta(t, 11.50, snap.TotalPrice, 1e-9)
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, 2, snap.Lines[0].Quantity)

	w = s.do(t, http.MethodPut, "/api/cart/items/latte", client, "", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[cartResponse](t, w).Cart.TotalItems)

	w = s.do(t, http.MethodDelete, "/api/cart/items/espresso", client, "", nil)
	assert.Zero(t, decode[cartResponse](t, w).Cart.TotalItems)

	// other clients never see this cart
	w = s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "mocha"})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/api/cart", "someone-else", "", nil)
	assert.Zero(t, decode[cartResponse](t, w).Cart.TotalItems)

	w = s.do(t, http.MethodDelete, "/api/cart", client, "", nil)
	assert.Zero(t, decode[cartResponse](t, w).Cart.TotalItems)
}

func TestCart_Validation(t *testing.T) {
	s := newTestServer(t)
	const client = "validation"

	w := s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "frappe"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/cart/items/latte", client, "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, err := s.h.Catalog.SetAvailability("mocha", false)
	require.NoError(t, err)
	w = s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "mocha"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not available")
}

func TestCart_AddNotifies(t *testing.T) {
	s := newTestServer(t)
	const client = "toasts"

	s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "latte"})

	w := s.do(t, http.MethodGet, "/api/notifications", client, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Notifications []struct {
			ID       uint64 `json:"id"`
			Message  string `json:"message"`
			Severity string `json:"severity"`
		} `json:"notifications"`
	}](t, w)
	require.Len(t, body.Notifications, 1)
	assert.Equal(t, "Caffe Latte added to cart!", body.Notifications[0].Message)
	assert.Equal(t, "success", body.Notifications[0].Severity)

	path := "/api/notifications/" + strconv.FormatUint(body.Notifications[0].ID, 10)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, path, client, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, path, client, "", nil).Code)
}

// ── Checkout ────────────────────────────────────────────────────────────────

func TestCheckout_Guest(t *testing.T) {
	s := newTestServer(t)
	const client = "guest"

	w := s.do(t, http.MethodPost, "/api/cart/checkout", client, "", gin.H{"customer_name": "Aina", "customer_email": "aina@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart")

	s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "espresso"})
	s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "latte"})
	s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "espresso"})

	w = s.do(t, http.MethodPost, "/api/cart/checkout", client, "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "guest without contact details")

	w = s.do(t, http.MethodPost, "/api/cart/checkout", client, "", gin.H{
		"customer_name": "Aina", "customer_email": "aina@example.com", "order_type": "delivery",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "delivery without address")

	w = s.do(t, http.MethodPost, "/api/cart/checkout", client, "", gin.H{
		"customer_name": "Aina", "customer_email": "aina@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[orderResponse](t, w).Order
	assert.Equal(t, "#1005", order.OrderNumber)
	assert.InDelta(t, 11.50, order.Total, 1e-9)
	assert.Equal(t, models.StatusPending, order.Status)

	w = s.do(t, http.MethodGet, "/api/cart", client, "", nil)
	assert.Zero(t, decode[cartResponse](t, w).Cart.TotalItems)
}

func TestCheckout_RejectsItemWithdrawnAfterAdd(t *testing.T) {
	s := newTestServer(t)
	const client = "withdrawn"

	s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "mocha"})
	_, err := s.h.Catalog.SetAvailability("mocha", false)
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/api/cart/checkout", client, "", gin.H{
		"customer_name": "Aina", "customer_email": "aina@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/cart", client, "", nil)
	assert.Equal(t, 1, decode[cartResponse](t, w).Cart.TotalItems, "a rejected checkout keeps the cart")
}

// ── Auth & customer orders ──────────────────────────────────────────────────

func TestRegister_SignsInAndOrdersAreOwned(t *testing.T) {
	s := newTestServer(t)
	const client = "nurul"

	token := s.register(t, client, "nurul@example.com")
	require.NotEmpty(t, token)

	w := s.do(t, http.MethodGet, "/api/auth/session", client, "", nil)
	snap := decode[struct {
		Session session.Snapshot `json:"session"`
	}](t, w).Session
	assert.True(t, snap.IsAuthenticated)
	assert.False(t, snap.IsAdmin)

	s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "latte"})
	w = s.do(t, http.MethodPost, "/api/cart/checkout", client, "", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	placed := decode[orderResponse](t, w).Order
	assert.Equal(t, "nurul@example.com", placed.CustomerEmail)

	// session token from the client context
	w = s.do(t, http.MethodGet, "/api/orders", client, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct{ Count int }](t, w).Count)

	// bearer token from anywhere
	w = s.do(t, http.MethodGet, "/api/orders", "another-device", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct{ Count int }](t, w).Count)

	w = s.do(t, http.MethodGet, "/api/orders/1", client, "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "demo order belongs to nobody")

	cancel := "/api/orders/" + strconv.FormatUint(uint64(placed.ID), 10) + "/cancel"
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPut, cancel, client, "", nil).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, s.do(t, http.MethodPut, cancel, client, "", nil).Code)

	w = s.do(t, http.MethodPost, "/api/auth/register", "dup", "", gin.H{
		"name": "Nurul", "email": "nurul@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	const client = "wrong-password"

	w := s.do(t, http.MethodPost, "/api/auth/login", client, "", gin.H{"email": "admin@kacip.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/notifications", client, "", nil)
	assert.Contains(t, w.Body.String(), "Invalid email or password")

	w = s.do(t, http.MethodGet, "/api/auth/session", client, "", nil)
	assert.Contains(t, w.Body.String(), `"state":"anonymous"`)
}

func TestLogout_DropsAccess(t *testing.T) {
	s := newTestServer(t)
	const client = "leaving"

	token := s.register(t, client, "leaving@example.com")
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/profile", client, "", nil).Code)

	w := s.do(t, http.MethodPost, "/api/auth/logout", client, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/profile", client, "", nil).Code)
	w = s.do(t, http.MethodGet, "/api/profile", "elsewhere", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "token is revoked server-side")
}

func TestAuthRequired_RejectsMissingAndBadTokens(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/orders", "anon", "", nil).Code)

	w := s.do(t, http.MethodGet, "/api/orders", "anon", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

// ── Admin ───────────────────────────────────────────────────────────────────

func TestAdmin_RequiresAdminRole(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/admin/dashboard", "x", "", nil).Code)

	s.register(t, "customer", "plain@example.com")
	w := s.do(t, http.MethodGet, "/api/admin/dashboard", "customer", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAdmin_Dashboard(t *testing.T) {
	s := newTestServer(t)
	s.login(t, "admin", "admin@kacip.com", "admin123")

	w := s.do(t, http.MethodGet, "/api/admin/dashboard", "admin", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode[struct {
		Orders    orders.Stats      `json:"orders"`
		Customers customers.Stats   `json:"customers"`
		Menu      catalog.MenuStats `json:"menu"`
		Recent    []models.Order    `json:"recent_orders"`
	}](t, w)
	assert.Equal(t, 4, body.Orders.Total)
	assert.Equal(t, 8, body.Customers.Total)
	assert.Equal(t, 15, body.Menu.Total)
	assert.Len(t, body.Recent, 4)
}

func TestAdmin_OrderLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin@kacip.com", "admin123")

	w := s.do(t, http.MethodPut, "/api/admin/orders/1/status", "", token, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"new_status":"confirmed"`)

	w = s.do(t, http.MethodPut, "/api/admin/orders/1/status", "", token, gin.H{"status": "completed"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[struct {
		Next []models.OrderStatus `json:"valid_next_states"`
	}](t, w)
	assert.ElementsMatch(t, []models.OrderStatus{models.StatusPreparing, models.StatusCancelled}, body.Next)

	w = s.do(t, http.MethodPut, "/api/admin/orders/99/status", "", token, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPut, "/api/admin/orders/abc/status", "", token, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/admin/orders/1/force-status", "", token, gin.H{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/admin/orders/1/force-status", "", token, gin.H{"status": "completed", "reason": "walk-in"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/admin/orders/1", "", token, nil)
	order := decode[orderResponse](t, w).Order
	assert.Equal(t, models.StatusCompleted, order.Status)
	assert.Equal(t, models.PaymentPaid, order.PaymentStatus)

	w = s.do(t, http.MethodGet, "/api/admin/orders?status=completed", "", token, nil)
	assert.Equal(t, 2, decode[struct{ Count int }](t, w).Count)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/admin/orders?status=lost", "", token, nil).Code)
}

func TestAdmin_Customers(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin@kacip.com", "admin123")

	w := s.do(t, http.MethodGet, "/api/admin/customers?q=siti", "", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct{ Count int }](t, w).Count)

	w = s.do(t, http.MethodPut, "/api/admin/customers/1/toggle", "admin", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"inactive"`)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPut, "/api/admin/customers/404/toggle", "admin", "", nil).Code)
}

func TestAdmin_MenuManagement(t *testing.T) {
	s := newTestServer(t)
	s.login(t, "admin", "admin@kacip.com", "admin123")
	const client = "admin"

	w := s.do(t, http.MethodPost, "/api/admin/menu", client, "", gin.H{
		"id": "espresso", "name": "Dup", "category": "coffee", "price": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/menu", client, "", gin.H{
		"name": "Bad", "category": "coffee", "price": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/menu", client, "", gin.H{
		"id": "piccolo", "name": "Piccolo", "category": "coffee", "price": 4.0, "is_available": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/menu?category=coffee", "", "", nil)
	assert.Equal(t, 8, decode[struct{ Count int }](t, w).Count)

	w = s.do(t, http.MethodPut, "/api/admin/menu/piccolo/availability", client, "", gin.H{"is_available": false})
	require.Equal(t, http.StatusOK, w.Code)
	item, _ := s.h.Catalog.GetByID("piccolo")
	assert.False(t, item.IsAvailable)

	w = s.do(t, http.MethodGet, "/api/notifications", client, "", nil)
	assert.Contains(t, w.Body.String(), "Menu item added successfully")
	assert.Contains(t, w.Body.String(), "Availability toggled successfully")

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/api/admin/menu/piccolo", client, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/admin/menu/piccolo", client, "", nil).Code)

	w = s.do(t, http.MethodGet, "/api/admin/menu/stats", client, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 15, decode[struct {
		Stats catalog.MenuStats `json:"stats"`
	}](t, w).Stats.Total)
}

// ── Live updates ────────────────────────────────────────────────────────────

func TestEvents_StreamsSnapshotsAndSearch(t *testing.T) {
	s := newTestServer(t)
	const client = "streamer"

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)
	req.Header.Set(middleware.ClientIDHeader, client)
	stream := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.router.ServeHTTP(stream, req)
	}()

	inst := s.registry.Get(context.Background(), client)
	require.Eventually(t, func() bool { return inst.Events.Subscribers() > 0 }, time.Second, 5*time.Millisecond)

	for _, q := range []string{"l", "la", "latte"} {
		w := s.do(t, http.MethodPost, "/api/menu/typeahead", client, "", gin.H{"q": q})
		require.Equal(t, http.StatusAccepted, w.Code)
	}
	w := s.do(t, http.MethodPost, "/api/cart/items", client, "", gin.H{"item_id": "espresso"})
	require.Equal(t, http.StatusOK, w.Code)

	time.Sleep(200 * time.Millisecond)
	cancel()
	<-done

	body := stream.Body.String()
	assert.Equal(t, "text/event-stream", stream.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "event: cart\n"), body)
	assert.Contains(t, body, "event: session\n")
	assert.Contains(t, body, "event: notification\n")
	assert.Contains(t, body, "Classic Espresso added to cart!")
	assert.Equal(t, 1, strings.Count(body, "event: search\n"), "typeahead bursts settle once")
	assert.Contains(t, body, `"query":"latte"`)
	assert.Contains(t, body, "matcha-latte")
}
