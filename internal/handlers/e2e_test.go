package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/ordertrack/internal/domain"
	"github.com/GlebRadaev/ordertrack/internal/dto"
	"github.com/GlebRadaev/ordertrack/internal/repo"
	"github.com/GlebRadaev/ordertrack/internal/service"
)

type memoryUsers struct {
	mu     sync.Mutex
	nextID int
	users  map[string]domain.User
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *memoryUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Username]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateUser, user.Username)
	}
	m.nextID++
	stored := *user
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	m.users[stored.Username] = stored
	return &stored, nil
}

type memoryOrders struct {
	mu     sync.Mutex
	nextID int64
	orders []domain.Order
}

func (m *memoryOrders) List(_ context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *memoryOrders) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, order := range m.orders {
		if order.ID == id {
			return &order, nil
		}
	}
	return nil, fmt.Errorf("find order %d: %w", id, domain.ErrNotFound)
}

func (m *memoryOrders) Create(ctx context.Context, address, description string, price int64) (*domain.Order, error) {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.orders = append(m.orders, domain.Order{
		ID:          id,
		Address:     address,
		Description: description,
		Price:       price,
		Status:      domain.OrderStatusNew,
		CreatedAt:   time.Now(),
	})
	m.mu.Unlock()
	return m.FindByID(ctx, id)
}

func (m *memoryOrders) update(id int64, apply func(*domain.Order)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			apply(&m.orders[i])
			return nil
		}
	}
	return fmt.Errorf("update order %d: %w", id, domain.ErrNotFound)
}

func (m *memoryOrders) Take(_ context.Context, id int64, assignee string) error {
	return m.update(id, func(o *domain.Order) {
		o.Assignee = &assignee
		o.Status = domain.OrderStatusInProgress
	})
}

func (m *memoryOrders) Complete(ctx context.Context, id int64) error {
	return m.SetStatus(ctx, id, domain.OrderStatusDone)
}

func (m *memoryOrders) SetStatus(_ context.Context, id int64, status string) error {
	return m.update(id, func(o *domain.Order) { o.Status = status })
}

func (m *memoryOrders) MarkPaid(_ context.Context, id int64) error {
	return m.update(id, func(o *domain.Order) { o.Paid = true })
}

// browser replays the session cookie the way a user agent would.
type browser struct {
	t       *testing.T
	router  http.Handler
	session *http.Cookie
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if b.session != nil {
		req.AddCookie(b.session)
	}
	rec := httptest.NewRecorder()
	b.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name != "session" {
			continue
		}
		if c.MaxAge < 0 {
			b.session = nil
		} else {
			b.session = c
		}
	}
	return rec
}

func (b *browser) listOrders() dto.OrdersPageDTO {
	b.t.Helper()
	rec := b.do(http.MethodGet, "/orders", nil)
	require.Equal(b.t, http.StatusOK, rec.Code)
	var page dto.OrdersPageDTO
	require.NoError(b.t, json.NewDecoder(rec.Body).Decode(&page))
	return page
}

type RouterSuite struct {
	suite.Suite
	router chi.Router
}

func (s *RouterSuite) SetupTest() {
	repos := &repo.Repositories{
		UserRepo:  &memoryUsers{users: map[string]domain.User{}},
		OrderRepo: &memoryOrders{},
	}
	h := New(service.New(repos), newSessions())
	s.router = h.InitRoutes(chi.NewRouter())
}

func (s *RouterSuite) newBrowser() *browser {
	return &browser{t: s.T(), router: s.router}
}

func (s *RouterSuite) signUp(username, password string, role domain.Role) *browser {
	b := s.newBrowser()
	rec := b.do(http.MethodPost, "/register", url.Values{
		"username": {username}, "password": {password}, "role": {string(role)},
	})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Require().Equal("/orders", rec.Header().Get("Location"))

	b.do(http.MethodPost, "/logout", nil)
	s.Require().Nil(b.session)

	rec = b.do(http.MethodPost, "/login", url.Values{"username": {username}, "password": {password}})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Require().NotNil(b.session)
	return b
}

func (s *RouterSuite) TestOrderLifecycle() {
	bob := s.signUp("bob", "pw", domain.RoleCustomer)
	rec := bob.do(http.MethodPost, "/orders/new", url.Values{"address": {"5 Elm St"}, "description": {""}, "price": {"0"}})
	s.Require().Equal(http.StatusSeeOther, rec.Code)

	page := bob.listOrders()
	s.Equal("bob", page.Username)
	s.Require().Len(page.Orders, 1)
	order := page.Orders[0]
	s.Equal("5 Elm St", order.Address)
	s.Equal(domain.OrderStatusNew, order.Status)
	s.Nil(order.Assignee)
	s.False(order.Paid)

	id := fmt.Sprint(order.ID)
	s.Equal(http.StatusForbidden, bob.do(http.MethodPost, "/orders/"+id+"/take", url.Values{"assignee": {"bob"}}).Code)

	carl := s.signUp("carl", "pw", domain.RoleWorker)
	s.Equal(http.StatusForbidden, carl.do(http.MethodPost, "/orders/new", url.Values{"address": {"x"}}).Code)
	rec = carl.do(http.MethodPost, "/orders/"+id+"/take", url.Values{"assignee": {"carl"}})
	s.Require().Equal(http.StatusSeeOther, rec.Code)

	order = carl.listOrders().Orders[0]
	s.Equal(domain.OrderStatusInProgress, order.Status)
	s.Require().NotNil(order.Assignee)
	s.Equal("carl", *order.Assignee)

	root := s.signUp("root", "secret", domain.RoleAdmin)
	s.Equal(http.StatusSeeOther, root.do(http.MethodPost, "/orders/"+id+"/status", url.Values{"status": {"done"}}).Code)
	s.Equal(http.StatusSeeOther, root.do(http.MethodPost, "/orders/"+id+"/pay", nil).Code)

	order = root.listOrders().Orders[0]
	s.Equal(domain.OrderStatusDone, order.Status)
	s.True(order.Paid)
	s.Equal("carl", *order.Assignee)
}

func (s *RouterSuite) TestUnknownOrderIsNotFound() {
	root := s.signUp("root", "secret", domain.RoleAdmin)

	for _, action := range []string{"take", "complete", "status", "pay"} {
		rec := root.do(http.MethodPost, "/orders/404/"+action, url.Values{"status": {"x"}, "assignee": {"y"}})
		s.Equal(http.StatusNotFound, rec.Code, action)
	}
	s.Equal(http.StatusNotFound, root.do(http.MethodGet, "/orders/404", nil).Code)
	s.Equal(http.StatusNotFound, root.do(http.MethodGet, "/orders/abc", nil).Code)
}

func (s *RouterSuite) TestTakeDefaultsToSessionUser() {
	root := s.signUp("root", "secret", domain.RoleAdmin)
	s.Require().Equal(http.StatusSeeOther, root.do(http.MethodPost, "/orders/new", url.Values{"address": {"1 Main St"}}).Code)

	s.Require().Equal(http.StatusSeeOther, root.do(http.MethodPost, "/orders/1/take", url.Values{}).Code)
	s.Require().Equal(http.StatusSeeOther, root.do(http.MethodPost, "/orders/1/take", url.Values{"assignee": {"alice"}}).Code)

	rec := root.do(http.MethodGet, "/orders/1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var order dto.OrderResponseDTO
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&order))
	s.Equal("alice", *order.Assignee)
	s.Equal(domain.OrderStatusInProgress, order.Status)
}

func (s *RouterSuite) TestRegistrationFailures() {
	s.signUp("bob", "pw", domain.RoleCustomer)
	b := s.newBrowser()

	rec := b.do(http.MethodPost, "/register", url.Values{"username": {"bob"}, "password": {"other"}, "role": {"worker"}})
	s.Equal(http.StatusBadRequest, rec.Code)
	var page dto.FormPageDTO
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&page))
	s.Equal("Username already taken", page.Error)
	s.Nil(b.session)

	rec = b.do(http.MethodPost, "/register", url.Values{"username": {"eve"}, "password": {"pw"}, "role": {"superuser"}})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = b.do(http.MethodPost, "/login", url.Values{"username": {"bob"}, "password": {"wrong"}})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Nil(b.session)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func TestHomeShowsSessionUser(t *testing.T) {
	repos := &repo.Repositories{
		UserRepo:  &memoryUsers{users: map[string]domain.User{}},
		OrderRepo: &memoryOrders{},
	}
	router := New(service.New(repos), newSessions()).InitRoutes(chi.NewRouter())
	b := &browser{t: t, router: router}

	b.do(http.MethodPost, "/register", url.Values{"username": {"bob"}, "password": {"pw"}, "role": {"customer"}})
	rec := b.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var page dto.HomePageDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, "bob", page.Username)
	assert.Equal(t, "customer", page.Role)
}
