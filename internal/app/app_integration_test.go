//go:build integration

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/GlebRadaev/ordertrack/internal/config"
	"github.com/GlebRadaev/ordertrack/internal/dto"
	"github.com/GlebRadaev/ordertrack/internal/pg"
)

// EndToEndSuite drives the HTTP API against a real PostgreSQL.
type EndToEndSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	server    *httptest.Server
}

func TestEndToEnd(t *testing.T) {
	suite.Run(t, new(EndToEndSuite))
}

func (s *EndToEndSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ordertrack"),
		postgres.WithUsername("ordertrack"),
		postgres.WithPassword("ordertrack"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	cfg := &config.Config{
		Database:      dsn,
		SessionSecret: "integration-secret",
		SessionTTL:    time.Hour,
	}
	pool, err := getPgxpool(ctx, cfg)
	s.Require().NoError(err)
	s.pool = pool
	s.Require().NoError(pg.RunMigrations(ctx, pool))

	a := New()
	a.wire(cfg, pg.New(pool))
	s.server = httptest.NewServer(a.router())
}

func (s *EndToEndSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *EndToEndSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE TABLE orders, users RESTART IDENTITY")
	s.Require().NoError(err)
}

// client keeps its own cookie jar and reports redirects instead of following them.
func (s *EndToEndSuite) client() *http.Client {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (s *EndToEndSuite) post(c *http.Client, path string, form url.Values) *http.Response {
	resp, err := c.PostForm(s.server.URL+path, form)
	s.Require().NoError(err)
	s.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *EndToEndSuite) get(c *http.Client, path string) *http.Response {
	resp, err := c.Get(s.server.URL + path)
	s.Require().NoError(err)
	s.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *EndToEndSuite) signUp(username, password, role string) *http.Client {
	c := s.client()
	resp := s.post(c, "/register", url.Values{"username": {username}, "password": {password}, "role": {role}})
	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)

	resp = s.post(c, "/login", url.Values{"username": {username}, "password": {password}})
	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)
	s.Require().Equal("/orders", resp.Header.Get("Location"))
	return c
}

func (s *EndToEndSuite) orders(c *http.Client) []dto.OrderResponseDTO {
	resp := s.get(c, "/orders")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var page dto.OrdersPageDTO
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&page))
	return page.Orders
}

func (s *EndToEndSuite) TestOrderLifecycle() {
	bob := s.signUp("bob", "pw", "customer")
	resp := s.post(bob, "/orders/new", url.Values{"address": {"5 Elm St"}, "description": {""}, "price": {"0"}})
	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)

	list := s.orders(bob)
	s.Require().Len(list, 1)
	s.Equal("new", list[0].Status)
	s.Nil(list[0].Assignee)
	s.False(list[0].Paid)
	s.Equal(int64(0), list[0].Price)
	s.NotEmpty(list[0].CreatedAt)
	id := fmt.Sprint(list[0].ID)

	carl := s.signUp("carl", "pw", "worker")
	resp = s.post(carl, "/orders/"+id+"/take", url.Values{"assignee": {"carl"}})
	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)

	list = s.orders(carl)
	s.Equal("in_progress", list[0].Status)
	s.Require().NotNil(list[0].Assignee)
	s.Equal("carl", *list[0].Assignee)

	admin := s.signUp("admin", "secret", "admin")
	s.Equal(http.StatusSeeOther, s.post(admin, "/orders/"+id+"/status", url.Values{"status": {"done"}}).StatusCode)
	s.Equal(http.StatusSeeOther, s.post(admin, "/orders/"+id+"/pay", nil).StatusCode)

	list = s.orders(admin)
	s.Equal("done", list[0].Status)
	s.True(list[0].Paid)
}

func (s *EndToEndSuite) TestRoleMatrix() {
	bob := s.signUp("bob", "pw", "customer")
	s.Require().Equal(http.StatusSeeOther, s.post(bob, "/orders/new", url.Values{"address": {"1 Main St"}}).StatusCode)

	for _, action := range []string{"take", "complete", "status", "pay"} {
		s.Equal(http.StatusForbidden, s.post(bob, "/orders/1/"+action, url.Values{"status": {"x"}}).StatusCode, action)
	}

	carl := s.signUp("carl", "pw", "worker")
	s.Equal(http.StatusForbidden, s.post(carl, "/orders/new", url.Values{"address": {"2 Main St"}}).StatusCode)
	s.Equal(http.StatusForbidden, s.post(carl, "/orders/1/pay", nil).StatusCode)

	anonymous := s.client()
	resp := s.get(anonymous, "/orders")
	s.Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal("/login", resp.Header.Get("Location"))
}

func (s *EndToEndSuite) TestDuplicateRegistration() {
	s.signUp("bob", "pw", "customer")

	resp := s.post(s.client(), "/register", url.Values{"username": {"bob"}, "password": {"other"}, "role": {"worker"}})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	var page dto.FormPageDTO
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&page))
	s.Equal("Username already taken", page.Error)
}

func (s *EndToEndSuite) TestMissingOrder() {
	admin := s.signUp("admin", "secret", "admin")

	s.Equal(http.StatusNotFound, s.post(admin, "/orders/999/take", url.Values{"assignee": {"x"}}).StatusCode)
	s.Equal(http.StatusNotFound, s.post(admin, "/orders/999/complete", nil).StatusCode)
	s.Equal(http.StatusNotFound, s.post(admin, "/orders/999/status", url.Values{"status": {"lost"}}).StatusCode)
	s.Equal(http.StatusNotFound, s.post(admin, "/orders/999/pay", nil).StatusCode)
	s.Equal(http.StatusNotFound, s.get(admin, "/orders/999").StatusCode)
}

func (s *EndToEndSuite) TestLongStatusRoundTrips() {
	admin := s.signUp(strings.Repeat("a", 300), "secret", "admin")
	s.Require().Equal(http.StatusSeeOther, s.post(admin, "/orders/new", url.Values{"address": {"1 Main St"}}).StatusCode)

	status := strings.Repeat("x", 65)
	s.Equal(http.StatusSeeOther, s.post(admin, "/orders/1/status", url.Values{"status": {status}}).StatusCode)

	list := s.orders(admin)
	s.Require().Len(list, 1)
	s.Equal(status, list[0].Status)
}
