package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/ordertrack/docs"
	authhandlers "github.com/GlebRadaev/ordertrack/internal/handlers/auth"
	ordershandlers "github.com/GlebRadaev/ordertrack/internal/handlers/orders"
	pagehandlers "github.com/GlebRadaev/ordertrack/internal/handlers/pages"
	"github.com/GlebRadaev/ordertrack/internal/policy"
	"github.com/GlebRadaev/ordertrack/internal/service"
	"github.com/GlebRadaev/ordertrack/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	LoginForm(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RegisterForm(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	NewForm(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Take(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type PageHandler interface {
	Home(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler  AuthHandler
	OrderHandler OrderHandler
	PageHandler  PageHandler
	Sessions     *auth.SessionManager
}

func New(s *service.Services, sessions *auth.SessionManager) *Handlers {
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AuthService, sessions),
		OrderHandler: ordershandlers.New(s.OrderService),
		PageHandler:  pagehandlers.New(),
		Sessions:     sessions,
	}
}

// InitRoutes mounts every route. Order routes are guarded by the action they
// perform, and the policy table decides which roles may perform it.
func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		h.Sessions.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Get("/", h.PageHandler.Home)
	r.Get("/login", h.AuthHandler.LoginForm)
	r.Post("/login", h.AuthHandler.Login)
	r.Get("/register", h.AuthHandler.RegisterForm)
	r.Post("/register", h.AuthHandler.Register)
	r.With(auth.RequireAuth).Post("/logout", h.AuthHandler.Logout)

	r.Route("/orders", func(r chi.Router) {
		r.With(auth.Require(policy.ViewOrders)).Get("/", h.OrderHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(auth.Require(policy.CreateOrder))
			r.Get("/new", h.OrderHandler.NewForm)
			r.Post("/new", h.OrderHandler.Create)
		})

		r.Route("/{id}", func(r chi.Router) {
			r.With(auth.Require(policy.ViewOrders)).Get("/", h.OrderHandler.Get)
			r.With(auth.Require(policy.TakeOrder)).Post("/take", h.OrderHandler.Take)
			r.With(auth.Require(policy.CompleteOrder)).Post("/complete", h.OrderHandler.Complete)
			r.With(auth.Require(policy.SetStatus)).Post("/status", h.OrderHandler.SetStatus)
			r.With(auth.Require(policy.MarkPaid)).Post("/pay", h.OrderHandler.Pay)
		})
	})

	return r
}
