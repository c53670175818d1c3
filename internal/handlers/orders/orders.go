package orders

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertrack/internal/domain"
	"github.com/GlebRadaev/ordertrack/internal/dto"
	"github.com/GlebRadaev/ordertrack/pkg/auth"
	"github.com/GlebRadaev/ordertrack/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

const ordersPath = "/orders"

type Service interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	CreateOrder(ctx context.Context, address, description string, price int64) (*domain.Order, error)
	TakeOrder(ctx context.Context, id int64, assignee string) error
	CompleteOrder(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status string) error
	MarkPaid(ctx context.Context, id int64) error
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func newOrderForm(values map[string]string, message string) dto.FormPageDTO {
	return dto.FormPageDTO{
		Form:   "new_order",
		Action: ordersPath + "/new",
		Fields: []string{"address", "description", "price"},
		Values: values,
		Error:  message,
	}
}

// orderID extracts the {id} path value. Anything that is not a positive
// integer cannot name an order.
func orderID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List godoc
//
//	@Summary		List orders
//	@Description	All orders, ordered by id, together with the current session
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	dto.OrdersPageDTO
//	@Failure		303	"Not logged in"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	page := dto.OrdersPageDTO{Orders: make([]dto.OrderResponseDTO, 0, len(orders))}
	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		page.Username = identity.Username
		page.Role = string(identity.Role)
	}
	for _, order := range orders {
		page.Orders = append(page.Orders, dto.NewOrderResponse(order))
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// Get godoc
//
//	@Summary	Get an order
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	dto.OrderResponseDTO
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*order))
}

// NewForm godoc
//
//	@Summary	New order form
//	@Tags		Orders
//	@Produce	json
//	@Success	200	{object}	dto.FormPageDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/orders/new [get]
func (h *OrderHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, newOrderForm(nil, ""))
}

// Create godoc
//
//	@Summary		Create an order
//	@Description	Creates an order in status new, unassigned and unpaid
//	@Tags			Orders
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			address		formData	string	true	"Delivery address"
//	@Param			description	formData	string	false	"Description"
//	@Param			price		formData	int		false	"Price, non-negative"
//	@Success		303
//	@Failure		400	{object}	dto.FormPageDTO	"Invalid order"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/orders/new [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, newOrderForm(nil, "Invalid form"))
		return
	}
	values := map[string]string{
		"address":     r.PostForm.Get("address"),
		"description": r.PostForm.Get("description"),
		"price":       r.PostForm.Get("price"),
	}

	var price int64
	if raw := strings.TrimSpace(values["price"]); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			utils.RespondWithJSON(w, http.StatusBadRequest, newOrderForm(values, "Price must be a non-negative integer"))
			return
		}
		price = parsed
	}

	_, err := h.orderService.CreateOrder(r.Context(), values["address"], values["description"], price)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrder) {
			utils.RespondWithJSON(w, http.StatusBadRequest, newOrderForm(values, "Address is required"))
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	http.Redirect(w, r, ordersPath, http.StatusSeeOther)
}

// Take godoc
//
//	@Summary		Take an order
//	@Description	Assigns the order and moves it to in_progress. Defaults to the current user when no assignee is given.
//	@Tags			Orders
//	@Accept			x-www-form-urlencoded
//	@Param			id			path		int		true	"Order id"
//	@Param			assignee	formData	string	false	"Assignee"
//	@Success		303
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/orders/{id}/take [post]
func (h *OrderHandler) Take(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form")
		return
	}
	assignee := strings.TrimSpace(r.PostForm.Get("assignee"))
	if assignee == "" {
		assignee, _ = auth.CurrentName(r.Context())
	}

	h.mutate(w, r, h.orderService.TakeOrder(r.Context(), id, assignee))
}

// Complete godoc
//
//	@Summary	Complete an order
//	@Tags		Orders
//	@Param		id	path	int	true	"Order id"
//	@Success	303
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/orders/{id}/complete [post]
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	h.mutate(w, r, h.orderService.CompleteOrder(r.Context(), id))
}

// SetStatus godoc
//
//	@Summary		Set order status
//	@Description	Stores any non-empty status verbatim
//	@Tags			Orders
//	@Accept			x-www-form-urlencoded
//	@Param			id		path		int		true	"Order id"
//	@Param			status	formData	string	true	"New status"
//	@Success		303
//	@Failure		400	{object}	utils.Response	"Status is required"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/orders/{id}/status [post]
func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form")
		return
	}
	status := r.PostForm.Get("status")
	if status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}
	h.mutate(w, r, h.orderService.SetStatus(r.Context(), id, status))
}

// Pay godoc
//
//	@Summary	Mark an order as paid
//	@Tags		Orders
//	@Param		id	path	int	true	"Order id"
//	@Success	303
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/orders/{id}/pay [post]
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	h.mutate(w, r, h.orderService.MarkPaid(r.Context(), id))
}

func (h *OrderHandler) mutate(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	http.Redirect(w, r, ordersPath, http.StatusSeeOther)
}

func (h *OrderHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrInvalidOrder):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		zap.L().Debug("order request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
