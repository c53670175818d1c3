package pages

import (
	"net/http"

	"github.com/GlebRadaev/ordertrack/internal/dto"
	"github.com/GlebRadaev/ordertrack/pkg/auth"
	"github.com/GlebRadaev/ordertrack/pkg/utils"
)

const title = "Order tracker"

type PageHandler struct{}

func New() *PageHandler {
	return &PageHandler{}
}

// Home godoc
//
//	@Summary		Landing page
//	@Description	Public page; shows the session user when logged in
//	@Tags			Pages
//	@Produce		json
//	@Success		200	{object}	dto.HomePageDTO
//	@Router			/ [get]
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	page := dto.HomePageDTO{Title: title}
	if name, ok := auth.CurrentName(r.Context()); ok {
		page.Username = name
	}
	if role, ok := auth.CurrentRole(r.Context()); ok {
		page.Role = string(role)
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}
