package auth

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertrack/internal/domain"
	"github.com/GlebRadaev/ordertrack/internal/dto"
	"github.com/GlebRadaev/ordertrack/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

const (
	loginFailedMessage = "Invalid username or password"
	ordersPath         = "/orders"
	loginPath          = "/login"
)

type Service interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

type Sessions interface {
	Establish(w http.ResponseWriter, identity domain.Identity) error
	Clear(w http.ResponseWriter)
}

type AuthHandler struct {
	authService Service
	sessions    Sessions
}

func New(authService Service, sessions Sessions) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

func loginForm(username, message string) dto.FormPageDTO {
	page := dto.FormPageDTO{
		Form:   "login",
		Action: loginPath,
		Fields: []string{"username", "password"},
		Error:  message,
	}
	if username != "" {
		page.Values = map[string]string{"username": username}
	}
	return page
}

func registerForm(username, role, message string) dto.FormPageDTO {
	roles := make([]string, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		roles = append(roles, string(r))
	}
	page := dto.FormPageDTO{
		Form:   "register",
		Action: "/register",
		Fields: []string{"username", "password", "role"},
		Roles:  roles,
		Error:  message,
	}
	if username != "" || role != "" {
		page.Values = map[string]string{"username": username, "role": role}
	}
	return page
}

// LoginForm godoc
//
//	@Summary	Login form
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	dto.FormPageDTO
//	@Router		/login [get]
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, loginForm("", ""))
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password and establish a session cookie
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		303
//	@Failure		400	{object}	dto.FormPageDTO	"Invalid credentials"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, loginForm("", "Invalid form"))
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	user, err := h.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			utils.RespondWithJSON(w, http.StatusBadRequest, loginForm(username, loginFailedMessage))
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.startSession(w, r, user)
}

// RegisterForm godoc
//
//	@Summary	Registration form
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	dto.FormPageDTO
//	@Router		/register [get]
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, registerForm("", "", ""))
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user with one of the roles customer, worker or admin and establish a session
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Param			role		formData	string	true	"Role"	Enums(customer, worker, admin)
//	@Success		303
//	@Failure		400	{object}	dto.FormPageDTO	"Invalid role, missing fields or username taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, registerForm("", "", "Invalid form"))
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	rawRole := r.PostForm.Get("role")

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, registerForm(username, rawRole, "Invalid role"))
		return
	}

	user, err := h.authService.Register(r.Context(), username, password, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUser):
			utils.RespondWithJSON(w, http.StatusBadRequest, registerForm(username, rawRole, "Username already taken"))
		case errors.Is(err, domain.ErrMissingCredentials):
			utils.RespondWithJSON(w, http.StatusBadRequest, registerForm(username, rawRole, "Username and password are required"))
		case errors.Is(err, domain.ErrInvalidRole):
			utils.RespondWithJSON(w, http.StatusBadRequest, registerForm(username, rawRole, "Invalid role"))
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	h.startSession(w, r, user)
}

// Logout godoc
//
//	@Summary	End the current session
//	@Tags		Auth
//	@Success	303
//	@Router		/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *domain.User) {
	if err := h.sessions.Establish(w, user.Identity()); err != nil {
		zap.L().Error("can't establish session", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Error establishing session")
		return
	}
	http.Redirect(w, r, ordersPath, http.StatusSeeOther)
}
