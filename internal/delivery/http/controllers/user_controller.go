package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventchat/internal/delivery/http/helpers"
	"eventchat/internal/delivery/http/middleware"
	"eventchat/internal/domain"
)

// RegisterRequest is the request body for POST /user/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginRequest is the request body for POST /user/login
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, "name is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /user/login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UserController handles registration, login, logout, and user reads.
type UserController struct {
	Logger *slog.Logger
	Users  domain.UserService
	Auth   domain.AuthService
}

// NewUserController creates a UserController with the given logger and services.
func NewUserController(logger *slog.Logger, users domain.UserService, auth domain.AuthService) *UserController {
	return &UserController{
		Logger: logger,
		Users:  users,
		Auth:   auth,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user with a unique name. The password is stored only as a bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Credentials"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.MessageResponse "Username already exists"
// @Router /user/register [post]
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.Users.Register(r.Context(), req.Name, req.Password); err != nil {
		if errors.Is(err, domain.ErrNameTaken) {
			helpers.WriteResponse(w, http.StatusBadRequest, "Username already exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteResponse(w, http.StatusOK, "User created")
}

// Login godoc
// @Summary Log in
// @Description Authenticate with name and password. Returns a signed access token carrying the user name and a unique token id.
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} helpers.MessageResponse "Wrong username or password"
// @Router /user/login [post]
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Users.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteResponse(w, http.StatusUnauthorized, "Wrong username or password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{AccessToken: token})
}

// Logout godoc
// @Summary Log out
// @Description Revoke the presented token. The token fails authentication from now on, even before its expiry.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Router /user/logout [post]
func (c *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	jti, ok := middleware.TokenIDFromContext(r.Context())
	if !ok {
		helpers.WriteResponse(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	if err := c.Auth.Logout(r.Context(), jti); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteResponse(w, http.StatusOK, "Logout successful")
}

// GetUser godoc
// @Summary Get a user
// @Description Returns the user's profile: id, name, event ids, and authored messages.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param name path string true "User name"
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} helpers.MessageResponse "User not found"
// @Router /user/{name} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	profile, err := c.Users.GetProfile(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteResponse(w, http.StatusNotFound, "User not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, profile)
}
