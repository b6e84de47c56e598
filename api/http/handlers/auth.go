package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/abalakin/userauth/api/http/presenter"
	"github.com/abalakin/userauth/pkg/auth"
)

type AuthHandler struct {
	useCase  auth.AuthUseCase
	validate *validator.Validate
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase, validate: validator.New()}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} presenter.Response
// @Failure 400 {object} presenter.Response
// @Failure 409 {object} presenter.Response
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "name, email and password are required")
	}

	result, err := h.useCase.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrEmailTaken):
			return presenter.Error(c, http.StatusConflict, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.Success(c, http.StatusCreated, authResponse{
		ID:    result.User.ID.String(),
		Name:  result.User.Name,
		Email: result.User.Email,
		Token: result.Token,
	})
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} presenter.Response
// @Failure 400 {object} presenter.Response
// @Failure 401 {object} presenter.Response
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrInvalidCredentials):
			// Identical body for unknown email and wrong password.
			return presenter.Error(c, http.StatusUnauthorized, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to login")
		}
	}

	return presenter.Success(c, http.StatusOK, authResponse{
		ID:    result.User.ID.String(),
		Name:  result.User.Name,
		Email: result.User.Email,
		Token: result.Token,
	})
}

// Profile returns the acting identity established by the auth middleware.
// @Summary Current user profile
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} presenter.Response
// @Failure 401 {object} presenter.Response
// @Router  /auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, ok := UserFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, auth.ErrUnauthorized.Error())
	}
	return presenter.Success(c, http.StatusOK, user)
}

// Protected is an example route behind the auth middleware; it echoes the
// resolved identity.
// @Summary Example protected route
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} presenter.Response
// @Failure 401 {object} presenter.Response
// @Router  /protected [get]
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	user, ok := UserFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, auth.ErrUnauthorized.Error())
	}
	return presenter.Success(c, http.StatusOK, fiber.Map{
		"message": "This is a protected route",
		"user":    user,
	})
}
