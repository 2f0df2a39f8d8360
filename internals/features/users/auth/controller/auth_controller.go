package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/users/auth/dto"
	"schoolku_backend/internals/features/users/auth/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type AuthController struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Service:  service.NewAuthService(db, configs.JWTSecret),
		Validate: validator.New(),
	}
}

// POST /api/auth/register
// New accounts bind to the resolved tenant (subdomain or ?schoolId= on the
// public registration form). A super admin without context provisions
// unbound accounts.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	schoolID, _ := tenancy.SchoolIDFromCtx(c)
	if schoolID == uuid.Nil && helper.GetRoleFromToken(c) != constants.RoleSuperAdmin {
		return helper.Error(c, fiber.StatusForbidden,
			"School context is required. Please provide a valid school identifier.")
	}

	m := req.ToModel()
	if err := ctrl.Service.Register(c.UserContext(), m, req.UserPassword, schoolID); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Registration failed")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created", dto.NewUserResponse(m))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, user, err := ctrl.Service.Login(c.UserContext(), req.UserEmail, req.UserPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrAccountInactive):
			return helper.Error(c, fiber.StatusForbidden, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	})
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	} else {
		raw = strings.TrimSpace(c.Cookies("access_token"))
	}
	if raw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "No token to revoke")
	}

	if err := ctrl.Service.Logout(c.UserContext(), raw); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Logout failed")
	}
	c.ClearCookie("access_token")
	return helper.Success(c, "Logged out", nil)
}
