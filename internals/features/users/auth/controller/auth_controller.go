// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nilaiku_backend/internals/configs"
	authDTO "nilaiku_backend/internals/features/users/auth/dto"
	authModel "nilaiku_backend/internals/features/users/auth/model"
	authService "nilaiku_backend/internals/features/users/auth/service"
	helper "nilaiku_backend/internals/helpers"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login
// POST /api/admin/login
// Fixed single admin account: password checked against the configured
// bcrypt hash, success issues an opaque bearer token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	hash := configs.AdminPasswordHash
	if hash == "" {
		return fiber.NewError(fiber.StatusInternalServerError, "Admin credentials not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		// same message for wrong user and wrong password
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := authService.IssueAdminToken(configs.JWTSecret, tokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{Token: token})
}

// Logout
// POST /api/a/logout
// Blacklists the presented token until its natural expiry.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("admin_token").(string)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
	}
	exp, _ := c.Locals("admin_token_exp").(time.Time)
	if exp.IsZero() {
		exp = time.Now().Add(tokenTTL)
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: exp}
	if err := ac.DB.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// already blacklisted, treat as success
			return helper.JsonOK(c, "Logged out", nil)
		}
		return helper.FromDBError(err, "")
	}
	return helper.JsonOK(c, "Logged out", nil)
}
