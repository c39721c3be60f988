package controllers

import (
	"courseadmin/config"
	"courseadmin/middleware"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin exchanges the admin password for a JWT. Only meaningful when
// AUTH_REQUIRED is set; with the world-writable default nothing checks the
// token, but the endpoint still answers so clients can be written once.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Admin login is not configured!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid password!", nil)
	}

	token, err := middleware.GenerateAdminJWT()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
	})
}
