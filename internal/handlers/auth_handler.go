package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/learnhub/auth-service/internal/config"
	"github.com/learnhub/auth-service/internal/dto"
	"github.com/learnhub/auth-service/internal/services"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authService *services.AuthService
	google      *services.GoogleOAuthClient
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, google *services.GoogleOAuthClient, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, google: google, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		// Duplicate email and validation failures are both client errors.
		if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.authService.ValidateUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrInvalidCredentials.Error(),
		})
	}

	resp, err := h.authService.Login(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}

// GoogleLogin starts the consent flow: sets a CSRF state cookie and redirects
// the browser to Google's authorization page.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	if !h.google.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Google sign-in is not configured",
		})
	}

	state, err := services.NewOAuthState()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(h.google.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback completes the consent flow: verifies state, exchanges the
// code, reconciles the identity with a local account and hands the session
// token back via an httpOnly cookie before redirecting to the frontend.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid OAuth state",
		})
	}
	c.ClearCookie(oauthStateCookie)

	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing authorization code",
		})
	}

	profile, err := h.google.FetchProfile(c.Context(), code)
	if err != nil {
		slog.Error("google profile fetch failed", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Google sign-in failed",
		})
	}

	resp, err := h.authService.SocialLogin(c.Context(), profile.Email, profile.FullName())
	if err != nil {
		slog.Error("social login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    resp.AccessToken,
		Expires:  time.Unix(resp.ExpiresAt, 0),
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(h.cfg.OAuthSuccessRedirect, fiber.StatusFound)
}

// Me echoes the identity claims of the bearer token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claims",
		})
	}

	role, _ := claims["rol"].(string)
	if role == "" {
		role = "user"
	}

	return c.JSON(fiber.Map{
		"userId":     claims["sub"],
		"email":      claims["email"],
		"first_name": claims["name"],
		"last_name":  claims["last_name"],
		"role":       role,
	})
}
