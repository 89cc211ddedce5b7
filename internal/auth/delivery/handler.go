package delivery

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authdomain "jarvis-backend/internal/auth/domain"
	authdto "jarvis-backend/internal/auth/dto"
	"jarvis-backend/internal/auth/usecase"
)

const stateCookie = "oauth_state"

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleStart redirects to the Google consent screen. The random state is
// pinned in a short-lived cookie and checked on the way back.
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.authUsecase.GoogleAuthURL(state))
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth error: " + errParam})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	expectedState, err := c.Cookie(stateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid OAuth state"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	resp, err := h.authUsecase.HandleGoogleCallback(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed: " + err.Error()})
		return
	}

	// The extension's background script picks the token off this URL.
	c.Redirect(http.StatusFound, "/api/auth/success?token="+resp.AccessToken)
}

// GoogleSuccess renders a minimal landing page after the OAuth redirect.
func (h *AuthHandler) GoogleSuccess(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, googleSuccessPage)
}

const googleSuccessPage = `<!DOCTYPE html>
<html>
  <head><title>Connected</title></head>
  <body>
    <h1>Success!</h1>
    <p>Google account connected. You can close this tab.</p>
  </body>
</html>`

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := UserFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UserFrom extracts the authenticated user set by AuthMiddleware.
func UserFrom(c *gin.Context) (*authdomain.User, error) {
	value, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("no authenticated user in context")
	}
	user, ok := value.(*authdomain.User)
	if !ok {
		return nil, fmt.Errorf("unexpected user type in context")
	}
	return user, nil
}
