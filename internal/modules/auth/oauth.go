package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/config"
	"github.com/misterbista/portfolio-api/internal/middleware"
	jwtpkg "github.com/misterbista/portfolio-api/internal/pkg/jwt"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"go.uber.org/zap"
)

const sessionTTL = 7 * 24 * time.Hour

// Handler handles the GitHub OAuth login flow and session endpoints.
type Handler struct {
	cfg    *config.AppConfig
	gate   *Gate
	client *http.Client
	logger *zap.Logger
}

func NewHandler(cfg *config.AppConfig, gate *Gate, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		gate:   gate,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	g := rg.Group("/auth")

	g.GET("/redirect", h.redirectToGitHub)
	g.GET("/callback", h.handleCallback)
	g.GET("/session", h.session)
	g.POST("/signout", h.signout)
}

// GET /auth/redirect?callback_url=...
func (h *Handler) redirectToGitHub(c *gin.Context) {
	if h.cfg.GitHubClientID == "" {
		response.NotFoundMsg(c, "OAuth provider not configured")
		return
	}

	params := url.Values{}
	params.Set("client_id", h.cfg.GitHubClientID)
	params.Set("redirect_uri", callbackURI(c))
	params.Set("scope", "read:user")
	if callbackURL := c.Query("callback_url"); callbackURL != "" {
		params.Set("state", callbackURL)
	}

	c.Redirect(http.StatusTemporaryRedirect, "https://github.com/login/oauth/authorize?"+params.Encode())
}

// GET /auth/callback?code=...
//
// The exchange and profile fetch run as an assertion fed into the gate, so
// the bounded timeout applies to the whole identity round-trip: a hung
// provider resolves to logged-out, never to an admitted session.
func (h *Handler) handleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "missing code")
		return
	}

	assertions := make(chan Identity, 1)
	go func() {
		accessToken, err := h.exchangeCode(code, callbackURI(c))
		if err != nil {
			h.logger.Warn("token exchange failed", zap.Error(err))
			return
		}
		username, err := h.fetchGitHubLogin(accessToken)
		if err != nil {
			h.logger.Warn("profile fetch failed", zap.Error(err))
			return
		}
		assertions <- Identity{Username: username}
	}()

	state, id := h.gate.Await(c.Request.Context(), assertions)
	switch state {
	case StateReadyAuthenticated:
		token, err := jwtpkg.Sign(id.Username, sessionTTL)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{
			"state": state,
			"token": token,
			"user":  gin.H{"username": id.Username},
		})
	case StateUnauthorized:
		h.logger.Info("gate rejected identity", zap.String("username", id.Username))
		response.Forbidden(c, "this admin panel is restricted to its owner")
	default:
		response.Unauthorized(c)
	}
}

// GET /auth/session
func (h *Handler) session(c *gin.Context) {
	username := middleware.CurrentUsername(c)

	var id *Identity
	if username != "" {
		id = &Identity{Username: username}
	}
	state := h.gate.Check(id)

	payload := gin.H{"state": state}
	if state == StateReadyAuthenticated {
		payload["user"] = gin.H{"username": username}
	}
	response.OK(c, payload)
}

// POST /auth/signout
//
// Tokens are stateless, so there is nothing to revoke server-side; the
// client drops its copy.
func (h *Handler) signout(c *gin.Context) {
	response.NoContent(c)
}

func callbackURI(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/api/v1/auth/callback", scheme, c.Request.Host)
}

func (h *Handler) exchangeCode(code, redirectURI string) (string, error) {
	body := url.Values{}
	body.Set("client_id", h.cfg.GitHubClientID)
	body.Set("client_secret", h.cfg.GitHubClientSecret)
	body.Set("code", code)
	body.Set("redirect_uri", redirectURI)

	req, _ := http.NewRequest("POST", "https://github.com/login/oauth/access_token", bytes.NewBufferString(body.Encode()))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("github: %s", result.Error)
	}
	return result.AccessToken, nil
}

func (h *Handler) fetchGitHubLogin(accessToken string) (string, error) {
	req, _ := http.NewRequest("GET", "https://api.github.com/user", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github: user endpoint returned %d", resp.StatusCode)
	}

	var user struct {
		Login string `json:"login"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", err
	}
	return user.Login, nil
}
