package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
	"github.com/savesphere/savings_tracker_app/internal/dto"
	"github.com/savesphere/savings_tracker_app/internal/middleware"
	"github.com/savesphere/savings_tracker_app/internal/platform/config"
)

const oauthStateCookieName = "oauthstate"
const oauthStateCookieMaxAge = 600 // seconds

// GoogleOAuthHandler handles Google OAuth related requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	isProduction       bool
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	isProduction bool,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		isProduction:       isProduction,
	}
}

// registerGoogleOAuthRoutes sets up the Google OAuth routes under the auth group.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token, cfg.IsProduction)

	google := auth.Group("/google")
	{
		google.GET("/login", h.LoginGoogle)
		google.GET("/callback", h.CallbackGoogle)
		google.POST("", h.LoginWithIDToken)
	}
}

// LoginGoogle godoc
// @Summary Start Google OAuth login
// @Description Redirects the user to Google's consent page. A CSRF state token
// @Description is set as a short-lived cookie.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to start Google login")
		return
	}

	c.SetCookie(oauthStateCookieName, state, oauthStateCookieMaxAge, "/api/v1/auth/google", "", h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// CallbackGoogle godoc
// @Summary Google OAuth callback
// @Description Exchanges the authorization code from Google for tokens, fetches
// @Description the user's profile, provisions the account if needed and returns
// @Description an application token pair.
// @Tags oauth
// @Produce json
// @Param state query string true "CSRF state token"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	// Single use
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", h.isProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(c.Request.Context(), oauth2Token)
	if err != nil {
		respondWithError(c, err, "Failed to fetch Google user info")
		return
	}

	h.loginFromGoogleInfo(c, *info)
}

// LoginWithIDToken godoc
// @Summary Login with a Google ID token
// @Description Validates an ID token obtained by the client (e.g. via Google
// @Description One Tap) and returns an application token pair.
// @Tags oauth
// @Accept json
// @Produce json
// @Param idToken body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *GoogleOAuthHandler) LoginWithIDToken(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	h.loginFromGoogleInfo(c, googleUserInfoFromClaims(payload.Subject, payload.Claims))
}

func (h *GoogleOAuthHandler) loginFromGoogleInfo(c *gin.Context, info domain.GoogleUserInfo) {
	user, err := h.userService.AuthenticateViaGoogle(c.Request.Context(), info)
	if err != nil {
		respondWithError(c, err, "Failed to authenticate Google user")
		return
	}

	resp, err := buildLoginResponse(c, h.tokenService, user)
	if err != nil {
		return
	}

	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Google login succeeded", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// googleUserInfoFromClaims builds a GoogleUserInfo from a validated ID token's
// subject and claims.
func googleUserInfoFromClaims(subject string, claims map[string]any) domain.GoogleUserInfo {
	info := domain.GoogleUserInfo{Sub: subject}
	if v, ok := claims["email"].(string); ok {
		info.Email = v
	}
	if v, ok := claims["email_verified"].(bool); ok {
		info.EmailVerified = v
	}
	if v, ok := claims["name"].(string); ok {
		info.Name = v
	}
	if v, ok := claims["picture"].(string); ok {
		info.Picture = v
	}
	return info
}
