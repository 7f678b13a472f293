package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	portssvc "github.com/kudzaim/shopmate_backend/internal/core/ports/services"
	"github.com/kudzaim/shopmate_backend/internal/dto"
	"github.com/kudzaim/shopmate_backend/internal/middleware"
	"google.golang.org/api/idtoken"
)

// oauthStateCookie names the CSRF state cookie for the web OAuth flow.
const oauthStateCookie = "oauthstate"

// googleOAuthHandler handles Google sign-in for both the mobile flow (native
// sign-in presenting an ID token) and the web console flow (redirect + callback).
type googleOAuthHandler struct {
	googleAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService       portssvc.UserSvcFacade
	tokenService      portssvc.TokenSvcFacade
}

// newGoogleOAuthHandler creates a new googleOAuthHandler.
func newGoogleOAuthHandler(
	googleAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleAuthService: googleAuthService,
		userService:       userService,
		tokenService:      tokenService,
	}
}

// registerGoogleAuthRoutes registers the Google sign-in routes on the auth group.
func registerGoogleAuthRoutes(auth *gin.RouterGroup, services *portssvc.ServiceContainer, limitMiddleware gin.HandlerFunc) {
	h := newGoogleOAuthHandler(services.GoogleAuth, services.User, services.Token)

	auth.POST("/google", limitMiddleware, h.signInWithGoogle)
	auth.GET("/google/login", h.googleLogin)
	auth.GET("/google/callback", h.googleCallback)
}

// signInWithGoogle godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token obtained from native Google Sign-In, creating an account on first use, and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError "Invalid request payload"
// @Failure 401 {object} apperrors.AppError "Invalid Google ID token"
// @Failure 409 {object} apperrors.AppError "Email already registered with a password"
// @Failure 500 {object} apperrors.AppError "Failed to process sign in"
// @Router /auth/google [post]
func (h *googleOAuthHandler) signInWithGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Google sign in", slog.String("error", err.Error()))
		appErr := apperrors.NewBadRequestError("Invalid request payload: " + err.Error())
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.googleAuthService.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token")
		c.JSON(appErr.Code, appErr)
		return
	}

	h.completeGoogleSignIn(c, payload)
}

// googleLogin godoc
// @Summary Start the Google OAuth web flow
// @Description Redirects the browser to Google's consent screen with a CSRF state cookie.
// @Tags auth
// @Success 302
// @Failure 500 {object} apperrors.AppError "Failed to start sign in"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) googleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to start Google sign in")
		c.JSON(appErr.Code, appErr)
		return
	}

	// The state round-trips through a short lived cookie and the callback query.
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.googleAuthService.GetGoogleLoginURL(ctx, state))
}

// googleCallback godoc
// @Summary Google OAuth web flow callback
// @Description Exchanges the authorization code for tokens, signing the user in.
// @Tags auth
// @Produce json
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError "Invalid or expired authorization code"
// @Failure 401 {object} apperrors.AppError "State mismatch or invalid token"
// @Failure 500 {object} apperrors.AppError "Failed to process sign in"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) googleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || cookieState == "" || c.Query("state") != cookieState {
		logger.Warn("OAuth state mismatch on Google callback")
		appErr := apperrors.NewUnauthorizedError("OAuth state mismatch")
		c.JSON(appErr.Code, appErr)
		return
	}
	// Single use: clear the state cookie regardless of outcome.
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		appErr := apperrors.NewBadRequestError("Authorization code is required")
		c.JSON(appErr.Code, appErr)
		return
	}

	oauth2Token, err := h.googleAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google")
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code")
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google")
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.googleAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token")
		c.JSON(appErr.Code, appErr)
		return
	}

	h.completeGoogleSignIn(c, payload)
}

// completeGoogleSignIn resolves the validated token payload to a user and
// responds with a token pair. Shared by the mobile and web flows.
func (h *googleOAuthHandler) completeGoogleSignIn(c *gin.Context, payload *idtoken.Payload) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)

	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token payload")
		appErr := apperrors.NewInternalServerError("Essential user information missing from Google token")
		c.JSON(appErr.Code, appErr)
		return
	}
	if !emailVerified {
		logger.Warn("Google account email not verified", slog.String("email", email))
		appErr := apperrors.NewUnauthorizedError("Google account email is not verified")
		c.JSON(appErr.Code, appErr)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{
		Sub:           payload.Subject,
		Email:         email,
		EmailVerified: emailVerified,
		Name:          name,
		Picture:       picture,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Google sign in rejected: email registered as local account", slog.String("email", email))
			appErr := apperrors.NewConflictError("Email is already registered with a password, sign in with it instead")
			c.JSON(appErr.Code, appErr)
			return
		}
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to process sign in")
		c.JSON(appErr.Code, appErr)
		return
	}

	resp, err := issueTokenPair(ctx, h.tokenService, h.userService, user)
	if err != nil {
		logger.Error("Failed to issue tokens after Google sign in", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to generate tokens")
		c.JSON(appErr.Code, appErr)
		return
	}

	logger.Info("User signed in with Google", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}
