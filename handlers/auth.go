package handlers

import (
	"net/http"

	"outlet-service/config"
	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/middlewares"
	"outlet-service/services"
)

const refreshCookieName = "refresh_token"

type AuthHandler struct {
	auth *services.AuthService
}

func SetupAuthRoutes(mux *http.ServeMux, auth *services.AuthService, am *middlewares.AuthMiddleware) {
	handler := AuthHandler{
		auth: auth,
	}
	mux.HandleFunc("POST /auth/register", handler.register)
	mux.HandleFunc("POST /auth/verify", handler.verify)
	mux.HandleFunc("GET /auth/verify", handler.verifyFromLink)
	mux.HandleFunc("POST /auth/resend/verify", am.RequireAuthUnconfirmed(handler.resendVerification))
	mux.HandleFunc("POST /auth/login", handler.login)
	mux.HandleFunc("POST /auth/refresh", handler.refresh)
	mux.HandleFunc("POST /auth/logout", am.RequireAuth(handler.logout))
	mux.HandleFunc("GET /auth/profile", am.RequireAuth(handler.profile))
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var payload dto.RegisterDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	config.Config.Logger.Infow("new registration request", "email", payload.Email)

	if err := h.auth.Register(r.Context(), payload); err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "registration successful, please check your email to verify your account", nil)
}

func (h *AuthHandler) verify(w http.ResponseWriter, r *http.Request) {
	var payload dto.ConfirmEmailDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.confirm(w, r, payload.Token)
}

// verifyFromLink serves the link embedded in the verification email, which
// carries the token as a query parameter.
func (h *AuthHandler) verifyFromLink(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("token")
	if raw == "" {
		helper.WriteJsonError(w, http.StatusBadRequest, "token is required")
		return
	}
	h.confirm(w, r, raw)
}

func (h *AuthHandler) confirm(w http.ResponseWriter, r *http.Request, rawToken string) {
	if err := h.auth.VerifyEmail(r.Context(), rawToken); err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "email verified successfully", nil)
}

func (h *AuthHandler) resendVerification(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	if ident == nil {
		helper.WriteJsonError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.auth.Profile(r.Context(), ident.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.auth.SendVerificationEmail(r.Context(), user); err != nil {
		config.Config.Logger.Errorw("failed to resend verification email", "email", user.Email, "error", err)
		helper.WriteJsonError(w, http.StatusInternalServerError, "failed to send verification email")
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "verification email sent", nil)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var payload dto.LoginDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.auth.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	setRefreshCookie(w, result.RefreshToken)
	helper.WriteSuccess(w, http.StatusOK, "login successful", map[string]any{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		helper.WriteJsonError(w, http.StatusUnauthorized, "refresh token is missing")
		return
	}

	accessToken, err := h.auth.RefreshTokens(r.Context(), cookie.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "token refreshed", map[string]any{
		"access_token": accessToken,
	})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		h.auth.Logout(r.Context(), cookie.Value)
	}
	clearRefreshCookie(w)
	helper.WriteSuccess(w, http.StatusOK, "logged out successfully", nil)
}

func (h *AuthHandler) profile(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	if ident == nil {
		helper.WriteJsonError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	user, err := h.auth.Profile(r.Context(), ident.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "profile retrieved", user)
}

func setRefreshCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(config.Config.TenantRefreshToken.ExpiresIn.Seconds()),
		HttpOnly: true,
		Secure:   config.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
