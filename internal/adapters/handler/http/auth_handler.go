package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

const (
	accessTokenMaxAge  = 15 * 60
	refreshTokenMaxAge = 7 * 24 * 60 * 60
)

type AuthHandler struct {
	authService    ports.AuthService
	redirectURL    string
	cookieDomain   string
	cookieSameSite http.SameSite
}

func NewAuthHandler(authService ports.AuthService, redirectURL string, cookieDomain string, cookieSameSite http.SameSite) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		redirectURL:    redirectURL,
		cookieDomain:   cookieDomain,
		cookieSameSite: cookieSameSite,
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// SignUp godoc
// @Summary      Registers a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      409
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.SignUp(r.Context(), ports.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// SignIn godoc
// @Summary      Signs a user in
// @Description  Sets the access and refresh token cookies and returns both tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accessToken, refreshToken, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setAccessTokenCookie(w, accessToken)
	h.setRefreshTokenCookie(w, refreshToken)
	writeJSON(w, http.StatusOK, tokensResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	credential := r.FormValue("credential")
	if credential == "" {
		writeErrorMessage(w, http.StatusBadRequest, "missing credential")
		return
	}

	accessToken, refreshToken, err := h.authService.LoginWithGoogle(r.Context(), credential)
	if err != nil {
		slog.Warn("google login failed", "error", err)
		writeErrorMessage(w, http.StatusUnauthorized, "authentication failed")
		return
	}

	h.setAccessTokenCookie(w, accessToken)
	h.setRefreshTokenCookie(w, refreshToken)

	http.Redirect(w, r, h.redirectURL, http.StatusSeeOther)
}

// Refresh godoc
// @Summary      Refreshes the access token
// @Description  Creates a new access token cookie based on the refresh token cookie.
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil || cookie.Value == "" {
		writeErrorMessage(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	accessToken, refreshToken, err := h.authService.RefreshAccessToken(r.Context(), cookie.Value)
	if err != nil {
		h.expireCookies(w)
		writeError(w, r, err)
		return
	}

	h.setAccessTokenCookie(w, accessToken)
	if refreshToken != "" && refreshToken != cookie.Value {
		h.setRefreshTokenCookie(w, refreshToken)
	}

	writeJSON(w, http.StatusOK, tokensResponse{AccessToken: accessToken})
}

// SignOut godoc
// @Summary      Signs the user out
// @Description  Revokes the refresh token and clears both cookies.
// @Tags         auth
// @Produce      json
// @Success      200
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		if err := h.authService.SignOut(r.Context(), cookie.Value); err != nil {
			slog.Error("failed to revoke refresh token", "error", err)
		}
	}

	h.expireCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) setAccessTokenCookie(w http.ResponseWriter, token string) {
	h.setCookie(w, accessTokenCookie, token, accessTokenMaxAge)
}

func (h *AuthHandler) setRefreshTokenCookie(w http.ResponseWriter, token string) {
	h.setCookie(w, refreshTokenCookie, token, refreshTokenMaxAge)
}

func (h *AuthHandler) expireCookies(w http.ResponseWriter) {
	h.setCookie(w, accessTokenCookie, "", -1)
	h.setCookie(w, refreshTokenCookie, "", -1)
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   true,
		SameSite: h.cookieSameSite,
		MaxAge:   maxAge,
	})
}
