package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labreserve/switch-console/internal/core/ports"
	"github.com/labreserve/switch-console/internal/pkg/metrics"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginPage describes the login view. next is where the guard was heading.
//
// @Summary      Login page
// @Tags         auth
// @Produce      json
// @Param        next  query     string  false  "Path to return to after login"
// @Success      200   {object}  pageResponse
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "login", Next: c.QueryParam("next")})
}

// SignupPage describes the signup view.
//
// @Summary      Signup page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  pageResponse
// @Router       /signup [get]
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "signup"})
}

// Login authenticates against the backend and stores the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Login credentials"
// @Success      202   {object}  domain.Result[domain.Account]
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  domain.Result[domain.Account]
// @Failure      422   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.Outcome(res.Success)).Inc()
	return respond(c, res)
}

// Signup registers a new account and logs it in.
//
// @Summary      Signup
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "New account credentials"
// @Success      201   {object}  domain.Result[domain.Account]
// @Failure      400   {object}  domain.Result[domain.Account]
// @Failure      422   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.authService.Signup(c.Request().Context(), req.Username, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.Outcome(res.Success)).Inc()
	return respond(c, res)
}

// Logout ends the session. The local session is gone afterwards even when
// the envelope reports a failure.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Result[string]
// @Failure      400  {object}  domain.Result[string]
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	res := h.authService.Logout(c.Request().Context())
	metrics.AuthAttemptsTotal.WithLabelValues("logout", metrics.Outcome(res.Success)).Inc()
	metrics.SessionClearsTotal.Inc()
	return respond(c, res)
}

// Home reports the session state.
//
// @Summary      Home
// @Tags         pages
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       / [get]
func (h *AuthHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, homeResponse{
		Authenticated: h.authService.IsAuthenticated(ctx),
		IsAdmin:       h.authService.IsAdmin(ctx),
	})
}
