package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/labreserve/switch-console/internal/core/ports"
)

// UserHandler serves the admin-only account listing.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns every backend account.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.Result[[]domain.User]
// @Failure      403  {object}  domain.Result[any]
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	return respond(c, h.users.GetAll(c.Request().Context()))
}

// Get returns one account.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.Result[domain.User]
// @Failure      403  {object}  domain.Result[any]
// @Failure      404  {object}  domain.Result[domain.User]
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return respond(c, h.users.GetByID(c.Request().Context(), id))
}
