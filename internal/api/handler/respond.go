package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/labreserve/switch-console/internal/core/domain"
)

// respond writes an envelope, using its status as the HTTP status when it
// carries one.
func respond[T any](c echo.Context, res domain.Result[T]) error {
	code := res.Status
	if code == 0 {
		code = http.StatusOK
		if !res.Success {
			code = http.StatusInternalServerError
		}
	}
	return c.JSON(code, res)
}

// bindAndValidate follows the usual order: 400 for a malformed body, 422
// when the body parses but breaks a rule.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}
