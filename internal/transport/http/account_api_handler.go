package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Fit_city_Reset_Portal/internal/service"
	"github.com/njprem/Fit_city_Reset_Portal/internal/util"
)

// RegisterAccountAPI wires the reset-token issuing and redeeming endpoints.
func RegisterAccountAPI(e *echo.Echo, svc *service.AccountService) {
	e.POST("/v1/auth/password-reset", func(c echo.Context) error {
		var req PasswordResetRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("bad body"))
		}
		email := strings.TrimSpace(req.Email)
		if email == "" {
			return c.JSON(http.StatusBadRequest, util.Error("email is required"))
		}
		if err := svc.RequestReset(c.Request().Context(), email); err != nil {
			return c.JSON(http.StatusInternalServerError, util.Error("unable to process reset request"))
		}
		// Same answer whether or not the address exists.
		return c.JSON(http.StatusOK, SuccessResponse{Success: true})
	})

	e.POST("/v1/auth/password-reset/confirm", func(c echo.Context) error {
		var req PasswordResetConfirmRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("bad body"))
		}
		if strings.TrimSpace(req.Token) == "" {
			return c.JSON(http.StatusOK, ResetOutcomeResponse{Success: false, Message: "the reset link is invalid"})
		}
		result, err := svc.ConfirmReset(c.Request().Context(), req.Token, req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, util.Error("unable to process reset"))
		}
		return c.JSON(http.StatusOK, ResetOutcomeResponse{Success: result.Success, Message: result.Message})
	})
}
