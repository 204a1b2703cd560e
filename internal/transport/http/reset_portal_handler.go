package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Fit_city_Reset_Portal/internal/domain"
	"github.com/njprem/Fit_city_Reset_Portal/internal/service"
	"github.com/njprem/Fit_city_Reset_Portal/internal/util"
)

// RegisterPortal wires the reset page and its submission endpoint.
func RegisterPortal(e *echo.Echo, svc *service.ResetPortalService, loginURL string) {
	e.GET("/reset-password", func(c echo.Context) error {
		token := strings.TrimSpace(c.QueryParam("token"))
		if token == "" {
			return renderInvalidTokenPage(c, loginURL)
		}
		return renderResetPage(c, token)
	})

	e.POST("/api/v1/password-reset", func(c echo.Context) error {
		var req ResetSubmitRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("bad body"))
		}

		form := service.ResetForm{Password: req.Password, Confirm: req.PasswordConfirmation}
		result, err := svc.SubmitReset(c.Request().Context(), req.Token, form)
		if err != nil {
			var verr *domain.ValidationError
			switch {
			case errors.Is(err, domain.ErrTokenMissing):
				return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
			case errors.As(err, &verr):
				return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: verr.Message, Field: verr.Field})
			case errors.Is(err, domain.ErrSubmissionInFlight):
				return c.JSON(http.StatusConflict, util.Error(err.Error()))
			case c.Request().Context().Err() != nil:
				// the page is gone; nothing left to answer
				return err
			default:
				return c.JSON(http.StatusBadGateway, util.Error(err.Error()))
			}
		}
		return c.JSON(http.StatusOK, ResetOutcomeResponse{Success: result.Success, Message: result.Message})
	})
}
