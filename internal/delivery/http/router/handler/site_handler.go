package handler

import (
	"net/http"

	"markethub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Index serves the landing payload consumed by the frontend shell.
func Index(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"name":        "MarketHub",
		"description": "A marketplace platform for customers and merchants.",
	}, "")
}

// About serves the static about payload.
func About(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"about": "MarketHub connects merchants and customers with catalog, inventory and analytics tooling.",
	}, "")
}

// AIChat serves the chat page bootstrap payload.
func AIChat(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"endpoint": "/api/chat",
		"hint":     "POST a JSON body with a 'message' field.",
	}, "")
}
