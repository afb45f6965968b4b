package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openbid/auctiond/internal/service"
)

// UserHandler handles per-user auction projections.
type UserHandler struct {
	auctionService service.AuctionService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(auctionService service.AuctionService) *UserHandler {
	return &UserHandler{auctionService: auctionService}
}

// Auctions godoc
// @Summary List auctions created by a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/auctions [get]
func (h *UserHandler) Auctions(c echo.Context) error {
	auctions, err := h.auctionService.ListBySeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auctions)
}

// Bids godoc
// @Summary List auctions a user has bid on
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/bids [get]
func (h *UserHandler) Bids(c echo.Context) error {
	auctions, err := h.auctionService.ListByBidder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auctions)
}
