package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/openbid/auctiond/internal/errors"
	"github.com/openbid/auctiond/internal/service"
)

// AuctionHandler handles auction and bid endpoints.
type AuctionHandler struct {
	auctionService service.AuctionService
}

// NewAuctionHandler creates a new auction handler.
func NewAuctionHandler(auctionService service.AuctionService) *AuctionHandler {
	return &AuctionHandler{auctionService: auctionService}
}

// CreateAuctionRequest represents an auction creation request. Price
// fields accept JSON numbers or numeric strings.
type CreateAuctionRequest struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	StartingPrice    decimal.Decimal `json:"startingPrice"`
	MinimumIncrement decimal.Decimal `json:"minimumIncrement"`
	EndTime          string          `json:"endTime"`
	ImageURL         string          `json:"imageUrl"`
}

// BidRequest represents a bid placement request.
type BidRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// List godoc
// @Summary List all auctions
// @Tags auctions
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /auctions [get]
func (h *AuctionHandler) List(c echo.Context) error {
	auctions, err := h.auctionService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auctions)
}

// Get godoc
// @Summary Get one auction
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /auctions/{id} [get]
func (h *AuctionHandler) Get(c echo.Context) error {
	auction, err := h.auctionService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auction)
}

// Create godoc
// @Summary Create a new auction
// @Tags auctions
// @Accept json
// @Produce json
// @Param request body CreateAuctionRequest true "Auction data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /auctions [post]
func (h *AuctionHandler) Create(c echo.Context) error {
	sellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateAuctionRequest
	if err := c.Bind(&req); err != nil {
		return errors.Unprocessable("Invalid auction data format")
	}

	auction, err := h.auctionService.Create(c.Request().Context(), sellerID, service.CreateAuctionParams{
		Title:            req.Title,
		Description:      req.Description,
		StartingPrice:    req.StartingPrice,
		MinimumIncrement: req.MinimumIncrement,
		EndTime:          req.EndTime,
		ImageURL:         req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, auction)
}

// PlaceBid godoc
// @Summary Place a bid on an auction
// @Tags auctions
// @Accept json
// @Produce json
// @Param id path string true "Auction ID"
// @Param request body BidRequest true "Bid amount"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /auctions/{id}/bid [post]
func (h *AuctionHandler) PlaceBid(c echo.Context) error {
	bidderID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req BidRequest
	if err := c.Bind(&req); err != nil {
		return errors.Validation("Bid amount must be a valid number")
	}

	if err := h.auctionService.PlaceBid(c.Request().Context(), bidderID, c.Param("id"), req.Amount); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Bid placed successfully",
	})
}
