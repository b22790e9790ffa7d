package api

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"cart-service/internal/auth"
	"cart-service/internal/entity"
	"cart-service/internal/service"
)

type CartLookup interface {
	LookupCart(ctx context.Context, serviceName string) ([]entity.CatalogEntry, error)
}

type BillCommitter interface {
	CommitBill(ctx context.Context, identity entity.UserIdentity, bill entity.BillSubmission) ([]entity.OrderDetail, error)
}

type CartHandler struct {
	cartService CartLookup
}

// NewCartHandler creates a new instance of CartHandler
func NewCartHandler(cartService CartLookup) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart retrieves the catalog entries of a service --> GET /:service_name
func (h *CartHandler) GetCart(c echo.Context) error {
	entries, err := h.cartService.LookupCart(c.Request().Context(), c.Param("service_name"))
	if errors.Is(err, service.ErrCartNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"Not Found": "Cart not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Server could not read cart because of a database connection error",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"OK":   "Successfully retrieved the cart.",
		"data": entries,
	})
}

// CalculateNetPrice sums the submitted line items --> POST /:service_name
func (h *CartHandler) CalculateNetPrice(c echo.Context) error {
	var req netPriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload", "details": err.Error()})
	}

	netPrice := service.ComputeNetPrice(req.lineItems())
	if math.IsNaN(netPrice) || math.IsInf(netPrice, 0) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload", "details": "net price out of range"})
	}

	return c.JSON(http.StatusOK, map[string]float64{"netPrice": netPrice})
}

type BillHandler struct {
	billService BillCommitter
}

// NewBillHandler creates a new instance of BillHandler
func NewBillHandler(billService BillCommitter) *BillHandler {
	return &BillHandler{billService: billService}
}

// StoreBill commits a bill for the authenticated user --> POST /:service_name/bill
func (h *BillHandler) StoreBill(c echo.Context) error {
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req billRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload", "details": err.Error()})
	}

	details, err := h.billService.CommitBill(c.Request().Context(), identity, req.toEntity())
	if err != nil {
		return billError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":         "Bill info received and stored successfully",
		"orderDetailData": details,
	})
}

// billError maps a commit failure to the most specific response.
func billError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNoIdentity):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	case errors.Is(err, service.ErrInvalidBill), errors.Is(err, service.ErrEmptyBill):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var commitErr *service.CommitError
	if errors.As(err, &commitErr) {
		switch {
		case errors.Is(commitErr.Step, service.ErrOrderInsertFailed):
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Error inserting order",
				"error":   commitErr.Cause(),
			})
		case errors.Is(commitErr.Step, service.ErrOrderDetailInsertFailed):
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Error inserting order details",
				"error":   commitErr.Cause(),
			})
		}
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error, could not store bill info"})
}
