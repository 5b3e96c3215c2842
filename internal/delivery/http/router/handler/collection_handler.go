package handler

import (
	"log/slog"
	"net/http"

	"keyhub/internal/delivery/http/middleware"
	"keyhub/internal/delivery/http/response"
	"keyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CollectionHandler holds dependencies for cart, wishlist and library handlers.
type CollectionHandler struct {
	uc     usecase.CollectionUsecase
	logger *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		uc:     uc,
		logger: logger,
	}
}

// callerAndGame resolves the authenticated customer and the :gameID parameter.
func callerAndGame(c echo.Context) (customerID, gameID uuid.UUID, err error) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized)
	}

	gameID, err = uuid.Parse(c.Param("gameID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid game id")
	}

	return customerID, gameID, nil
}

// AddToWishlist handles the wishlist add request.
func (h *CollectionHandler) AddToWishlist(c echo.Context) error {
	customerID, gameID, err := callerAndGame(c)
	if err != nil {
		return err
	}

	if err := h.uc.AddToWishlist(c.Request().Context(), customerID, gameID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Game added to wishlist")
}

// AddToCart handles the cart add request.
func (h *CollectionHandler) AddToCart(c echo.Context) error {
	customerID, gameID, err := callerAndGame(c)
	if err != nil {
		return err
	}

	if err := h.uc.AddToCart(c.Request().Context(), customerID, gameID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Game added to cart")
}

// MoveToCart handles the single-item wishlist-to-cart move.
func (h *CollectionHandler) MoveToCart(c echo.Context) error {
	customerID, gameID, err := callerAndGame(c)
	if err != nil {
		return err
	}

	if err := h.uc.MoveToCart(c.Request().Context(), customerID, gameID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Game moved to cart")
}

// MoveAllToCart handles the bulk wishlist-to-cart migration. Unmovable items
// are skipped, so the response only lists what actually moved.
func (h *CollectionHandler) MoveAllToCart(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	moved, err := h.uc.MoveAllToCart(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponses(moved), "Wishlist moved to cart")
}

// Checkout handles the atomic cart purchase.
func (h *CollectionHandler) Checkout(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	if err := h.uc.Checkout(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveFromCart handles the cart entry removal.
func (h *CollectionHandler) RemoveFromCart(c echo.Context) error {
	customerID, gameID, err := callerAndGame(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), customerID, gameID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveFromWishlist handles the wishlist entry removal.
func (h *CollectionHandler) RemoveFromWishlist(c echo.Context) error {
	customerID, gameID, err := callerAndGame(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromWishlist(c.Request().Context(), customerID, gameID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearCart handles the bulk cart clear.
func (h *CollectionHandler) ClearCart(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	if err := h.uc.ClearCart(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearWishlist handles the bulk wishlist clear.
func (h *CollectionHandler) ClearWishlist(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	if err := h.uc.ClearWishlist(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListCart handles the cart listing with its computed total.
func (h *CollectionHandler) ListCart(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	cart, err := h.uc.ListCart(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &CartResponse{
		Games: toGameResponses(cart.Games),
		Total: cart.Total,
	}, "")
}

// ListWishlist handles the wishlist listing.
func (h *CollectionHandler) ListWishlist(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	games, err := h.uc.ListWishlist(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponses(games), "")
}

// ListLibrary handles the library listing.
func (h *CollectionHandler) ListLibrary(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	games, err := h.uc.ListLibrary(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponses(games), "")
}
