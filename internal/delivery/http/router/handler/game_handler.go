package handler

import (
	"log/slog"
	"net/http"
	"time"

	"keyhub/internal/delivery/http/middleware"
	"keyhub/internal/delivery/http/response"
	"keyhub/internal/domain/entity"
	"keyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameHandler holds dependencies for catalog-related handlers.
type GameHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler, injected by Fx.
func NewGameHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		uc:     uc,
		logger: logger,
	}
}

// gameID parses the :id path parameter.
func gameID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

type createGameRequest struct {
	Title        string     `json:"title" validate:"required,min=1,max=255"`
	Price        float64    `json:"price" validate:"gte=0"`
	ReleaseDate  time.Time  `json:"releaseDate" validate:"required"`
	Type         string     `json:"type" validate:"required,oneof=BASE ADDON"`
	ParentGameID *uuid.UUID `json:"parentGameId"`
}

// CreateGame handles the game publication request.
func (h *GameHandler) CreateGame(c echo.Context) error {
	developerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	game, err := h.uc.CreateGame(c.Request().Context(), developerID, &usecase.CreateGameInput{
		Title:        req.Title,
		Price:        req.Price,
		ReleaseDate:  req.ReleaseDate,
		Type:         entity.GameType(req.Type),
		ParentGameID: req.ParentGameID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toGameResponse(game), "Game created successfully")
}

type updateGameRequest struct {
	Title              *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Price              *float64   `json:"price" validate:"omitempty,gte=0"`
	DiscountPercentage *float64   `json:"discountPercentage" validate:"omitempty,gte=0,lte=100"`
	ReleaseDate        *time.Time `json:"releaseDate"`
}

// UpdateGame handles the partial game update request.
func (h *GameHandler) UpdateGame(c echo.Context) error {
	developerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := gameID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game id")
	}

	var req updateGameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	game, err := h.uc.UpdateGame(c.Request().Context(), developerID, id, &usecase.UpdateGameInput{
		Title:              req.Title,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		ReleaseDate:        req.ReleaseDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponse(game), "Game updated successfully")
}

type addKeysRequest struct {
	Delta int `json:"delta"`
}

// AddKeys handles the key restock request.
func (h *GameHandler) AddKeys(c echo.Context) error {
	developerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := gameID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game id")
	}

	var req addKeysRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid key delta input")
	}

	game, err := h.uc.AddKeys(c.Request().Context(), developerID, id, req.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponse(game), "Keys added successfully")
}

// MarkOutOfStock handles the out-of-stock request.
func (h *GameHandler) MarkOutOfStock(c echo.Context) error {
	developerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := gameID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game id")
	}

	if err := h.uc.MarkOutOfStock(c.Request().Context(), developerID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteGame handles the cascading game deletion request.
func (h *GameHandler) DeleteGame(c echo.Context) error {
	developerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := gameID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game id")
	}

	if err := h.uc.DeleteGame(c.Request().Context(), developerID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListGames handles the public catalog listing request.
func (h *GameHandler) ListGames(c echo.Context) error {
	games, err := h.uc.ListGames(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponses(games), "")
}

// GetGame handles the single-game lookup request.
func (h *GameHandler) GetGame(c echo.Context) error {
	id, err := gameID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game id")
	}

	game, err := h.uc.GetGame(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameResponse(game), "")
}
