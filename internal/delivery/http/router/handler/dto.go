// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"keyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// GameResponse is the wire representation of a game.
type GameResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Price              float64    `json:"price"`
	DiscountPercentage float64    `json:"discountPercentage"`
	DiscountedPrice    float64    `json:"discountedPrice"`
	ReleaseDate        time.Time  `json:"releaseDate"`
	DeveloperID        uuid.UUID  `json:"developerId"`
	Type               string     `json:"type"`
	ParentGameID       *uuid.UUID `json:"parentGameId,omitempty"`
	Keys               int        `json:"keys"`
}

func toGameResponse(game *entity.Game) *GameResponse {
	if game == nil {
		return nil
	}

	return &GameResponse{
		ID:                 game.ID,
		Title:              game.Title,
		Price:              game.Price,
		DiscountPercentage: game.DiscountPercentage,
		DiscountedPrice:    game.DiscountedPrice(),
		ReleaseDate:        game.ReleaseDate,
		DeveloperID:        game.DeveloperID,
		Type:               game.Type.String(),
		ParentGameID:       game.ParentGameID,
		Keys:               game.Keys,
	}
}

func toGameResponses(games []*entity.Game) []*GameResponse {
	out := make([]*GameResponse, 0, len(games))
	for _, game := range games {
		out = append(out, toGameResponse(game))
	}

	return out
}

// CartResponse is the wire representation of a customer's cart.
type CartResponse struct {
	Games []*GameResponse `json:"games"`
	Total float64         `json:"total"`
}

// UserResponse is the wire representation of an account. The password hash
// never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Studio    string    `json:"studio,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	resp := &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}

	if user.CustomerProfile != nil {
		resp.FirstName = user.CustomerProfile.FirstName
		resp.LastName = user.CustomerProfile.LastName
	}
	if user.DeveloperProfile != nil {
		resp.Studio = user.DeveloperProfile.Studio
		resp.Website = user.DeveloperProfile.Website
	}

	return resp
}

// LoginResponse carries the issued token pair and the account summary.
type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}
