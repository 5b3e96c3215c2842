package impl

import (
	"io"
	"log/slog"

	"keyhub/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBaseGame(title string, keys int) *entity.Game {
	return &entity.Game{
		ID:          uuid.New(),
		Title:       title,
		Price:       59.99,
		DeveloperID: uuid.New(),
		Type:        entity.GameTypeBase,
		Keys:        keys,
	}
}
