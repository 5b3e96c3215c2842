package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameType_IsValid(t *testing.T) {
	assert.True(t, GameTypeBase.IsValid())
	assert.True(t, GameTypeAddon.IsValid())
	assert.False(t, GameType("DEMO").IsValid())
	assert.False(t, GameType("").IsValid())
}

func TestGame_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{name: "no discount", price: 59.99, discount: 0, want: 59.99},
		{name: "half off", price: 60, discount: 50, want: 30},
		{name: "full discount", price: 20, discount: 100, want: 0},
		{name: "free game", price: 0, discount: 25, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &Game{Price: tt.price, DiscountPercentage: tt.discount}
			assert.InDelta(t, tt.want, game.DiscountedPrice(), 1e-9)
		})
	}
}

func TestGame_InStock(t *testing.T) {
	assert.True(t, (&Game{Keys: 1}).InStock())
	assert.False(t, (&Game{Keys: 0}).InStock())
}
