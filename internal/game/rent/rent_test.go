package rent

import (
	"testing"

	"github.com/monodeal/deal-client-go/internal/game"
)

func TestSetSize(t *testing.T) {
	cases := map[game.Color]int{
		game.ColorBrown:    2,
		game.ColorDarkBlue: 2,
		game.ColorUtility:  2,
		game.ColorRed:      3,
		game.ColorRailroad: 4,
	}
	for color, want := range cases {
		if got := SetSize(color); got != want {
			t.Errorf("SetSize(%s) = %d, want %d", color, got, want)
		}
	}
}

func TestBase(t *testing.T) {
	if got := Base(game.ColorGreen, 1); got != 2 {
		t.Errorf("green x1 = %d, want 2", got)
	}
	if got := Base(game.ColorGreen, 3); got != 7 {
		t.Errorf("green x3 = %d, want 7", got)
	}
	// Clamped above the ladder: a set can temporarily exceed its size
	// with universal wildcards.
	if got := Base(game.ColorGreen, 5); got != 7 {
		t.Errorf("green x5 = %d, want 7 (clamped)", got)
	}
	if got := Base(game.ColorGreen, 0); got != 0 {
		t.Errorf("empty set must charge 0, got %d", got)
	}
}

func TestForSetSurcharges(t *testing.T) {
	s := game.PropertySet{
		Color: game.ColorDarkBlue,
		Cards: []game.Card{
			{ID: "d1", Kind: game.KindProperty, Color: game.ColorDarkBlue},
			{ID: "d2", Kind: game.KindProperty, Color: game.ColorDarkBlue},
		},
		IsComplete: true,
		HasHouse:   true,
	}
	if got := ForSet(s); got != 8+HouseSurcharge {
		t.Errorf("dark blue complete with house = %d, want %d", got, 8+HouseSurcharge)
	}
	s.HasHotel = true
	if got := ForSet(s); got != 8+HouseSurcharge+HotelSurcharge {
		t.Errorf("with hotel on top = %d, want %d", got, 8+HouseSurcharge+HotelSurcharge)
	}
}

func TestChargeDoubles(t *testing.T) {
	s := game.PropertySet{
		Color: game.ColorOrange,
		Cards: []game.Card{
			{ID: "o1", Kind: game.KindProperty, Color: game.ColorOrange},
			{ID: "o2", Kind: game.KindProperty, Color: game.ColorOrange},
		},
	}
	if got := Charge(s, false); got != 3 {
		t.Errorf("orange x2 = %d, want 3", got)
	}
	if got := Charge(s, true); got != 6 {
		t.Errorf("doubled orange x2 = %d, want 6", got)
	}
}
