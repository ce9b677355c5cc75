// Package rent holds the advisory rent and set-size tables. These values
// only populate default amounts and descriptive text on the local side;
// the amount the server pushes with a pending action is the one enforced,
// and a mismatch always resolves in the server's favor.
package rent

import "github.com/monodeal/deal-client-go/internal/game"

// Surcharges added to a complete set's rent by its buildings.
const (
	HouseSurcharge = 3
	HotelSurcharge = 4
)

// baseRent maps each color to its rent ladder, indexed by the number of
// cards in the set (1-indexed: baseRent[color][n-1]). The ladder length is
// also the color's required set size.
var baseRent = map[game.Color][]int{
	game.ColorBrown:     {1, 2},
	game.ColorLightBlue: {1, 2, 3},
	game.ColorPink:      {1, 2, 4},
	game.ColorOrange:    {1, 3, 5},
	game.ColorRed:       {2, 3, 6},
	game.ColorYellow:    {2, 4, 6},
	game.ColorGreen:     {2, 4, 7},
	game.ColorDarkBlue:  {3, 8},
	game.ColorRailroad:  {1, 2, 3, 4},
	game.ColorUtility:   {1, 2},
}

// SetSize returns the card count at which a color's set is complete.
func SetSize(color game.Color) int {
	return len(baseRent[color])
}

// Base returns the rent for a color at the given card count, clamped to
// the top of the ladder. Zero cards charge nothing.
func Base(color game.Color, cards int) int {
	ladder, ok := baseRent[color]
	if !ok || cards <= 0 {
		return 0
	}
	if cards > len(ladder) {
		cards = len(ladder)
	}
	return ladder[cards-1]
}

// ForSet computes the advisory rent for a tabled set, including building
// surcharges.
func ForSet(s game.PropertySet) int {
	total := Base(s.Color, len(s.Cards))
	if total == 0 {
		return 0
	}
	if s.HasHouse {
		total += HouseSurcharge
	}
	if s.HasHotel {
		total += HotelSurcharge
	}
	return total
}

// Charge is the advisory amount a rent play would demand, with the
// optional double-rent modifier applied.
func Charge(s game.PropertySet, doubled bool) int {
	total := ForSet(s)
	if doubled {
		total *= 2
	}
	return total
}
