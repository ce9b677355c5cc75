package wizard

import (
	"github.com/monodeal/deal-client-go/internal/game"
)

// Fixture builders shared by the wizard tests.

func prop(id string, color game.Color) game.Card {
	return game.Card{ID: id, Kind: game.KindProperty, Name: string(color), Color: color, Value: 2}
}

func wildProp(id string, colors ...game.Color) game.Card {
	return game.Card{
		ID:             id,
		Kind:           game.KindProperty,
		Name:           "wildcard",
		Value:          2,
		IsWildcard:     true,
		WildcardColors: colors,
	}
}

func rentCard(id string, colors ...game.Color) game.Card {
	return game.Card{ID: id, Kind: game.KindRent, Name: "rent", Value: 1, RentColors: colors}
}

func wildRentCard(id string) game.Card {
	return game.Card{ID: id, Kind: game.KindRent, Name: "wild rent", Value: 3, IsWildRent: true}
}

func actionCard(id string, action game.ActionType) game.Card {
	return game.Card{ID: id, Kind: game.KindAction, Name: string(action), Value: 3, Action: action}
}

func set(color game.Color, complete bool, cards ...game.Card) game.PropertySet {
	return game.PropertySet{Color: color, Cards: cards, IsComplete: complete}
}

func stateWith(players ...game.Player) *game.GameState {
	return &game.GameState{
		Players:            players,
		CurrentPlayerIndex: 0,
		Phase:              game.PhasePlaying,
		TurnPhase:          game.TurnAction,
		ActionsRemaining:   3,
	}
}
