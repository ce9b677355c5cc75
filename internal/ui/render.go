// Package ui renders snapshots and decision prompts to a terminal. Thin
// presentation plumbing; all legality decisions live in the core
// packages.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/monodeal/deal-client-go/internal/client"
	"github.com/monodeal/deal-client-go/internal/game"
	"github.com/monodeal/deal-client-go/internal/game/rent"
	"github.com/monodeal/deal-client-go/internal/game/respond"
	"github.com/monodeal/deal-client-go/internal/game/wizard"
)

var paint = map[game.Color]func(string, ...interface{}) string{
	game.ColorBrown:     color.New(color.FgYellow).SprintfFunc(),
	game.ColorLightBlue: color.New(color.FgHiCyan).SprintfFunc(),
	game.ColorPink:      color.New(color.FgHiMagenta).SprintfFunc(),
	game.ColorOrange:    color.New(color.FgHiYellow).SprintfFunc(),
	game.ColorRed:       color.New(color.FgHiRed).SprintfFunc(),
	game.ColorYellow:    color.New(color.FgYellow).SprintfFunc(),
	game.ColorGreen:     color.New(color.FgHiGreen).SprintfFunc(),
	game.ColorDarkBlue:  color.New(color.FgBlue).SprintfFunc(),
	game.ColorRailroad:  color.New(color.FgWhite).SprintfFunc(),
	game.ColorUtility:   color.New(color.FgGreen).SprintfFunc(),
}

var (
	headline = color.New(color.FgHiWhite, color.Bold).SprintfFunc()
	warnText = color.New(color.FgHiRed, color.Bold).SprintfFunc()
	okText   = color.New(color.FgHiGreen).SprintfFunc()
	dimText  = color.New(color.Faint).SprintfFunc()
)

func paintColor(c game.Color, format string, args ...interface{}) string {
	if fn, ok := paint[c]; ok {
		return fn(format, args...)
	}
	return fmt.Sprintf(format, args...)
}

// Renderer writes game views to a terminal.
type Renderer struct {
	out io.Writer
}

// New creates a renderer on the given writer.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// Render draws everything the player needs for the current snapshot.
func (r *Renderer) Render(c *client.Controller, connected bool) {
	if !connected {
		r.printf("%s\n", warnText("disconnected - waiting for reconnect"))
	}
	if msg := c.Err(); msg != "" {
		r.printf("%s\n", warnText("! %s", msg))
	}
	if over := c.GameOverBanner(); over != nil {
		r.printf("%s\n", headline("=== %s wins the game ===", over.WinnerName))
		return
	}

	s := c.State()
	if s == nil {
		r.printf("%s\n", dimText("waiting for game state..."))
		return
	}
	if s.Phase == game.PhaseWaiting {
		r.printf("%s\n", headline("Room %s - waiting for players (%d joined)",
			c.RoomCode(), len(s.Players)))
		return
	}

	r.renderTable(c, s)
	r.renderHand(c)
	r.renderPrompt(c, s)
}

func (r *Renderer) renderTable(c *client.Controller, s *game.GameState) {
	current, _ := s.CurrentPlayer()
	r.printf("%s\n", headline("%s's turn | %s | %d actions left | deck %d",
		current.Name, s.TurnPhase, s.ActionsRemaining, s.DeckCount))

	for _, p := range s.Players {
		marker := "  "
		if p.ID == c.PlayerID() {
			marker = "* "
		}
		conn := ""
		if !p.IsConnected {
			conn = dimText(" (offline)")
		}
		r.printf("%s%s%s  bank $%dM  hand %d\n", marker, p.Name, conn, p.BankTotal(), len(p.Hand))
		for _, set := range p.Properties {
			r.printf("    %s\n", describeSet(set))
		}
	}
}

func describeSet(s game.PropertySet) string {
	var b strings.Builder
	b.WriteString(paintColor(s.Color, "%s %d/%d", s.Color, len(s.Cards), rent.SetSize(s.Color)))
	if s.IsComplete {
		b.WriteString(okText(" ✓"))
	}
	if s.HasHouse {
		b.WriteString(" +house")
	}
	if s.HasHotel {
		b.WriteString(" +hotel")
	}
	if amount := rent.ForSet(s); amount > 0 {
		b.WriteString(dimText(" (rent ~$%dM)", amount))
	}
	return b.String()
}

func (r *Renderer) renderHand(c *client.Controller) {
	me, ok := c.Me()
	if !ok {
		return
	}
	r.printf("%s\n", headline("Hand (%d):", len(me.Hand)))
	for i, card := range me.Hand {
		r.printf("  [%d] %s\n", i+1, describeCard(card))
	}
}

func describeCard(c game.Card) string {
	switch c.Kind {
	case game.KindProperty:
		if c.IsWildcard {
			names := make([]string, len(c.WildcardColors))
			for i, col := range c.WildcardColors {
				names[i] = paintColor(col, "%s", col)
			}
			return fmt.Sprintf("%s [wild: %s] $%dM", c.Name, strings.Join(names, "/"), c.Value)
		}
		return fmt.Sprintf("%s %s $%dM", c.Name, paintColor(c.Color, "(%s)", c.Color), c.Value)
	case game.KindRent:
		if c.IsWildRent {
			return fmt.Sprintf("%s [wild rent] $%dM", c.Name, c.Value)
		}
		names := make([]string, len(c.RentColors))
		for i, col := range c.RentColors {
			names[i] = paintColor(col, "%s", col)
		}
		return fmt.Sprintf("%s [rent: %s] $%dM", c.Name, strings.Join(names, "/"), c.Value)
	case game.KindAction:
		return fmt.Sprintf("%s [%s] $%dM", c.Name, c.Action, c.Value)
	default:
		return fmt.Sprintf("%s $%dM", c.Name, c.Value)
	}
}

// renderPrompt draws the context-sensitive decision panel: wizard steps,
// the pending-action response view, or discard progress.
func (r *Renderer) renderPrompt(c *client.Controller, s *game.GameState) {
	if w := c.Wizard(); w != nil {
		r.renderWizard(w)
		return
	}
	if s.PendingAction != nil {
		r.renderPending(c, s)
		return
	}
	if required := c.RequiredDiscards(); required > 0 {
		r.printf("%s\n", warnText("Discard %d card(s) - selected %d",
			required, len(c.DiscardSelection())))
	}
}

func (r *Renderer) renderWizard(w *wizard.Wizard) {
	switch w.Step() {
	case wizard.StepChoosePlayer:
		r.printf("%s\n", headline("Choose a player:"))
		for i, p := range w.PlayerOptions() {
			r.printf("  [%d] %s\n", i+1, p.Name)
		}
	case wizard.StepChoosePropertyColor, wizard.StepChoosePropertySet, wizard.StepChooseCompleteSet:
		r.printf("%s\n", headline("Choose a set:"))
		for i, set := range w.SetOptions() {
			r.printf("  [%d] %s\n", i+1, describeSet(set))
		}
	case wizard.StepChooseColor, wizard.StepChooseDestinationColor:
		r.printf("%s\n", headline("Choose a color:"))
		for i, col := range w.ColorOptions() {
			r.printf("  [%d] %s\n", i+1, paintColor(col, "%s", col))
		}
	case wizard.StepChooseWildcardCard:
		r.printf("%s\n", headline("Choose a wildcard to move:"))
		for i, rw := range w.WildcardOptions() {
			r.printf("  [%d] %s (in %s)\n", i+1, describeCard(rw.Card),
				paintColor(rw.From, "%s", rw.From))
		}
	}
}

func (r *Renderer) renderPending(c *client.Controller, s *game.GameState) {
	a := s.PendingAction
	from, _ := s.PlayerByID(a.FromPlayerID)
	switch c.Role() {
	case respond.RoleOriginator:
		responded, total := c.ResponseProgress()
		r.printf("%s\n", dimText("waiting for response..."))
		if a.IsBroadcast() {
			r.printf("%s\n", dimText("%d / %d players responded", responded, total))
		}
	case respond.RoleAlreadyResponded:
		responded, total := c.ResponseProgress()
		r.printf("%s\n", okText("responded - waiting for others (%d / %d)", responded, total))
	case respond.RoleEligible:
		r.printf("%s\n", warnText("Action required: %s from %s", a.Type, from.Name))
		if resp := c.Responder(); resp != nil {
			if a.IsMonetary() {
				r.printf("  pay at least $%dM - selected $%dM\n",
					resp.PaymentDue(), resp.PaymentTotal())
			}
			if resp.CanVeto() {
				r.printf("  %s\n", dimText("(veto available)"))
			}
		}
	}
}
