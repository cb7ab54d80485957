package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Card is one physical UNO card. Wild cards always carry color.Wild; the color
// they stand for once played lives in chosenColor.
type Card struct {
	color       color.Color
	value       Value
	chosenColor *color.Color
}

func New(c color.Color, v Value) *Card {
	card := &Card{color: c, value: v}
	card.enforceWild()
	return card
}

func (c *Card) enforceWild() {
	if c.value.IsWildCard() {
		c.color = color.Wild
	}
}

func (c *Card) Color() color.Color {
	return c.color
}

// SetColor changes the printed color. Wild cards stay color.Wild.
func (c *Card) SetColor(cc color.Color) {
	c.color = cc
	c.enforceWild()
}

func (c *Card) Value() Value {
	return c.value
}

func (c *Card) SetValue(v Value) {
	c.value = v
	c.enforceWild()
}

// ChosenColor is the color the card counts as: the chosen one if set, the printed one otherwise.
func (c *Card) ChosenColor() color.Color {
	if c.chosenColor != nil {
		return *c.chosenColor
	}
	return c.color
}

func (c *Card) HasChosenColor() bool {
	return c.chosenColor != nil
}

func (c *Card) SetChosenColor(cc color.Color) {
	c.chosenColor = &cc
}

func (c *Card) ClearChosenColor() {
	c.chosenColor = nil
}

func (c *Card) IsWild() bool {
	return c.value.IsWildCard()
}

// CanPlayOn reports whether c may be discarded onto top. Colors are compared
// against the printed color of top.
func (c *Card) CanPlayOn(top *Card) bool {
	if c == nil || top == nil || !c.value.Valid() || !top.value.Valid() {
		return false
	}
	if c.value.IsWildCard() {
		return true
	}
	return c.color == top.color || c.value == top.value
}

// CanPlayOnChosen is CanPlayOn matching against the color top counts as.
func (c *Card) CanPlayOnChosen(top *Card) bool {
	if c.CanPlayOn(top) {
		return true
	}
	return c != nil && top != nil && c.value.Valid() && top.value.Valid() && c.color == top.ChosenColor()
}

func (c *Card) ScoreValue() int {
	switch v := c.value; {
	case v.IsNumber():
		return v.Number()
	case v == Skip, v == Reverse, v == DrawTwo:
		return 20
	case v.IsWildCard():
		return 50
	default:
		return 0
	}
}

// Equal compares color and value; chosen colors are ignored.
func (c *Card) Equal(other *Card) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.color == other.color && c.value == other.value
}

func (c *Card) Actions() []action.Action {
	switch c.value {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{action.NewDrawCardsAction(2)}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{action.NewDrawCardsAction(4), action.NewPickColorAction()}
	default:
		return []action.Action{}
	}
}

func (c *Card) String() string {
	if c == nil {
		return "<none>"
	}
	if c.IsWild() && c.chosenColor != nil {
		return c.chosenColor.Paintf("[%s]", c.value) + fmt.Sprintf("(%s)", c.chosenColor.Name())
	}
	return c.color.Paintf("[%s]", c.value)
}
