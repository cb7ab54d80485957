package card

import "fmt"

type Value int

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var symbols = [...]string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"Skip", "Rev", "+2", "Wild", "+4",
}

// NumberValue returns the value printed as n, for n in 0..9.
func NumberValue(n int) (Value, error) {
	if n < 0 || n > 9 {
		return Zero, fmt.Errorf("invalid card number %d", n)
	}
	return Value(n), nil
}

func (v Value) Valid() bool {
	return v >= Zero && v <= WildDrawFour
}

func (v Value) IsNumber() bool {
	return v >= Zero && v <= Nine
}

func (v Value) IsWildCard() bool {
	return v == Wild || v == WildDrawFour
}

func (v Value) IsActionCard() bool {
	return v.Valid() && !v.IsNumber()
}

// Number is the face value of a number card, -1 otherwise.
func (v Value) Number() int {
	if !v.IsNumber() {
		return -1
	}
	return int(v)
}

func (v Value) Symbol() string {
	if !v.Valid() {
		return "?"
	}
	return symbols[v]
}

func (v Value) String() string {
	return v.Symbol()
}
