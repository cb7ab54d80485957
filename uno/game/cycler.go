package game

const (
	counterClockwise = -1
	clockwise        = 1
)

// Cycler tracks whose turn it is and which way play goes around the table.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		direction: clockwise,
	}
}

func (c *Cycler) Size() int {
	return c.size
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Set(index int) {
	c.current = index
}

func (c *Cycler) Clockwise() bool {
	return c.direction == clockwise
}

func (c *Cycler) Peek() int {
	return (c.current + c.direction + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() bool {
	switch c.direction {
	case clockwise:
		c.direction = counterClockwise
	case counterClockwise:
		c.direction = clockwise
	}
	return c.Clockwise()
}

func (c *Cycler) Reset() {
	c.current = 0
	c.direction = clockwise
}
