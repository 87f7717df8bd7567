package game

// TurnDirection is the direction the turn cursor moves in.
type TurnDirection int

const (
	Clockwise TurnDirection = iota
	CounterClockwise
)

func (d TurnDirection) String() string {
	if d == CounterClockwise {
		return "counterClockwise"
	}
	return "clockwise"
}

const (
	left  = -1
	right = 1
)

// Cycler walks player indices in the current turn direction, wrapping at
// both ends. All turn-index arithmetic lives here.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Next() int {
	c.current = (c.current + c.direction + c.size) % c.size
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) Direction() TurnDirection {
	if c.direction == left {
		return CounterClockwise
	}
	return Clockwise
}
