package world

// Direction represents a cardinal direction.
// The iota order is the rotation order used when scanning for corridor growth.
type Direction int

// Direction constants
const (
	West Direction = iota
	South
	East
	North
)

// directionCount is the number of cardinal directions
const directionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{West, South, East, North}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case South:
		return "South"
	case East:
		return "East"
	case North:
		return "North"
	default:
		return "Unknown"
	}
}

// Next returns the following direction in rotation, wrapping from North back to West
func (d Direction) Next() Direction {
	return (d + 1) % directionCount
}

// Delta returns the x and y offsets for this direction.
// x is the first grid index, y the second; South decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case West:
		return -1, 0
	case South:
		return 0, -1
	case East:
		return 1, 0
	case North:
		return 0, 1
	default:
		return 0, 0
	}
}
