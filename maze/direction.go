package maze

// Direction is one of the four orthogonal directions. Its value is the wall bit it controls
// in a cell's mask.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// Directions holds the fixed neighbour order used wherever a tie has to be broken.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// Delta returns the column and row offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Letter returns the path letter of the direction.
func (d Direction) Letter() byte {
	switch d {
	case North:
		return 'N'
	case East:
		return 'E'
	case South:
		return 'S'
	case West:
		return 'W'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "Unknown"
}

// DirectionFromLetter maps a path letter back to its direction.
func DirectionFromLetter(l byte) (Direction, bool) {
	switch l {
	case 'N':
		return North, true
	case 'E':
		return East, true
	case 'S':
		return South, true
	case 'W':
		return West, true
	}
	return 0, false
}
