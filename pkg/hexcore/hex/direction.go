package hex

import "fmt"

// Direction names one of the six axial neighbor offsets.
type Direction int

// Directions in their fixed cyclic order. Ring traversal and rotation rely on
// this order.
const (
	Right Direction = iota
	UpRight
	UpLeft
	Left
	DownLeft
	DownRight
)

// Directions for axial neighbors in pointy-top orientation, indexed by
// Direction.
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

var directionNames = [6]string{
	"right", "up_right", "up_left", "left", "down_left", "down_right",
}

// Vector returns the unit offset for d.
func (d Direction) Vector() Axial { return Directions[d] }

// DirectionVector returns the unit offset for d in coordinate type T.
func DirectionVector[T Number](d Direction) Position[T] {
	v := Directions[d]
	return Position[T]{Q: T(v.Q), R: T(v.R)}
}

// Valid reports whether d is one of the six named directions.
func (d Direction) Valid() bool { return d >= Right && d <= DownRight }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return Direction(mod6(int(d) + 3)) }

// Rotate turns d by steps*60 degrees, matching Position.Rotate.
func (d Direction) Rotate(steps int) Direction { return Direction(mod6(int(d) - steps)) }

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection resolves a snake_case direction name.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("hex: unknown direction %q", name)
}

// MarshalText encodes d by name, for both JSON and YAML.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("hex: invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
