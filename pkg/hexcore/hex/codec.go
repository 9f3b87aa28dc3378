package hex

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Decoders for the pattern parameters. Encoding uses the struct tags as is;
// decoding additionally rejects a negative radius so a decoded pattern is
// always iterable.

type patternFields[T Number] struct {
	Center Position[T] `json:"center" yaml:"center"`
	Radius int         `json:"radius" yaml:"radius"`
}

// UnmarshalJSON decodes {center, radius}.
func (g *Ring[T]) UnmarshalJSON(data []byte) error {
	var f patternFields[T]
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	return g.set(f)
}

// UnmarshalYAML decodes {center, radius}.
func (g *Ring[T]) UnmarshalYAML(value *yaml.Node) error {
	var f patternFields[T]
	if err := value.Decode(&f); err != nil {
		return err
	}
	return g.set(f)
}

func (g *Ring[T]) set(f patternFields[T]) error {
	v, err := NewRing(f.Center, f.Radius)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// UnmarshalJSON decodes {center, radius}.
func (g *Spiral[T]) UnmarshalJSON(data []byte) error {
	var f patternFields[T]
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	return g.set(f)
}

// UnmarshalYAML decodes {center, radius}.
func (g *Spiral[T]) UnmarshalYAML(value *yaml.Node) error {
	var f patternFields[T]
	if err := value.Decode(&f); err != nil {
		return err
	}
	return g.set(f)
}

func (g *Spiral[T]) set(f patternFields[T]) error {
	v, err := NewSpiral(f.Center, f.Radius)
	if err != nil {
		return err
	}
	*g = v
	return nil
}
