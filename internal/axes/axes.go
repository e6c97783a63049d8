package axes

import (
	"errors"
	"fmt"

	"github.com/dshills/nyota/internal/schema"
)

// AxisCount is the number of axes every instrument must define. The radar
// chart and the report layout both assume it.
const AxisCount = 8

var (
	// ErrAxisCount is returned when an instrument does not define exactly AxisCount axes.
	ErrAxisCount = errors.New("instrument must define exactly 8 axes")
	// ErrDeadInversion is returned when an inverted item is not one of the axis's contributing items.
	ErrDeadInversion = errors.New("inverted item is not a contributing item of the axis")
)

// Axis describes how one personality axis is computed: which local items of
// which blocks contribute, and which of them are reverse-scored.
type Axis struct {
	Name   string                 `yaml:"name"`
	Items  map[schema.Block][]int `yaml:"items"`
	Invert []schema.ItemRef       `yaml:"invert,omitempty"`

	inverted map[schema.ItemRef]struct{}
}

// Inverted reports whether ref must be reverse-scored for this axis.
func (a Axis) Inverted(ref schema.ItemRef) bool {
	if a.inverted != nil {
		_, ok := a.inverted[ref]
		return ok
	}
	for _, r := range a.Invert {
		if r == ref {
			return true
		}
	}
	return false
}

// Refs returns the contributing items in scoring order: blocks in canonical
// order, items in configured order within each block.
func (a Axis) Refs() []schema.ItemRef {
	out := make([]schema.ItemRef, 0, a.ItemCount())
	for _, b := range schema.Blocks {
		for _, item := range a.Items[b] {
			out = append(out, schema.ItemRef{Block: b, Item: item})
		}
	}
	return out
}

// ItemCount returns the number of contributing items across all blocks.
func (a Axis) ItemCount() int {
	n := 0
	for _, items := range a.Items {
		n += len(items)
	}
	return n
}

func (a Axis) clone() Axis {
	c := Axis{Name: a.Name, Items: make(map[schema.Block][]int, len(a.Items))}
	for b, items := range a.Items {
		c.Items[b] = append([]int(nil), items...)
	}
	if len(a.Invert) > 0 {
		c.Invert = append([]schema.ItemRef(nil), a.Invert...)
	}
	if a.inverted != nil {
		c.inverted = make(map[schema.ItemRef]struct{}, len(a.inverted))
		for ref := range a.inverted {
			c.inverted[ref] = struct{}{}
		}
	}
	return c
}

// Config is a validated, immutable questionnaire instrument. It is safe for
// concurrent use by any number of readers.
type Config struct {
	name string
	axes []Axis
}

// New validates list and freezes it into a Config. The input slice is copied;
// later changes to it do not affect the returned Config.
func New(name string, list []Axis) (*Config, error) {
	if len(list) != AxisCount {
		return nil, fmt.Errorf("%w, got %d", ErrAxisCount, len(list))
	}

	seen := make(map[string]bool, len(list))
	out := make([]Axis, 0, len(list))
	for i, a := range list {
		prefix := fmt.Sprintf("axis[%d] %q", i, a.Name)
		if a.Name == "" {
			return nil, fmt.Errorf("axis[%d]: name is required", i)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("%s: duplicate axis name", prefix)
		}
		seen[a.Name] = true

		c := a.clone()
		if err := validateAxis(&c, prefix); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return &Config{name: name, axes: out}, nil
}

// validateAxis checks item ranges and inversion consistency, and builds the
// inversion set.
func validateAxis(a *Axis, prefix string) error {
	contributing := make(map[schema.ItemRef]struct{}, a.ItemCount())
	for b, items := range a.Items {
		if !schema.IsValidBlock(b) {
			return fmt.Errorf("%s: unknown block %q", prefix, b)
		}
		for _, item := range items {
			ref := schema.ItemRef{Block: b, Item: item}
			if !b.Contains(item) {
				return fmt.Errorf("%s: item %d out of range for %s (1-%d)", prefix, item, b, b.Size())
			}
			if _, dup := contributing[ref]; dup {
				return fmt.Errorf("%s: %s listed twice", prefix, ref)
			}
			contributing[ref] = struct{}{}
		}
	}

	a.inverted = make(map[schema.ItemRef]struct{}, len(a.Invert))
	for _, ref := range a.Invert {
		if _, ok := contributing[ref]; !ok {
			return fmt.Errorf("%s: %s: %w", prefix, ref, ErrDeadInversion)
		}
		a.inverted[ref] = struct{}{}
	}
	return nil
}

// Name returns the instrument name.
func (c *Config) Name() string { return c.name }

// Len returns the number of axes.
func (c *Config) Len() int { return len(c.axes) }

// Axes returns a copy of the axes in canonical order.
func (c *Config) Axes() []Axis {
	out := make([]Axis, len(c.axes))
	for i, a := range c.axes {
		out[i] = a.clone()
	}
	return out
}

// Names returns the axis names in canonical order.
func (c *Config) Names() []string {
	out := make([]string, len(c.axes))
	for i, a := range c.axes {
		out[i] = a.Name
	}
	return out
}

// ItemCount returns the total number of item lookups needed to score every axis.
func (c *Config) ItemCount() int {
	n := 0
	for _, a := range c.axes {
		n += a.ItemCount()
	}
	return n
}

// Warnings lists non-fatal anomalies, such as axes with no contributing items
// (those always score 0).
func (c *Config) Warnings() []string {
	var out []string
	for _, a := range c.axes {
		if a.ItemCount() == 0 {
			out = append(out, fmt.Sprintf("axis %q has no contributing items and will always score 0", a.Name))
		}
	}
	return out
}
