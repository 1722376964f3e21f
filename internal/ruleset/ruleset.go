// Package ruleset provides the Vagabond delivery method tables the spell cost
// engine prices against.
package ruleset

import (
	"sort"
)

// MagnitudeKind says how a delivery's size is expressed
type MagnitudeKind string

// Magnitude kinds
const (
	KindCount  MagnitudeKind = "count"
	KindRadius MagnitudeKind = "radius"
	KindRange  MagnitudeKind = "range"
)

var magnitudeKinds = []string{string(KindCount), string(KindRadius), string(KindRange)}

// Magnitude is the base size of a delivery, e.g. a 10 foot radius or 1 target
type Magnitude struct {
	Value int           `yaml:"value"`
	Unit  string        `yaml:"unit"`
	Kind  MagnitudeKind `yaml:"kind"`
}

// Delivery is one spell delivery method
type Delivery struct {
	Key          string    `yaml:"key"`
	Name         string    `yaml:"name"`
	Cost         int       `yaml:"cost"`
	IncreaseCost int       `yaml:"increase_cost"`
	Increment    int       `yaml:"increment"`
	Base         Magnitude `yaml:"base"`
}

// HasMagnitude reports whether the delivery has a sized base
func (d *Delivery) HasMagnitude() bool {
	return d.Base.Value > 0
}

// MagnitudeAt returns the delivery size after the given number of increase steps
func (d *Delivery) MagnitudeAt(steps int) int {
	return d.Base.Value + d.Increment*steps
}

// Ruleset looks up delivery methods by key
type Ruleset interface {
	// Delivery returns the delivery method for key
	Delivery(key string) (*Delivery, bool)

	// Deliveries returns every delivery method ordered by key
	Deliveries() []*Delivery
}

// Table is an in-memory Ruleset
type Table struct {
	deliveries map[string]*Delivery
	ordered    []*Delivery
}

// NewTable builds a Table from a list of deliveries
func NewTable(deliveries []*Delivery) *Table {
	t := &Table{
		deliveries: make(map[string]*Delivery, len(deliveries)),
		ordered:    make([]*Delivery, 0, len(deliveries)),
	}
	for _, d := range deliveries {
		t.deliveries[d.Key] = d
		t.ordered = append(t.ordered, d)
	}
	sort.Slice(t.ordered, func(i, j int) bool {
		return t.ordered[i].Key < t.ordered[j].Key
	})
	return t
}

var _ Ruleset = (*Table)(nil)

// Delivery returns the delivery method for key
func (t *Table) Delivery(key string) (*Delivery, bool) {
	if key == "" {
		return nil, false
	}
	d, ok := t.deliveries[key]
	return d, ok
}

// Deliveries returns every delivery method ordered by key
func (t *Table) Deliveries() []*Delivery {
	out := make([]*Delivery, len(t.ordered))
	copy(out, t.ordered)
	return out
}
