// Package idgen hands out cast and roll identifiers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// NewSequential numbers IDs from 1 (cast_1, cast_2, ...). Tests use it to
// get predictable cast and roll ids.
func NewSequential(prefix string) Generator {
	var n atomic.Uint64
	return Func(func() string {
		return join(prefix, strconv.FormatUint(n.Add(1), 10))
	})
}

// NewUUID returns random ids such as roll_0b7e...; empty prefix gives a bare UUID
func NewUUID(prefix string) Generator {
	return Func(func() string {
		return join(prefix, uuid.NewString())
	})
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
