// SPDX-License-Identifier: MIT
// Package: peelmis/counter
//
// types.go - the Counter contract, strategy kinds and sentinel errors.

package counter

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/katalvlaran/peelmis/parallel"
)

// ErrUnknownKind indicates a strategy name or value outside the registry.
var ErrUnknownKind = errors.New("counter: unknown kind")

// Counter is the per-vertex decrement-to-zero contract.
type Counter interface {
	Decrement(w *parallel.Worker) bool
	IsZero() bool
	NotZero() bool
	TryForceZero() bool
	Value() int64
}

// Cell is the constraint the engine uses to store counters by value in a
// slice and initialise them in place.
type Cell[T any] interface {
	*T
	Counter
	Init(initial int64, env *Env)
}

// Kind selects a counter strategy.
type Kind uint8

const (
	KindAtomic Kind = iota
	KindShared
	KindDynamic
	KindSharded
	KindApproximate
	KindFunnel

	numKinds
)

var kindNames = [numKinds]string{
	KindAtomic:      "atomic",
	KindShared:      "shared",
	KindDynamic:     "dynamic",
	KindSharded:     "sharded",
	KindApproximate: "approximate",
	KindFunnel:      "funnel",
}

// String returns the registry name of k.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names a strategy.
func (k Kind) Valid() bool { return k < numKinds }

// Exact reports whether the strategy never loses decrements.
// For KindDynamic the answer depends on the Env; see Env.Exact.
func (k Kind) Exact() bool { return k.Valid() && k != KindApproximate }

// Kinds lists every strategy in registry order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind resolves a registry name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("ParseKind: %q: %w", s, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("MarshalText: %d: %w", uint8(k), ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// paddedInt64 occupies a full cache line.
type paddedInt64 struct {
	atomic.Int64
	_ [56]byte
}

// New allocates and initialises a counter of kind k.
func New(k Kind, initial int64, env *Env) (Counter, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("New: %d: %w", uint8(k), ErrUnknownKind)
	}
	return newCounter(k, initial, env), nil
}

func newCounter(k Kind, initial int64, env *Env) Counter {
	var c interface {
		Counter
		Init(int64, *Env)
	}
	switch k {
	case KindAtomic:
		c = &Atomic{}
	case KindShared:
		c = &Shared{}
	case KindDynamic:
		c = &Dynamic{}
	case KindSharded:
		c = &Sharded{}
	case KindApproximate:
		c = &Approximate{}
	default:
		c = &Funnel{}
	}
	c.Init(initial, env)
	return c
}
