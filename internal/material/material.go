// Package material holds the catalog of structural materials and their
// strength limits. The catalog is immutable after process start; bodies
// share catalog entries by pointer and never copy or mutate them.
package material

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a catalog material.
type Kind int

const (
	Steel Kind = iota
	Concrete
	Wood
	Aluminum
)

var kindNames = [...]string{"steel", "concrete", "wood", "aluminum"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("material(%d)", int(k))
	}
	return kindNames[k]
}

// ErrUnknownKind is returned when parsing a material name that is not in
// the catalog.
var ErrUnknownKind = errors.New("material: unknown kind")

// ParseKind maps a case-insensitive material name to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(name, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Properties are the physical constants of one material. Stress limits are
// in Pa, density in kg/m^3.
type Properties struct {
	Kind           Kind
	Density        float64
	MaxCompressive float64
	MaxTensile     float64
	MaxShear       float64
	ElasticModulus float64
}

// catalog values are the reference baseline and must not change: concrete
// is deliberately tension-weak and wood tension-strong so that compression
// and tension loads fail visibly differently.
var catalog = [...]Properties{
	Steel:    {Kind: Steel, Density: 7850, MaxCompressive: 400e6, MaxTensile: 400e6, MaxShear: 250e6, ElasticModulus: 200e9},
	Concrete: {Kind: Concrete, Density: 2400, MaxCompressive: 30e6, MaxTensile: 3e6, MaxShear: 5e6, ElasticModulus: 30e9},
	Wood:     {Kind: Wood, Density: 600, MaxCompressive: 30e6, MaxTensile: 60e6, MaxShear: 10e6, ElasticModulus: 11e9},
	Aluminum: {Kind: Aluminum, Density: 2700, MaxCompressive: 300e6, MaxTensile: 300e6, MaxShear: 200e6, ElasticModulus: 69e9},
}

// Lookup returns the shared catalog entry for a kind. Kinds outside the
// enum fall back to Steel so the lookup stays total.
func Lookup(k Kind) *Properties {
	if k < 0 || int(k) >= len(catalog) {
		k = Steel
	}
	return &catalog[k]
}

// Kinds lists every material in catalog order.
func Kinds() []Kind {
	ks := make([]Kind, len(catalog))
	for i := range catalog {
		ks[i] = Kind(i)
	}
	return ks
}
