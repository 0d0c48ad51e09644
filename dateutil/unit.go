package dateutil

import (
	"fmt"
	"strings"
)

// Unit selects which calendar field an Add amount applies to.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Days
	Weeks
	Months
	Years
)

const DefaultUnit = Days

var unitNames = map[Unit]string{
	Seconds: "seconds",
	Minutes: "minutes",
	Days:    "days",
	Weeks:   "weeks",
	Months:  "months",
	Years:   "years",
}

func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit accepts unit names case-insensitively, singular or plural.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasSuffix(name, "s") {
		name += "s"
	}
	for u, n := range unitNames {
		if n == name {
			return u, nil
		}
	}
	return DefaultUnit, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// UnitNames lists the accepted unit names in enumeration order.
func UnitNames() []string {
	names := make([]string, 0, len(unitNames))
	for u := Seconds; u <= Years; u++ {
		names = append(names, unitNames[u])
	}
	return names
}
