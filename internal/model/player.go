package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Marker identifies which player occupies a cell. The zero value is the empty marker.
type Marker struct {
	Name string
}

// NewMarker creates a marker labelled with the given name, e.g. "RED"
func NewMarker(name string) Marker {
	return Marker{Name: strings.ToUpper(strings.TrimSpace(name))}
}

// IsEmpty returns true for the zero marker
func (m Marker) IsEmpty() bool {
	return m.Name == ""
}

// Short returns the one-character label used when drawing the grid
func (m Marker) Short() string {
	if m.IsEmpty() {
		return " "
	}
	r, _ := utf8.DecodeRuneInString(m.Name)
	return string(r)
}

// Full returns the complete label
func (m Marker) Full() string {
	return m.Name
}

// Player represents a game participant
type Player struct {
	Name   string
	Marker Marker
}

// String renders the player the way prompts and announcements show it
func (p Player) String() string {
	return fmt.Sprintf("%s [%s]", p.Name, p.Marker.Full())
}
