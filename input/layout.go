package input

import (
	"sort"
	"strings"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
)

// Layout translates keys named by their position on a qwerty keyboard to the
// key the same physical position produces on another layout. Keys a layout
// does not move are kept as they are.
type Layout struct {
	Name string
	keys map[string]string
}

// Known keyboard layouts.
var (
	QWERTY = Layout{Name: "qwerty"}
	AZERTY = Layout{Name: "azerty", keys: map[string]string{
		"q": "a", "a": "q",
		"w": "z", "z": "w",
		";": "m", "m": ",",
	}}
	QWERTZ = Layout{Name: "qwertz", keys: map[string]string{
		"y": "z", "z": "y",
		";": "ö",
	}}
	Dvorak = Layout{Name: "dvorak", keys: map[string]string{
		"q": "'", "w": ",", "e": ".", "r": "p", "t": "y", "y": "f", "u": "g", "i": "c", "o": "r", "p": "l",
		"a": "a", "s": "o", "d": "e", "f": "u", "g": "i", "h": "d", "j": "h", "k": "t", "l": "n", ";": "s",
		"z": ";", "x": "q", "c": "j", "v": "k", "b": "x", "n": "b", "m": "m",
	}}
)

var layouts = map[string]Layout{
	QWERTY.Name: QWERTY,
	AZERTY.Name: AZERTY,
	QWERTZ.Name: QWERTZ,
	Dvorak.Name: Dvorak,
}

// LookupLayout returns the layout called name.
func LookupLayout(name string) (Layout, error) {
	l, ok := layouts[strings.ToLower(name)]
	if !ok {
		return Layout{}, errors.Errorf("input: unknown keyboard layout %q, expected one of %s",
			name, strings.Join(LayoutNames(), ", "))
	}
	return l, nil
}

// LayoutNames lists the known layouts.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate returns the key produced at the position of the qwerty key.
func (l Layout) Translate(key string) string {
	if k, ok := l.keys[key]; ok {
		return k
	}
	return key
}

// Resolve translates every binding of a control map.
func (l Layout) Resolve(c rules.ControlMap) rules.ControlMap {
	return rules.ControlMap{
		Left:  l.Translate(c.Left),
		Up:    l.Translate(c.Up),
		Right: l.Translate(c.Right),
		Down:  l.Translate(c.Down),
	}
}
