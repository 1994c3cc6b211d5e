package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// ControlMap binds the four steering actions of one player to key names.
// Key names are lower case, e.g. "a", "arrowleft".
type ControlMap struct {
	Left  string
	Up    string
	Right string
	Down  string
}

// StopKey idles every snake, it is shared by all players.
const StopKey = "space"

// Validate makes sure all four bindings are present and distinct.
func (c ControlMap) Validate() error {
	seen := map[string]Direction{}
	for _, b := range c.bindings() {
		if b.key == "" {
			return errors.Errorf("rules: control for %s is not bound", b.dir)
		}
		if b.key == StopKey {
			return errors.Errorf("rules: %q is reserved for stop", StopKey)
		}
		if other, ok := seen[b.key]; ok {
			return errors.Errorf("rules: key %q bound to both %s and %s", b.key, other, b.dir)
		}
		seen[b.key] = b.dir
	}
	return nil
}

// Lookup returns the direction bound to key.
func (c ControlMap) Lookup(key string) (Direction, bool) {
	key = strings.ToLower(key)
	for _, b := range c.bindings() {
		if b.key == key {
			return b.dir, true
		}
	}
	return None, false
}

// Keys lists the bound keys in left, up, right, down order.
func (c ControlMap) Keys() []string {
	return []string{c.Left, c.Up, c.Right, c.Down}
}

type binding struct {
	key string
	dir Direction
}

func (c ControlMap) bindings() []binding {
	return []binding{
		{key: c.Left, dir: Left},
		{key: c.Up, dir: Up},
		{key: c.Right, dir: Right},
		{key: c.Down, dir: Down},
	}
}
