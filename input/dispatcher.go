// Package input turns key presses into snake steering. A single Dispatcher
// lives as long as the process, snakes borrow a slot from it for as long as
// they are alive.
package input

import (
	"strings"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Dispatcher routes keys to the steering func bound to a player slot. It is
// not safe for concurrent use, keys must be dispatched on the goroutine that
// ticks the engine.
type Dispatcher struct {
	layout Layout
	slots  map[int]*binding
	keys   map[string]*binding
	nextID uint64
}

type binding struct {
	id       uint64
	slot     int
	controls rules.ControlMap
	steer    func(rules.Direction) bool
}

// NewDispatcher returns an empty dispatcher translating control maps
// through layout.
func NewDispatcher(layout Layout) *Dispatcher {
	return &Dispatcher{
		layout: layout,
		slots:  map[int]*binding{},
		keys:   map[string]*binding{},
	}
}

// Layout returns the keyboard layout bindings are resolved with.
func (d *Dispatcher) Layout() Layout { return d.layout }

// Bind attaches steer to the keys of controls, translated to the dispatcher
// layout, until the returned release func is called. Binding a slot that is
// still bound or a key another slot uses is an error.
func (d *Dispatcher) Bind(slot int, controls rules.ControlMap, steer func(rules.Direction) bool) (func(), error) {
	if _, ok := d.slots[slot]; ok {
		return nil, errors.Errorf("input: slot %d is already bound", slot)
	}
	resolved := d.layout.Resolve(controls)
	if err := resolved.Validate(); err != nil {
		return nil, errors.Wrapf(err, "input: slot %d", slot)
	}
	for _, k := range resolved.Keys() {
		if other, ok := d.keys[k]; ok {
			return nil, errors.Errorf("input: key %q of slot %d is bound to slot %d", k, slot, other.slot)
		}
	}

	d.nextID++
	b := &binding{id: d.nextID, slot: slot, controls: resolved, steer: steer}
	d.slots[slot] = b
	for _, k := range resolved.Keys() {
		d.keys[k] = b
	}
	log.WithFields(log.Fields{
		"slot":     slot,
		"controls": resolved,
		"layout":   d.layout.Name,
	}).Debug("controls bound")

	return func() { d.release(b) }, nil
}

// release removes b if it is still the binding of its slot. Calling it more
// than once is harmless.
func (d *Dispatcher) release(b *binding) {
	current, ok := d.slots[b.slot]
	if !ok || current.id != b.id {
		return
	}
	delete(d.slots, b.slot)
	for _, k := range b.controls.Keys() {
		if d.keys[k] == b {
			delete(d.keys, k)
		}
	}
	log.WithField("slot", b.slot).Debug("controls released")
}

// Dispatch delivers a key press and reports whether any slot used it. The
// stop key goes to every bound slot.
func (d *Dispatcher) Dispatch(key string) bool {
	key = NormalizeKey(key)
	if key == rules.StopKey {
		for _, b := range d.slots {
			b.steer(rules.None)
		}
		return len(d.slots) > 0
	}
	b, ok := d.keys[key]
	if !ok {
		return false
	}
	dir, _ := b.controls.Lookup(key)
	b.steer(dir)
	return true
}

// NormalizeKey maps a key name to the form control maps use: lower case,
// with the space bar called "space".
func NormalizeKey(key string) string {
	if key == " " {
		return rules.StopKey
	}
	return strings.ToLower(key)
}
