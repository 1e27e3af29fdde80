package input

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// ParseKey resolves an ebiten key name such as "W", "ArrowUp" or "F11".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// ParseBindings builds Bindings from action names to key names. Actions
// missing from names keep their default keys; an empty list unbinds.
func ParseBindings(names map[string][]string) (Bindings, error) {
	b := DefaultBindings()

	actions := make([]string, 0, len(names))
	for a := range names {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	for _, name := range actions {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		keys := make([]ebiten.Key, 0, len(names[name]))
		for _, kn := range names[name] {
			k, err := ParseKey(kn)
			if err != nil {
				return nil, fmt.Errorf("binding %s: %w", name, err)
			}
			keys = append(keys, k)
		}
		b[a] = keys
	}
	return b, nil
}
