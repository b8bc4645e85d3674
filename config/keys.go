package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyNames maps lower-cased ebiten key names ("w", "space", "shiftleft") to
// their key codes, built from ebiten's own String names so the two can never
// drift apart.
var keyNames = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := strings.ToLower(k.String())
		if name == "" {
			continue
		}
		if _, ok := m[name]; !ok {
			m[name] = k
		}
	}
	return m
}()

// KeyByName resolves an ebiten key from its name as printed by
// ebiten.Key.String, for example "W", "Space" or "ShiftLeft". Lookup is
// case-insensitive.
func KeyByName(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("config: unknown key name %q", name)
	}
	return k, nil
}
