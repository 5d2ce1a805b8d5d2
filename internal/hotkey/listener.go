// Package hotkey lets a global key combination stop the keepalive loop.
package hotkey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
)

var modifiers = map[string]bool{
	"ctrl":  true,
	"shift": true,
	"alt":   true,
	"cmd":   true,
}

// ParseCombo turns "ctrl+shift+q" into the key list gohook expects,
// with the plain key first and the modifiers after it.
func ParseCombo(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty hotkey")
	}

	var keys, mods []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(strings.ToLower(s), "+") {
		k := strings.TrimSpace(part)
		if k == "" {
			return nil, fmt.Errorf("hotkey %q has an empty key", s)
		}
		if seen[k] {
			return nil, fmt.Errorf("hotkey %q repeats %q", s, k)
		}
		seen[k] = true
		if modifiers[k] {
			mods = append(mods, k)
		} else {
			keys = append(keys, k)
		}
	}
	if len(keys) != 1 {
		return nil, fmt.Errorf("hotkey %q needs exactly one non-modifier key", s)
	}
	return append(keys, mods...), nil
}

// Listen calls onPress the first time combo is pressed and blocks until ctx
// is done. The global hook is released before Listen returns.
func Listen(ctx context.Context, combo []string, onPress func()) {
	var once sync.Once
	hook.Register(hook.KeyDown, combo, func(e hook.Event) {
		once.Do(onPress)
	})

	evChan := hook.Start()
	done := hook.Process(evChan)

	<-ctx.Done()
	hook.End()
	<-done
}
