package footprint

import (
	"slices"
	"strings"
	"sync"
)

var (
	wizardRegistry   = make(map[string]*Wizard)
	wizardRegistryMu sync.RWMutex
)

// RegisterWizard makes a wizard available by name. Names are case-insensitive.
// Built-in wizards register themselves from init.
func RegisterWizard(w *Wizard) {
	wizardRegistryMu.Lock()
	defer wizardRegistryMu.Unlock()
	wizardRegistry[strings.ToLower(w.Name)] = w
}

// GetWizard retrieves a registered wizard, or nil if none has that name.
func GetWizard(name string) *Wizard {
	wizardRegistryMu.RLock()
	defer wizardRegistryMu.RUnlock()
	return wizardRegistry[strings.ToLower(name)]
}

// ListWizards returns the registered wizard names in sorted order.
func ListWizards() []string {
	wizardRegistryMu.RLock()
	defer wizardRegistryMu.RUnlock()
	names := make([]string, 0, len(wizardRegistry))
	for name := range wizardRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
