package station

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultSlotCount is the number of lockers assumed at a station that is
// not listed in the inventory.
const DefaultSlotCount = 10

// Inventory maps a station name to its ordered locker slot numbers.
// It is built once at startup and never modified afterwards.
type Inventory struct {
	slots map[string][]int
}

// NewInventory copies the given table into an Inventory.
func NewInventory(table map[string][]int) Inventory {
	slots := make(map[string][]int, len(table))
	for name, s := range table {
		slots[name] = slices.Clone(s)
	}
	return Inventory{slots: slots}
}

// Default returns the built-in inventory of Delhi, Meerut and Lucknow
// stations.
func Default() Inventory {
	return NewInventory(map[string][]int{
		"New Delhi":            Range(20),
		"Hazrat Nizamuddin":    Range(15),
		"Anand Vihar":          Range(11),
		"ISBT Kashmere Gate":   Range(9),
		"ISBT Sarai Kale Khan": Range(9),
		"Meerut City":          Range(11),
		"Meerut Cantt":         Range(9),
		"ISBT Meerut":          Range(9),
		"Bhainsali Bus Stand":  Range(7),
		"Charbagh":             Range(15),
		"Lucknow Junction":     Range(13),
		"Alambagh":             Range(9),
		"Kaiserbagh":           Range(9),
	})
}

// Range returns the slot numbers 1..n.
func Range(n int) []int {
	out := make([]int, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}

// Slots returns the configured slots of the station, or 1..DefaultSlotCount
// for an unknown station. The returned slice is a copy.
func (inv Inventory) Slots(name string) []int {
	if s, ok := inv.slots[name]; ok {
		return slices.Clone(s)
	}
	return Range(DefaultSlotCount)
}

// Known reports whether the station is listed.
func (inv Inventory) Known(name string) bool {
	_, ok := inv.slots[name]
	return ok
}

// Names returns the listed station names, sorted.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv.slots))
	for name := range inv.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fileFormat is the YAML layout accepted by LoadFile. Each station is
// either a slot count or an explicit list of slot numbers:
//
//	stations:
//	  New Delhi: 20
//	  Charbagh: [1, 2, 3, 5, 8]
type fileFormat struct {
	Stations map[string]yaml.Node `yaml:"stations"`
}

// LoadFile reads an inventory from a YAML file.
func LoadFile(path string) (Inventory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Inventory{}, fmt.Errorf("read inventory file: %w", err)
	}

	var doc fileFormat
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Inventory{}, fmt.Errorf("parse inventory file: %w", err)
	}
	if len(doc.Stations) == 0 {
		return Inventory{}, fmt.Errorf("inventory file %s lists no stations", path)
	}

	table := make(map[string][]int, len(doc.Stations))
	for name, node := range doc.Stations {
		slots, err := decodeSlots(&node)
		if err != nil {
			return Inventory{}, fmt.Errorf("station %q: %w", name, err)
		}
		table[name] = slots
	}
	return NewInventory(table), nil
}

func decodeSlots(node *yaml.Node) ([]int, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return nil, fmt.Errorf("slot count: %w", err)
		}
		if n < 1 {
			return nil, fmt.Errorf("slot count must be positive, got %d", n)
		}
		return Range(n), nil
	case yaml.SequenceNode:
		var slots []int
		if err := node.Decode(&slots); err != nil {
			return nil, fmt.Errorf("slot list: %w", err)
		}
		seen := make(map[int]bool, len(slots))
		for _, s := range slots {
			if s < 1 {
				return nil, fmt.Errorf("slot numbers must be positive, got %d", s)
			}
			if seen[s] {
				return nil, fmt.Errorf("duplicate slot %d", s)
			}
			seen[s] = true
		}
		return slots, nil
	default:
		return nil, fmt.Errorf("expected a slot count or a list of slots")
	}
}
