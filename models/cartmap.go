package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// CartMap is a user's cart: product id -> size label -> quantity.
// The whole map is persisted as a single JSONB column and is only
// ever built through Normalize, Increment and SetQuantity, so a stored
// map never contains a non-positive quantity or an item without sizes.
type CartMap map[string]map[string]int

var ErrInvalidCartKey = errors.New("item id and size are required")

// Clone returns a deep copy. Mutating operations work on copies so that
// callers can compare old and new state.
func (m CartMap) Clone() CartMap {
	out := make(CartMap, len(m))
	for itemID, sizes := range m {
		cp := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			cp[size] = qty
		}
		out[itemID] = cp
	}
	return out
}

// Normalize returns a copy with every size entry of quantity <= 0 removed
// and every item left without sizes dropped. Normalizing an already
// normalized map gives a structurally identical map.
func (m CartMap) Normalize() CartMap {
	out := make(CartMap, len(m))
	for itemID, sizes := range m {
		kept := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			if qty > 0 {
				kept[size] = qty
			}
		}
		if len(kept) > 0 {
			out[itemID] = kept
		}
	}
	return out
}

// Increment adds one unit of (itemID, size), starting at 1 when the pair
// is absent.
func (m CartMap) Increment(itemID, size string) (CartMap, error) {
	if itemID == "" || size == "" {
		return nil, ErrInvalidCartKey
	}
	out := m.Clone()
	if out[itemID] == nil {
		out[itemID] = map[string]int{}
	}
	out[itemID][size]++
	return out.Normalize(), nil
}

// SetQuantity pins (itemID, size) to qty. A quantity of zero or less
// removes the size entry, and the item entry with it when no sizes remain.
func (m CartMap) SetQuantity(itemID, size string, qty int) (CartMap, error) {
	if itemID == "" || size == "" {
		return nil, ErrInvalidCartKey
	}
	out := m.Clone()
	if qty <= 0 {
		if sizes, ok := out[itemID]; ok {
			delete(sizes, size)
			if len(sizes) == 0 {
				delete(out, itemID)
			}
		}
		return out.Normalize(), nil
	}
	if out[itemID] == nil {
		out[itemID] = map[string]int{}
	}
	out[itemID][size] = qty
	return out.Normalize(), nil
}

// Count is the number of units across every size of every item.
func (m CartMap) Count() int {
	total := 0
	for _, sizes := range m {
		for _, qty := range sizes {
			if qty > 0 {
				total += qty
			}
		}
	}
	return total
}

// Amount values the cart against the catalog. An item whose price can no
// longer be resolved contributes nothing; a product deleted from the
// catalog must never break cart valuation.
func (m CartMap) Amount(priceOf func(itemID string) (float64, bool)) float64 {
	var total float64
	for itemID, sizes := range m {
		price, ok := priceOf(itemID)
		if !ok {
			continue
		}
		for _, qty := range sizes {
			if qty > 0 {
				total += price * float64(qty)
			}
		}
	}
	return total
}

// Equal reports structural equality, ignoring key order.
func (m CartMap) Equal(other CartMap) bool {
	if len(m) != len(other) {
		return false
	}
	for itemID, sizes := range m {
		otherSizes, ok := other[itemID]
		if !ok || len(sizes) != len(otherSizes) {
			return false
		}
		for size, qty := range sizes {
			if otherSizes[size] != qty {
				return false
			}
		}
	}
	return true
}

// CartLine is one flattened (item, size, quantity) entry.
type CartLine struct {
	ItemID   string
	Size     string
	Quantity int
}

// Lines flattens the map into a deterministic list, sorted by item id and
// size. Entries with non-positive quantities are skipped.
func (m CartMap) Lines() []CartLine {
	ids := make([]string, 0, len(m))
	for itemID := range m {
		ids = append(ids, itemID)
	}
	sort.Strings(ids)

	var lines []CartLine
	for _, itemID := range ids {
		sizes := make([]string, 0, len(m[itemID]))
		for size := range m[itemID] {
			sizes = append(sizes, size)
		}
		sort.Strings(sizes)
		for _, size := range sizes {
			if qty := m[itemID][size]; qty > 0 {
				lines = append(lines, CartLine{ItemID: itemID, Size: size, Quantity: qty})
			}
		}
	}
	return lines
}

// Value implements driver.Valuer so the map persists as one JSONB document.
func (m CartMap) Value() (driver.Value, error) {
	if m == nil {
		m = CartMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *CartMap) Scan(value interface{}) error {
	if value == nil {
		*m = CartMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported cart column type %T", value)
	}
}
