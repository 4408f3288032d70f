package model

// SortKey names the transaction column a sort applies to.
type SortKey string

// Sortable columns. SortNone leaves the list in arrival order.
const (
	SortNone     SortKey = ""
	SortAmount   SortKey = "amount"
	SortType     SortKey = "type"
	SortCategory SortKey = "category"
	SortDate     SortKey = "date"
)

// SortConfig is transient UI state. It persists until the user changes
// it and is re-applied whenever the transaction list changes.
type SortConfig struct {
	Key  SortKey
	Desc bool
}

// Toggle cycles the config for a column: a fresh column sorts
// ascending, a repeat on the same column flips the direction.
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if c.Key == key {
		return SortConfig{Key: key, Desc: !c.Desc}
	}
	return SortConfig{Key: key}
}
