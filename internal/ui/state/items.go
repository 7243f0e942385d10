package state

// Item is an entry the cursor can filter and select. K is the identity
// reported back to the host when the entry is chosen.
type Item[K comparable] interface {
	Label() string
	Key() K
}

// Entry pairs an item with its position in the full snapshot.
type Entry[T any] struct {
	Pos      int
	Item     T
	Selected bool
}

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
