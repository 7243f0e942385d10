package state

// Cursor filters an ordered snapshot against a query and tracks which
// matching entry is highlighted. Positions always refer to the full
// snapshot, so the highlight survives re-filtering as long as the entry at
// that position still matches.
type Cursor[K comparable, T Item[K]] struct {
	items   []T
	exclude func(T) bool
	ranker  Ranker
	query   string

	// index is the result index: the snapshot position of the highlighted
	// entry. match is the selected position, or -1 when nothing is selected.
	index int
	match int
}

// NewCursor builds a cursor. exclude may be nil when every entry is
// selectable.
func NewCursor[K comparable, T Item[K]](ranker Ranker, exclude func(T) bool) *Cursor[K, T] {
	if ranker == nil {
		ranker = FuzzysearchRanker{}
	}
	return &Cursor[K, T]{ranker: ranker, exclude: exclude, match: -1}
}

// SetItems replaces the snapshot. Selection state is left untouched; call
// Reconcile to bring it in line with the new entries.
func (c *Cursor[K, T]) SetItems(items []T) {
	c.items = cloneItems(items)
}

// Items returns a copy of the snapshot.
func (c *Cursor[K, T]) Items() []T {
	return cloneItems(c.items)
}

// Len returns the snapshot size.
func (c *Cursor[K, T]) Len() int {
	return len(c.items)
}

// SetQuery updates the query used for matching without recomputing.
func (c *Cursor[K, T]) SetQuery(query string) {
	c.query = query
}

// Query returns the query used for matching.
func (c *Cursor[K, T]) Query() string {
	return c.query
}

// Index returns the result index.
func (c *Cursor[K, T]) Index() int {
	return c.index
}

// SetIndex overrides the result index.
func (c *Cursor[K, T]) SetIndex(index int) {
	c.index = index
}

// MatchIndex returns the snapshot position of the selection.
func (c *Cursor[K, T]) MatchIndex() (int, bool) {
	if c.match < 0 || c.match >= len(c.items) {
		return -1, false
	}
	return c.match, true
}

// Match returns the identity of the selection.
func (c *Cursor[K, T]) Match() (K, bool) {
	item, ok := c.MatchItem()
	if !ok {
		var zero K
		return zero, false
	}
	return item.Key(), true
}

// MatchItem returns the selected entry.
func (c *Cursor[K, T]) MatchItem() (T, bool) {
	pos, ok := c.MatchIndex()
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[pos], true
}

// Clear drops the selection and rewinds the result index.
func (c *Cursor[K, T]) Clear() {
	c.match = -1
	c.index = 0
}

// Select forces the selection onto pos regardless of the query.
func (c *Cursor[K, T]) Select(pos int) bool {
	if pos < 0 || pos >= len(c.items) {
		return false
	}
	c.match = pos
	c.index = pos
	return true
}

// Valid reports whether the selection points at a selectable entry that
// matches the current query.
func (c *Cursor[K, T]) Valid() bool {
	pos, ok := c.MatchIndex()
	if !ok {
		return false
	}
	item := c.items[pos]
	return !c.excluded(item) && c.matches(item)
}

func (c *Cursor[K, T]) excluded(item T) bool {
	return c.exclude != nil && c.exclude(item)
}

func (c *Cursor[K, T]) matches(item T) bool {
	if c.query == "" {
		return true
	}
	_, ok := c.ranker.Score(item.Label(), c.query)
	return ok
}

func (c *Cursor[K, T]) score(item T) (int, bool) {
	if c.query == "" {
		return 0, true
	}
	return c.ranker.Score(item.Label(), c.query)
}

// Recompute selects the best scoring entry for the current query. Only a
// strictly higher score replaces the running best, so the earliest of
// equally scored entries wins. With an empty query every entry scores 0 and
// the first selectable entry is chosen; otherwise a score of 0 never wins.
func (c *Cursor[K, T]) Recompute() bool {
	c.Clear()
	best := 0
	for pos, item := range c.items {
		if c.excluded(item) {
			continue
		}
		score, ok := c.score(item)
		if !ok {
			continue
		}
		if score > best || (c.match < 0 && c.query == "") {
			best = score
			c.match = pos
			c.index = pos
		}
	}
	return c.match >= 0
}

// Seek moves the result index to target and selects the entry there if it
// is selectable and matches. When nothing qualifies the previous selection,
// if any, is kept and the result index returns to it.
func (c *Cursor[K, T]) Seek(target int) bool {
	c.index = target
	for pos, item := range c.items {
		if c.excluded(item) {
			continue
		}
		if pos == target && c.matches(item) {
			c.match = pos
			c.index = pos
			return true
		}
	}
	if pos, ok := c.MatchIndex(); ok {
		c.index = pos
	}
	return false
}

// Next selects the matching entry after the result index, wrapping to the
// first one when the result index is the last match or not a match at all.
func (c *Cursor[K, T]) Next() bool {
	first := -1
	seen := false
	for pos, item := range c.items {
		if c.excluded(item) || !c.matches(item) {
			continue
		}
		if first < 0 {
			first = pos
		}
		if pos == c.index {
			seen = true
			continue
		}
		if seen {
			c.match = pos
			c.index = pos
			return true
		}
	}
	if first < 0 {
		c.match = -1
		return false
	}
	c.match = first
	c.index = first
	return true
}

// Prev selects the matching entry before the result index, wrapping to the
// last one when the result index is the first match or not a match at all.
func (c *Cursor[K, T]) Prev() bool {
	prev := -1
	for pos, item := range c.items {
		if c.excluded(item) || !c.matches(item) {
			continue
		}
		if pos == c.index && prev >= 0 {
			break
		}
		prev = pos
	}
	if prev < 0 {
		c.match = -1
		return false
	}
	c.match = prev
	c.index = prev
	return true
}

// Reconcile keeps the selection when it still refers to a selectable
// matching entry and recomputes it otherwise.
func (c *Cursor[K, T]) Reconcile() bool {
	if c.Valid() {
		c.index = c.match
		return true
	}
	return c.Recompute()
}

// Visible returns the selectable matching entries in snapshot order. When
// something is selected, the entry at the result index is flagged.
func (c *Cursor[K, T]) Visible() []Entry[T] {
	out := make([]Entry[T], 0, len(c.items))
	for pos, item := range c.items {
		if c.excluded(item) || !c.matches(item) {
			continue
		}
		out = append(out, Entry[T]{Pos: pos, Item: item, Selected: c.match >= 0 && pos == c.index})
	}
	return out
}
