package state

// Input holds the query text and the edit cursor. The cursor is a rune
// offset and always stays within [0, Len()].
type Input struct {
	runes  []rune
	cursor int
}

// Text returns the current query.
func (in *Input) Text() string {
	return string(in.runes)
}

// Len returns the query length in runes.
func (in *Input) Len() int {
	return len(in.runes)
}

// Empty reports whether the query is empty.
func (in *Input) Empty() bool {
	return len(in.runes) == 0
}

// Cursor returns the edit cursor position.
func (in *Input) Cursor() int {
	return in.cursor
}

// Insert places r at the cursor and advances the cursor. The return value
// tells callers whether to re-run filtering: an insert at the very front of a
// non-empty query still edits the text but reports false.
func (in *Input) Insert(r rune) bool {
	switch {
	case len(in.runes) == 0:
		in.runes = append(in.runes, r)
		in.cursor = 1
		return true
	case in.cursor > 0 && in.cursor <= len(in.runes):
		in.runes = append(in.runes, 0)
		copy(in.runes[in.cursor+1:], in.runes[in.cursor:])
		in.runes[in.cursor] = r
		in.cursor++
		return true
	default:
		in.runes = append([]rune{r}, in.runes...)
		in.cursor = 1
		return false
	}
}

// Delete removes the rune before the cursor (backspace). With the cursor at
// the front of a non-empty query the first rune is removed and false is
// returned, mirroring Insert.
func (in *Input) Delete() bool {
	switch {
	case len(in.runes) == 0:
		return false
	case in.cursor > 0 && in.cursor <= len(in.runes):
		in.runes = append(in.runes[:in.cursor-1], in.runes[in.cursor:]...)
		in.cursor--
		return true
	default:
		in.runes = in.runes[1:]
		in.cursor = 0
		return false
	}
}

// MoveLeft moves the cursor one rune towards the front.
func (in *Input) MoveLeft() bool {
	if in.cursor <= 0 {
		in.cursor = 0
		return false
	}
	in.cursor--
	return true
}

// MoveRight moves the cursor one rune towards the end.
func (in *Input) MoveRight() bool {
	if in.cursor >= len(in.runes) {
		in.cursor = len(in.runes)
		return false
	}
	in.cursor++
	return true
}

// Reset clears the query and returns the cursor to the front.
func (in *Input) Reset() {
	in.runes = nil
	in.cursor = 0
}
