package state

// TabStore holds the latest window snapshot for the popup's session.
type TabStore interface {
	Entries() []Tab
	SetEntries([]Tab)
	Session() string
	SetSession(string)
	At(position int) (Tab, bool)
}

type tabStore struct {
	entries []Tab
	session string
}

func NewTabStore() TabStore {
	return &tabStore{}
}

func (s *tabStore) Entries() []Tab {
	return cloneTabs(s.entries)
}

// SetEntries replaces the snapshot wholesale, renumbering positions so they
// follow the snapshot order.
func (s *tabStore) SetEntries(entries []Tab) {
	s.entries = cloneTabs(entries)
	for i := range s.entries {
		s.entries[i].Position = i
	}
}

func (s *tabStore) Session() string {
	return s.session
}

func (s *tabStore) SetSession(session string) {
	s.session = session
}

func (s *tabStore) At(position int) (Tab, bool) {
	if position < 0 || position >= len(s.entries) {
		return Tab{}, false
	}
	return s.entries[position], true
}

func cloneTabs(entries []Tab) []Tab {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Tab, len(entries))
	copy(dup, entries)
	return dup
}
