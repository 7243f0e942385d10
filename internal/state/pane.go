package state

// PaneStore holds the latest pane snapshot for the popup's session.
type PaneStore interface {
	Entries() []Pane
	SetEntries([]Pane)
	Find(id uint32) (Pane, bool)
}

type paneStore struct {
	entries []Pane
}

func NewPaneStore() PaneStore {
	return &paneStore{}
}

func (p *paneStore) Entries() []Pane {
	return clonePanes(p.entries)
}

func (p *paneStore) SetEntries(entries []Pane) {
	p.entries = clonePanes(entries)
}

func (p *paneStore) Find(id uint32) (Pane, bool) {
	for _, entry := range p.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Pane{}, false
}

func clonePanes(entries []Pane) []Pane {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Pane, len(entries))
	copy(dup, entries)
	return dup
}
