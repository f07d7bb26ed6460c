package catalog

// Store holds the full item list of a browsing session together with its
// derived facets. The list is replaced wholesale on refresh, never patched.
type Store struct {
	items  []Item
	facets Facets
}

func NewStore(items []Item) *Store {
	s := &Store{}
	s.Replace(items)
	return s
}

func (s *Store) Replace(items []Item) {
	s.items = items
	s.facets = DeriveFacets(items)
}

func (s *Store) Items() []Item {
	return s.items
}

func (s *Store) Facets() Facets {
	return s.facets
}

// View derives the visible subset for the given filter state.
func (s *Store) View(state FilterState) []Item {
	return Filter(s.items, state)
}

func (s *Store) Len() int {
	return len(s.items)
}
