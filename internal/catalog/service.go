package catalog

// Service exposes the normalized catalog collections and their queries.
// Collections are recomputed from the backing store on every access, so
// external edits to the content files are visible on the next call; the
// store's optional document cache bounds that staleness when enabled.
type Service struct {
	store *Store
}

// NewService creates a catalog service backed by store
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Store returns the backing store, mainly for persistence in tooling
func (s *Service) Store() *Store {
	return s.store
}
