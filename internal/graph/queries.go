// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import "fmt"

// ConnectionsFrom returns the outgoing edge positions of the object with the
// given display name, in insertion order. The name resolves to the first
// matching vertex; an unknown name fails with ErrNotFound. An empty result
// is a success, not a failure.
func (s *Store) ConnectionsFrom(name string) ([]int, error) {
	v, ok := s.vertexByName(name)
	if !ok {
		return nil, fmt.Errorf("object %q: %w", name, ErrNotFound)
	}
	return s.Outgoing(v), nil
}

// ConnectionsTo returns the incoming edge positions of the named object.
// Resolution and failure behavior match ConnectionsFrom.
func (s *Store) ConnectionsTo(name string) ([]int, error) {
	v, ok := s.vertexByName(name)
	if !ok {
		return nil, fmt.Errorf("object %q: %w", name, ErrNotFound)
	}
	return s.Incoming(v), nil
}

// PapersFor returns the citation keys backing any edge incident to the named
// object, outgoing first then incoming, deduplicated by first occurrence.
// An unknown name fails with ErrNotFound; a known object with no incident
// edges fails with ErrNoEvidence, never an empty success.
func (s *Store) PapersFor(name string) ([]string, error) {
	v, ok := s.vertexByName(name)
	if !ok {
		return nil, fmt.Errorf("object %q: %w", name, ErrNotFound)
	}

	incident := make([]int, 0, len(s.out[v])+len(s.in[v]))
	incident = append(incident, s.out[v]...)
	incident = append(incident, s.in[v]...)
	if len(incident) == 0 {
		return nil, fmt.Errorf("object %q: %w", name, ErrNoEvidence)
	}

	seen := make(map[string]bool, len(incident))
	var keys []string
	for _, e := range incident {
		key := s.edges[e].CitationKey
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys, nil
}
