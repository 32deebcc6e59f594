package project

import (
	"fmt"

	"github.com/alexiusacademia/gobolt/internal/store"
)

// Index maps document keys to the identifiers assigned by the store
type Index struct {
	Members            map[string]string
	BoltConfigurations map[string]string
	GlobalLoads        map[string]string
	Connections        map[string]string

	// ConnectionIDs lists the created connections in document order
	ConnectionIDs []string
	// Rejected lists connections the store refused to create
	Rejected []Rejection
}

// Rejection is a connection entry whose references did not resolve. Key is
// the entry's key, or #N for an unkeyed entry.
type Rejection struct {
	Key string
	Err error
}

// ConnectionID resolves a connection key or store identifier
func (ix *Index) ConnectionID(ref string) (string, bool) {
	if id, ok := ix.Connections[ref]; ok {
		return id, true
	}
	for _, id := range ix.ConnectionIDs {
		if id == ref {
			return id, true
		}
	}
	return "", false
}

// Apply builds every entity of the document and adds it to s. Malformed
// members, bolt configurations and load cases abort the load. Connections
// whose references do not resolve are recorded in Index.Rejected and the
// rest of the document is still applied.
//
// With strict set, numeric fields that do not parse are errors instead of
// falling back to their defaults.
func Apply(doc *Document, s *store.Store, strict bool) (*Index, error) {
	ix := &Index{
		Members:            make(map[string]string),
		BoltConfigurations: make(map[string]string),
		GlobalLoads:        make(map[string]string),
		Connections:        make(map[string]string),
	}

	for i, e := range doc.Members {
		m, err := e.Build(strict)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", label(e.Key, i), err)
		}
		remember(ix.Members, e.Key, s.AddMember(m))
	}
	for i, e := range doc.BoltConfigurations {
		b, err := e.Build(strict)
		if err != nil {
			return nil, fmt.Errorf("bolt configuration %s: %w", label(e.Key, i), err)
		}
		remember(ix.BoltConfigurations, e.Key, s.AddBoltConfiguration(b))
	}
	for i, e := range doc.GlobalLoads {
		l, err := e.Build(strict)
		if err != nil {
			return nil, fmt.Errorf("global loads %s: %w", label(e.Key, i), err)
		}
		remember(ix.GlobalLoads, e.Key, s.AddGlobalLoads(l))
	}

	for i, e := range doc.Connections {
		spec, err := e.Build(strict)
		if err != nil {
			return nil, fmt.Errorf("connection %s: %w", label(e.Key, i), err)
		}
		spec.MemberAID = lookup(ix.Members, spec.MemberAID)
		spec.MemberBID = lookup(ix.Members, spec.MemberBID)
		spec.BoltConfigurationID = lookup(ix.BoltConfigurations, spec.BoltConfigurationID)
		spec.GlobalLoadsID = lookup(ix.GlobalLoads, spec.GlobalLoadsID)

		id, err := s.AddConnection(spec)
		if err != nil {
			ix.Rejected = append(ix.Rejected, Rejection{Key: ref(e.Key, i), Err: err})
			continue
		}
		remember(ix.Connections, e.Key, id)
		ix.ConnectionIDs = append(ix.ConnectionIDs, id)
	}
	return ix, nil
}

func remember(m map[string]string, key, id string) {
	if key != "" {
		m[key] = id
	}
}

// lookup maps a key to its identifier; anything else is passed through so
// that store identifiers can be used directly
func lookup(m map[string]string, ref string) string {
	if id, ok := m[ref]; ok {
		return id
	}
	return ref
}

func label(key string, i int) string {
	if key == "" {
		return ref(key, i)
	}
	return fmt.Sprintf("%q", key)
}

func ref(key string, i int) string {
	if key == "" {
		return fmt.Sprintf("#%d", i+1)
	}
	return key
}
