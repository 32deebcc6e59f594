// Package store holds the entities of a connection model in memory.
//
// The store exclusively owns its four collections. Every mutation and every
// resolution goes through one mutex, so a store may be shared by goroutines,
// but there is no ordering guarantee between concurrent calls beyond that.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexiusacademia/gobolt/internal/model"
)

// Store provides the member, bolt configuration, load case and connection
// collections of one model.
type Store struct {
	mu     sync.Mutex
	ids    IDGenerator
	seq    map[Kind]int
	logger *slog.Logger

	members     collection[model.Member]
	bolts       collection[model.BoltConfiguration]
	loads       collection[model.GlobalLoads]
	connections collection[model.Connection]
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the default sequential identifiers
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithLogger sets the logger used for store events
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		ids:         SequentialIDs{},
		seq:         make(map[Kind]int),
		logger:      slog.Default(),
		members:     newCollection[model.Member](),
		bolts:       newCollection[model.BoltConfiguration](),
		loads:       newCollection[model.GlobalLoads](),
		connections: newCollection[model.Connection](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddMember stores a member under a fresh identifier and returns it.
// An unnamed member gets a default name.
func (s *Store) AddMember(m model.Member) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.next(KindMember)
	m.ID = s.ids.Generate(KindMember, seq)
	if m.Name == "" {
		m.Name = m.DefaultName(seq)
	}
	s.members.put(m.ID, m)
	s.logger.Debug("member added", "id", m.ID, "kind", m.Kind(), "name", m.Name)
	return m.ID
}

// AddBoltConfiguration stores a bolt configuration and returns its identifier
func (s *Store) AddBoltConfiguration(b model.BoltConfiguration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.next(KindBoltConfiguration)
	b.ID = s.ids.Generate(KindBoltConfiguration, seq)
	if b.Name == "" {
		b.Name = fmt.Sprintf("Bolt Config %d", seq)
	}
	s.bolts.put(b.ID, b)
	s.logger.Debug("bolt configuration added", "id", b.ID, "bolts", b.BoltCount())
	return b.ID
}

// AddGlobalLoads stores a load case and returns its identifier
func (s *Store) AddGlobalLoads(l model.GlobalLoads) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.next(KindGlobalLoads)
	l.ID = s.ids.Generate(KindGlobalLoads, seq)
	if l.Name == "" {
		l.Name = fmt.Sprintf("Global Loads %d", seq)
	}
	s.loads.put(l.ID, l)
	s.logger.Debug("global loads added", "id", l.ID)
	return l.ID
}

// CreateConnection resolves the references of spec and stores a new
// connection. Members A and B are copied into the connection; the bolt
// configuration and load case are kept by identifier.
//
// References are checked in the order member A, member B, bolt
// configuration, load case; the first that does not resolve is returned as
// a *ValidationError and nothing is stored.
func (s *Store) CreateConnection(spec model.ConnectionSpec) (model.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	memberA, ok := s.members.get(spec.MemberAID)
	if !ok {
		return model.Connection{}, s.reject(&ValidationError{Code: CodeMissingMemberA, ID: spec.MemberAID})
	}
	memberB, ok := s.members.get(spec.MemberBID)
	if !ok {
		return model.Connection{}, s.reject(&ValidationError{Code: CodeMissingMemberB, ID: spec.MemberBID})
	}
	if _, ok := s.bolts.get(spec.BoltConfigurationID); !ok {
		return model.Connection{}, s.reject(&ValidationError{Code: CodeMissingBoltConfiguration, ID: spec.BoltConfigurationID})
	}
	if _, ok := s.loads.get(spec.GlobalLoadsID); !ok {
		return model.Connection{}, s.reject(&ValidationError{Code: CodeMissingGlobalLoads, ID: spec.GlobalLoadsID})
	}

	seq := s.next(KindConnection)
	c := model.Connection{
		ID:                  s.ids.Generate(KindConnection, seq),
		Name:                spec.Name,
		MemberA:             memberA,
		MemberB:             memberB,
		ComponentA:          spec.ComponentA,
		ComponentB:          spec.ComponentB,
		ConnectionType:      spec.ConnectionType,
		BoltConfigurationID: spec.BoltConfigurationID,
		GlobalLoadsID:       spec.GlobalLoadsID,
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("Connection %d", seq)
	}
	if c.ComponentA == "" {
		c.ComponentA = model.ComponentTotal
	}
	if c.ComponentB == "" {
		c.ComponentB = model.ComponentTotal
	}
	if c.ConnectionType == "" {
		c.ConnectionType = model.ConnectionTypeBolted
	}
	if spec.OverrideAg != nil {
		ag := *spec.OverrideAg
		c.OverrideAg = &ag
	}

	s.connections.put(c.ID, c)
	s.logger.Debug("connection added", "id", c.ID, "member_a", memberA.ID, "member_b", memberB.ID)
	return c.Clone(), nil
}

// AddConnection is CreateConnection returning only the new identifier
func (s *Store) AddConnection(spec model.ConnectionSpec) (string, error) {
	c, err := s.CreateConnection(spec)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

// Remove deletes the entity of the given kind if present. Removing an
// unknown identifier is a no-op. Nothing cascades: connections keep their
// member snapshots and dangling bolt/load references.
func (s *Store) Remove(kind Kind, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	switch kind {
	case KindMember:
		removed = s.members.remove(id)
	case KindBoltConfiguration:
		removed = s.bolts.remove(id)
	case KindGlobalLoads:
		removed = s.loads.remove(id)
	case KindConnection:
		removed = s.connections.remove(id)
	}
	if removed {
		s.logger.Debug("entity removed", "kind", kind, "id", id)
	}
}

// RemoveMember deletes a member if present
func (s *Store) RemoveMember(id string) { s.Remove(KindMember, id) }

// RemoveBoltConfiguration deletes a bolt configuration if present
func (s *Store) RemoveBoltConfiguration(id string) { s.Remove(KindBoltConfiguration, id) }

// RemoveGlobalLoads deletes a load case if present
func (s *Store) RemoveGlobalLoads(id string) { s.Remove(KindGlobalLoads, id) }

// RemoveConnection deletes a connection if present
func (s *Store) RemoveConnection(id string) { s.Remove(KindConnection, id) }

// Member returns a stored member
func (s *Store) Member(id string) (model.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members.get(id)
}

// BoltConfiguration returns a stored bolt configuration
func (s *Store) BoltConfiguration(id string) (model.BoltConfiguration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bolts.get(id)
}

// GlobalLoads returns a stored load case
func (s *Store) GlobalLoads(id string) (model.GlobalLoads, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads.get(id)
}

// Connection returns a stored connection
func (s *Store) Connection(id string) (model.Connection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.connections.get(id)
	return c.Clone(), ok
}

// Members lists members in insertion order
func (s *Store) Members() []model.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members.list()
}

// BoltConfigurations lists bolt configurations in insertion order
func (s *Store) BoltConfigurations() []model.BoltConfiguration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bolts.list()
}

// AllGlobalLoads lists load cases in insertion order
func (s *Store) AllGlobalLoads() []model.GlobalLoads {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads.list()
}

// Connections lists connections in insertion order
func (s *Store) Connections() []model.Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.connections.list()
	for i := range list {
		list[i] = list[i].Clone()
	}
	return list
}

// ConnectionIDs lists connection identifiers in insertion order
func (s *Store) ConnectionIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.connections.order...)
}

// Resolution is a connection together with the entities it references, as
// they existed at one instant
type Resolution struct {
	Connection             model.Connection
	BoltConfiguration      model.BoltConfiguration
	BoltConfigurationFound bool
	GlobalLoads            model.GlobalLoads
	GlobalLoadsFound       bool
}

// Resolve looks up a connection and its bolt configuration and load case
// under a single lock. The second result is false when the connection does
// not exist.
func (s *Store) Resolve(connectionID string) (Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.connections.get(connectionID)
	if !ok {
		return Resolution{}, false
	}
	r := Resolution{Connection: c.Clone()}
	r.BoltConfiguration, r.BoltConfigurationFound = s.bolts.get(c.BoltConfigurationID)
	r.GlobalLoads, r.GlobalLoadsFound = s.loads.get(c.GlobalLoadsID)
	return r, true
}

func (s *Store) next(kind Kind) int {
	s.seq[kind]++
	return s.seq[kind]
}

func (s *Store) reject(err *ValidationError) error {
	s.logger.Debug("connection rejected", "code", err.Code, "id", err.ID)
	return err
}
