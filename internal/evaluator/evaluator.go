// Package evaluator checks stored connections against their load cases.
package evaluator

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/alexiusacademia/gobolt/internal/aisc"
	"github.com/alexiusacademia/gobolt/internal/capacity"
	"github.com/alexiusacademia/gobolt/internal/loads"
	"github.com/alexiusacademia/gobolt/internal/model"
	"github.com/alexiusacademia/gobolt/internal/store"
)

// Resolver looks up a connection together with the entities it references.
// *store.Store implements it.
type Resolver interface {
	Resolve(connectionID string) (store.Resolution, bool)
}

// Lister additionally enumerates connections, for EvaluateAll
type Lister interface {
	Resolver
	ConnectionIDs() []string
}

// Config holds the design constants of an evaluation
type Config struct {
	BoltFu                 float64 // ksi
	ShearSafetyFactor      float64 // Ω for bolt shear and tension
	BearingSafetyFactor    float64 // γb
	BlockShearSafetyFactor float64 // Ω for block shear
	Ubs                    float64
	Eccentricity           float64 // in
	DemandMode             loads.Mode
}

// Defaults returns the standard design constants
func Defaults() Config {
	return Config{
		BoltFu:                 aisc.BoltFu,
		ShearSafetyFactor:      aisc.ShearSafetyFactor,
		BearingSafetyFactor:    aisc.BearingSafetyFactor,
		BlockShearSafetyFactor: aisc.BlockShearSafetyFactor,
		Ubs:                    aisc.UbsUniform,
		Eccentricity:           aisc.DefaultEccentricity,
		DemandMode:             loads.ModeResultant,
	}
}

// State is the evaluation state of a connection
type State string

const (
	Unevaluated State = "UNEVALUATED"
	Evaluated   State = "EVALUATED"
)

// Evaluator evaluates connections and remembers the latest result of each
type Evaluator struct {
	resolver Resolver
	cfg      Config
	logger   *slog.Logger

	mu      sync.Mutex
	results map[string]*Result
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithLogger sets the logger used for evaluation events
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an evaluator over the given resolver. Zero fields of cfg take
// their default values.
func New(resolver Resolver, cfg Config, opts ...Option) *Evaluator {
	e := &Evaluator{
		resolver: resolver,
		cfg:      cfg.withDefaults(),
		logger:   slog.Default(),
		results:  make(map[string]*Result),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective design constants
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Evaluate checks one connection. Resolution failures are returned as
// *EvaluationError; an inadequate connection is a successful evaluation with
// an UNSAFE verdict.
func (e *Evaluator) Evaluate(connectionID string) (*Result, error) {
	res, ok := e.resolver.Resolve(connectionID)
	if !ok {
		return nil, e.fail(&EvaluationError{Code: CodeConnectionNotFound, ConnectionID: connectionID})
	}
	conn := res.Connection
	if !res.BoltConfigurationFound {
		return nil, e.fail(&EvaluationError{Code: CodeUnresolvedBoltConfiguration, ConnectionID: conn.ID, Reference: conn.BoltConfigurationID})
	}
	if !res.GlobalLoadsFound {
		return nil, e.fail(&EvaluationError{Code: CodeUnresolvedGlobalLoads, ConnectionID: conn.ID, Reference: conn.GlobalLoadsID})
	}

	r := e.compute(conn, res.BoltConfiguration, res.GlobalLoads)

	e.mu.Lock()
	e.results[conn.ID] = r
	e.mu.Unlock()

	e.logger.Info("connection evaluated",
		"connection", conn.ID,
		"governing", r.Governing,
		"capacity", r.GoverningCapacity,
		"demand", r.Demand,
		"ratio", r.Ratio,
		"verdict", r.Verdict,
	)
	return r.clone(), nil
}

// Outcome is the result or the failure of evaluating one connection
type Outcome struct {
	ConnectionID string
	Result       *Result
	Err          error
}

// EvaluateAll evaluates every connection of the lister in insertion order
func (e *Evaluator) EvaluateAll(l Lister) []Outcome {
	ids := l.ConnectionIDs()
	out := make([]Outcome, 0, len(ids))
	for _, id := range ids {
		r, err := e.Evaluate(id)
		out = append(out, Outcome{ConnectionID: id, Result: r, Err: err})
	}
	return out
}

// Status reports whether a connection has a current result. A failed
// evaluation discards the previous result.
func (e *Evaluator) Status(connectionID string) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.results[connectionID]; ok {
		return Evaluated
	}
	return Unevaluated
}

// Result returns the latest result of a connection
func (e *Evaluator) Result(connectionID string) (*Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.results[connectionID]
	if !ok {
		return nil, false
	}
	return r.clone(), true
}

func (e *Evaluator) compute(conn model.Connection, bolts model.BoltConfiguration, lc model.GlobalLoads) *Result {
	cfg := e.cfg
	r := &Result{
		Connection:        conn,
		BoltConfiguration: bolts,
		GlobalLoads:       lc,
		NBolts:            bolts.BoltCount(),
		BoltArea:          capacity.BoltArea(bolts.Diameter),
		BoltFu:            cfg.BoltFu,
		Ply:               connectedPly(conn),
		DemandMode:        string(cfg.DemandMode),
	}

	// Bolt group
	r.BoltShear = capacity.BoltShear(r.NBolts, bolts.Diameter, cfg.BoltFu, cfg.ShearSafetyFactor)
	r.BoltTensile = capacity.BoltTensile(r.NBolts, r.BoltArea, cfg.BoltFu, cfg.ShearSafetyFactor)

	// Ply
	steel := r.Ply.Material
	r.Areas = bolts.Geometry().Areas(r.Ply.Thickness, bolts.Diameter)
	if conn.OverrideAg != nil {
		r.Areas.Agv = *conn.OverrideAg
	}
	r.BlockShearNominal = capacity.BlockShear(steel.Fu, steel.Fy, r.Areas.Anv, r.Areas.Ant, r.Areas.Agv, cfg.Ubs)
	r.BlockShear = r.BlockShearNominal / cfg.BlockShearSafetyFactor
	r.BearingPerBolt = capacity.Bearing(bolts.Diameter, r.Ply.Thickness, steel.Fu, cfg.BearingSafetyFactor)
	r.Bearing = float64(r.NBolts) * r.BearingPerBolt

	// Check
	r.Demand = loads.Demand(cfg.DemandMode, lc.Vector(), lc.DirectLoad, cfg.Eccentricity)
	r.Governing, r.GoverningCapacity = governing(r.BoltShear, r.BlockShear, r.Bearing)
	r.Ratio = utilization(r.Demand, r.GoverningCapacity)

	if r.Ratio <= 1.0 {
		r.Verdict = Safe
		r.Message = fmt.Sprintf("%s governs: demand %.2f kip ≤ capacity %.2f kip", r.Governing.Label(), r.Demand, r.GoverningCapacity)
	} else {
		r.Verdict = Unsafe
		if math.IsInf(r.Ratio, 1) {
			r.Message = fmt.Sprintf("%s capacity is zero; the connection cannot carry %.2f kip", r.Governing.Label(), r.Demand)
		} else {
			r.Message = fmt.Sprintf("%s governs: demand %.2f kip > capacity %.2f kip", r.Governing.Label(), r.Demand, r.GoverningCapacity)
		}
	}
	return r
}

func (e *Evaluator) fail(err *EvaluationError) error {
	e.mu.Lock()
	delete(e.results, err.ConnectionID)
	e.mu.Unlock()

	e.logger.Warn("connection cannot be evaluated", "connection", err.ConnectionID, "code", err.Code, "reference", err.Reference)
	return err
}

// connectedPly selects the thinner of the two connected elements. Members
// whose thickness is unknown are skipped; a tie goes to member A.
func connectedPly(conn model.Connection) Ply {
	ply := Ply{Material: conn.MemberA.Steel()}

	if t, ok := conn.MemberA.Thickness(conn.ComponentA); ok {
		ply = Ply{Member: "A", MemberID: conn.MemberA.ID, Component: conn.ComponentA, Thickness: t, Material: conn.MemberA.Steel()}
	}
	if t, ok := conn.MemberB.Thickness(conn.ComponentB); ok && (ply.Member == "" || t < ply.Thickness) {
		ply = Ply{Member: "B", MemberID: conn.MemberB.ID, Component: conn.ComponentB, Thickness: t, Material: conn.MemberB.Steel()}
	}
	return ply
}

func (c Config) withDefaults() Config {
	d := Defaults()
	if c.BoltFu <= 0 {
		c.BoltFu = d.BoltFu
	}
	if c.ShearSafetyFactor <= 0 {
		c.ShearSafetyFactor = d.ShearSafetyFactor
	}
	if c.BearingSafetyFactor <= 0 {
		c.BearingSafetyFactor = d.BearingSafetyFactor
	}
	if c.BlockShearSafetyFactor <= 0 {
		c.BlockShearSafetyFactor = d.BlockShearSafetyFactor
	}
	if c.Ubs <= 0 {
		c.Ubs = d.Ubs
	}
	if c.Eccentricity <= 0 {
		c.Eccentricity = d.Eccentricity
	}
	if c.DemandMode == "" {
		c.DemandMode = d.DemandMode
	}
	return c
}
