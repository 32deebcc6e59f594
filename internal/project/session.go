package project

import (
	"log/slog"

	"github.com/alexiusacademia/gobolt/internal/evaluator"
	"github.com/alexiusacademia/gobolt/internal/report"
	"github.com/alexiusacademia/gobolt/internal/store"
)

// Session is a document applied to its own store, ready for evaluation
type Session struct {
	Document  *Document
	Store     *store.Store
	Index     *Index
	Evaluator *evaluator.Evaluator
}

// SessionOptions control how a session is built
type SessionOptions struct {
	Strict      bool
	IDGenerator store.IDGenerator
	Logger      *slog.Logger
}

// Open applies doc to a new store and attaches an evaluator using cfg
func Open(doc *Document, cfg evaluator.Config, opts SessionOptions) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	storeOpts := []store.Option{store.WithLogger(logger)}
	if opts.IDGenerator != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(opts.IDGenerator))
	}

	s := store.New(storeOpts...)
	ix, err := Apply(doc, s, opts.Strict)
	if err != nil {
		return nil, err
	}
	return &Session{
		Document:  doc,
		Store:     s,
		Index:     ix,
		Evaluator: evaluator.New(s, cfg, evaluator.WithLogger(logger)),
	}, nil
}

// Report evaluates the given connections, by key or identifier, in order.
// With no refs every connection is evaluated and the rejected entries are
// appended as connections that cannot be evaluated.
func (s *Session) Report(refs ...string) report.Report {
	if len(refs) == 0 {
		rep := report.New(s.Document.Name, s.Evaluator.Config(), s.Evaluator.EvaluateAll(s.Store))
		for _, r := range s.Index.Rejected {
			rep.Add(r.Key, nil, r.Err)
		}
		return rep
	}

	rep := report.Report{Title: s.Document.Name, Config: s.Evaluator.Config()}
	for _, ref := range refs {
		if err := s.rejection(ref); err != nil {
			rep.Add(ref, nil, err)
			continue
		}
		id, ok := s.Index.ConnectionID(ref)
		if !ok {
			id = ref
		}
		result, err := s.Evaluator.Evaluate(id)
		rep.Add(id, result, err)
	}
	return rep
}

func (s *Session) rejection(ref string) error {
	for _, r := range s.Index.Rejected {
		if r.Key == ref {
			return r.Err
		}
	}
	return nil
}
