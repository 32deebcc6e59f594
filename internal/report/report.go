// Package report renders evaluation outcomes as text, JSON, PDF and XLSX.
package report

import (
	"errors"

	"github.com/alexiusacademia/gobolt/internal/evaluator"
	"github.com/alexiusacademia/gobolt/internal/store"
)

// Status of one report entry
const (
	StatusSafe           = "SAFE"
	StatusUnsafe         = "UNSAFE"
	StatusCannotEvaluate = "CANNOT EVALUATE"
)

// Report is a set of evaluated connections with the constants used
type Report struct {
	Title   string
	Config  evaluator.Config
	Entries []Entry
}

// Entry is one connection: either a result or the reason it could not be
// evaluated
type Entry struct {
	ConnectionID string
	Name         string
	Result       *evaluator.Result
	Err          error
}

// Status returns SAFE, UNSAFE or CANNOT EVALUATE
func (e Entry) Status() string {
	if e.Result == nil {
		return StatusCannotEvaluate
	}
	return string(e.Result.Verdict)
}

// ErrorCode returns the code of a store or evaluation error, if any
func (e Entry) ErrorCode() string {
	var ee *evaluator.EvaluationError
	if errors.As(e.Err, &ee) {
		return string(ee.Code)
	}
	var ve *store.ValidationError
	if errors.As(e.Err, &ve) {
		return string(ve.Code)
	}
	if e.Err != nil {
		return "ERROR"
	}
	return ""
}

// New builds a report from evaluator outcomes
func New(title string, cfg evaluator.Config, outcomes []evaluator.Outcome) Report {
	rep := Report{Title: title, Config: cfg}
	for _, o := range outcomes {
		rep.Add(o.ConnectionID, o.Result, o.Err)
	}
	return rep
}

// Add appends an entry. The name is taken from the result when there is one.
func (r *Report) Add(id string, result *evaluator.Result, err error) {
	e := Entry{ConnectionID: id, Result: result, Err: err}
	if result != nil {
		e.Name = result.Connection.Name
	}
	r.Entries = append(r.Entries, e)
}

// Counts returns the number of safe, unsafe and unevaluated entries
func (r Report) Counts() (safe, unsafe, failed int) {
	for _, e := range r.Entries {
		switch e.Status() {
		case StatusSafe:
			safe++
		case StatusUnsafe:
			unsafe++
		default:
			failed++
		}
	}
	return
}
