package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Raw is a form value as typed by the user. It decodes from JSON strings and
// JSON numbers alike.
type Raw string

// UnmarshalJSON accepts "1.5", 1.5 and null
func (r *Raw) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Raw(s)
		return nil
	}
	*r = Raw(data)
	return nil
}

// Parser converts raw form values to numbers.
//
// In lenient mode (the zero value) a value that does not parse is replaced by
// the field's default, which is how the form has always behaved. In strict
// mode the default is still returned but every failure is recorded, and Err
// reports them together.
type Parser struct {
	Strict bool
	errs   []error
}

// Float parses a floating point field. Blank values take the default
// without counting as an error.
func (p *Parser) Float(field string, raw Raw, def float64) float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(field, s)
		return def
	}
	return v
}

// Int parses an integer field. Whole-valued decimals such as "2.0" are accepted.
func (p *Parser) Int(field string, raw Raw, def int) int {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		p.fail(field, s)
		return def
	}
	return int(v)
}

// OptionalFloat parses a field that may be left blank
func (p *Parser) OptionalFloat(field string, raw Raw) *float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(field, s)
		return nil
	}
	return &v
}

// Err returns the recorded parse failures in strict mode, nil otherwise
func (p *Parser) Err() error {
	if !p.Strict || len(p.errs) == 0 {
		return nil
	}
	return errors.Join(p.errs...)
}

func (p *Parser) fail(field, value string) {
	if p.Strict {
		p.errs = append(p.errs, &ValidationError{Field: field, Msg: fmt.Sprintf("not a number: %q", value)})
	}
}
