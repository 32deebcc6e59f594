package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/alexiusacademia/gobolt/internal/evaluator"
	"github.com/alexiusacademia/gobolt/internal/model"
)

// Document is the JSON form of a report. Numbers are rounded to six
// decimals; an infinite ratio is written as null with ratio_infinite set.
type Document struct {
	Title       string          `json:"title,omitempty"`
	Settings    Settings        `json:"settings"`
	Connections []EntryDocument `json:"connections"`
	Summary     Summary         `json:"summary"`
}

// Settings are the design constants of the evaluation
type Settings struct {
	BoltFu                 float64 `json:"bolt_fu"`
	ShearSafetyFactor      float64 `json:"shear_safety_factor"`
	BearingSafetyFactor    float64 `json:"bearing_safety_factor"`
	BlockShearSafetyFactor float64 `json:"block_shear_safety_factor"`
	Ubs                    float64 `json:"ubs"`
	Eccentricity           float64 `json:"eccentricity"`
	DemandMode             string  `json:"demand_mode"`
}

// Summary counts entries by status
type Summary struct {
	Safe           int `json:"safe"`
	Unsafe         int `json:"unsafe"`
	CannotEvaluate int `json:"cannot_evaluate"`
}

// EntryDocument is one connection in the JSON report
type EntryDocument struct {
	ID     string          `json:"id"`
	Name   string          `json:"name,omitempty"`
	Status string          `json:"status"`
	Error  *ErrorDocument  `json:"error,omitempty"`
	Result *ResultDocument `json:"result,omitempty"`
}

// ErrorDocument describes why a connection could not be evaluated
type ErrorDocument struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultDocument is the JSON form of an evaluation result
type ResultDocument struct {
	MemberA           MemberDocument     `json:"member_a"`
	MemberB           MemberDocument     `json:"member_b"`
	BoltConfiguration string             `json:"bolt_configuration"`
	GlobalLoads       string             `json:"global_loads"`
	Bolts             BoltsDocument      `json:"bolts"`
	Ply               PlyDocument        `json:"ply"`
	Areas             AreasDocument      `json:"areas"`
	Capacities        CapacitiesDocument `json:"capacities"`
	Demand            float64            `json:"demand"`
	DemandMode        string             `json:"demand_mode"`
	Governing         string             `json:"governing"`
	GoverningCapacity float64            `json:"governing_capacity"`
	Ratio             *float64           `json:"ratio"`
	RatioInfinite     bool               `json:"ratio_infinite"`
	Verdict           string             `json:"verdict"`
	Message           string             `json:"message"`
}

// MemberDocument identifies a connected member
type MemberDocument struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Component string `json:"component"`
}

// BoltsDocument describes the bolt group
type BoltsDocument struct {
	Rows     int     `json:"rows"`
	Columns  int     `json:"columns"`
	Count    int     `json:"count"`
	Diameter float64 `json:"diameter"`
	Grade    string  `json:"grade"`
	Area     float64 `json:"area"`
	Fu       float64 `json:"fu"`
}

// PlyDocument describes the connected ply
type PlyDocument struct {
	Member    string  `json:"member,omitempty"`
	Component string  `json:"component,omitempty"`
	Thickness float64 `json:"thickness"`
	Material  string  `json:"material"`
	Fy        float64 `json:"fy"`
	Fu        float64 `json:"fu"`
}

// AreasDocument holds the block shear areas
type AreasDocument struct {
	Agv float64 `json:"agv"`
	Anv float64 `json:"anv"`
	Ant float64 `json:"ant"`
}

// CapacitiesDocument holds every capacity in kip
type CapacitiesDocument struct {
	BoltShear         float64 `json:"bolt_shear"`
	BoltTensile       float64 `json:"bolt_tensile"`
	BlockShearNominal float64 `json:"block_shear_nominal"`
	BlockShear        float64 `json:"block_shear"`
	BearingPerBolt    float64 `json:"bearing_per_bolt"`
	Bearing           float64 `json:"bearing"`
}

// ToDocument converts a report to its JSON form
func ToDocument(rep Report) Document {
	cfg := rep.Config
	doc := Document{
		Title: rep.Title,
		Settings: Settings{
			BoltFu:                 cfg.BoltFu,
			ShearSafetyFactor:      cfg.ShearSafetyFactor,
			BearingSafetyFactor:    cfg.BearingSafetyFactor,
			BlockShearSafetyFactor: cfg.BlockShearSafetyFactor,
			Ubs:                    cfg.Ubs,
			Eccentricity:           cfg.Eccentricity,
			DemandMode:             string(cfg.DemandMode),
		},
		Connections: make([]EntryDocument, 0, len(rep.Entries)),
	}
	doc.Summary.Safe, doc.Summary.Unsafe, doc.Summary.CannotEvaluate = rep.Counts()

	for _, e := range rep.Entries {
		ed := EntryDocument{ID: e.ConnectionID, Name: e.Name, Status: e.Status()}
		if e.Result == nil {
			ed.Status = "CANNOT_EVALUATE"
			if e.Err != nil {
				ed.Error = &ErrorDocument{Code: e.ErrorCode(), Message: e.Err.Error()}
			}
		} else {
			ed.Result = toResultDocument(e.Result)
		}
		doc.Connections = append(doc.Connections, ed)
	}
	return doc
}

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(ToDocument(rep))
}

func toResultDocument(r *evaluator.Result) *ResultDocument {
	c, b := r.Connection, r.BoltConfiguration
	d := &ResultDocument{
		MemberA:           memberDocument(c.MemberA, c.ComponentA),
		MemberB:           memberDocument(c.MemberB, c.ComponentB),
		BoltConfiguration: b.ID,
		GlobalLoads:       r.GlobalLoads.ID,
		Bolts: BoltsDocument{
			Rows:     b.Rows,
			Columns:  b.Columns,
			Count:    r.NBolts,
			Diameter: round(b.Diameter),
			Grade:    string(b.Grade),
			Area:     round(r.BoltArea),
			Fu:       round(r.BoltFu),
		},
		Ply: PlyDocument{
			Member:    r.Ply.Member,
			Component: string(r.Ply.Component),
			Thickness: round(r.Ply.Thickness),
			Material:  r.Ply.Material.Grade,
			Fy:        round(r.Ply.Material.Fy),
			Fu:        round(r.Ply.Material.Fu),
		},
		Areas: AreasDocument{
			Agv: round(r.Areas.Agv),
			Anv: round(r.Areas.Anv),
			Ant: round(r.Areas.Ant),
		},
		Capacities: CapacitiesDocument{
			BoltShear:         round(r.BoltShear),
			BoltTensile:       round(r.BoltTensile),
			BlockShearNominal: round(r.BlockShearNominal),
			BlockShear:        round(r.BlockShear),
			BearingPerBolt:    round(r.BearingPerBolt),
			Bearing:           round(r.Bearing),
		},
		Demand:            round(r.Demand),
		DemandMode:        r.DemandMode,
		Governing:         string(r.Governing),
		GoverningCapacity: round(r.GoverningCapacity),
		RatioInfinite:     r.RatioInfinite(),
		Verdict:           string(r.Verdict),
		Message:           r.Message,
	}
	if !d.RatioInfinite {
		ratio := round(r.Ratio)
		d.Ratio = &ratio
	}
	return d
}

func memberDocument(m model.Member, c model.Component) MemberDocument {
	return MemberDocument{ID: m.ID, Name: m.Name, Kind: string(m.Kind()), Component: string(c)}
}

func round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*1e6) / 1e6
}
