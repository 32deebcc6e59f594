package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexiusacademia/gobolt/internal/aisc"
	"github.com/alexiusacademia/gobolt/internal/loads"
	"github.com/alexiusacademia/gobolt/internal/model"
	"github.com/alexiusacademia/gobolt/internal/project"
	"github.com/alexiusacademia/gobolt/internal/report"
	"github.com/alexiusacademia/gobolt/internal/version"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.Version})
}

// handleEvaluate evaluates a project document. Query parameters:
// connection (repeatable key or id), strict=true, demand=direct.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	doc, err := project.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), project.FormatJSON)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	cfg := s.cfg
	if q.Get("demand") == string(loads.ModeDirect) {
		cfg.DemandMode = loads.ModeDirect
	}
	strict, _ := strconv.ParseBool(q.Get("strict"))

	sess, err := project.Open(doc, cfg, project.SessionOptions{
		Strict:      strict,
		IDGenerator: s.ids,
		Logger:      s.logger,
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, sess.Report(q["connection"]...)); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = buf.WriteTo(w)
}

// demandRequest is a load case plus the reduction settings. When components
// are given, the governing ASD combination replaces direct_load.
type demandRequest struct {
	model.GlobalLoadsInput
	Eccentricity *float64          `json:"eccentricity,omitempty"`
	Mode         loads.Mode        `json:"mode,omitempty"`
	Components   *loads.Components `json:"components,omitempty"`
}

type combinationDocument struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Load        float64 `json:"load"`
}

type demandResponse struct {
	Mode         loads.Mode            `json:"mode"`
	Eccentricity float64               `json:"eccentricity"`
	DirectLoad   float64               `json:"direct_load"`
	Demand       float64               `json:"demand"`
	Combinations []combinationDocument `json:"combinations,omitempty"`
	Governing    *combinationDocument  `json:"governing,omitempty"`
}

func (s *Server) handleDemand(w http.ResponseWriter, r *http.Request) {
	var req demandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))
	lc, err := req.Build(strict)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := demandResponse{
		Mode:         loads.ModeResultant,
		Eccentricity: s.cfg.Eccentricity,
		DirectLoad:   lc.DirectLoad,
	}
	switch req.Mode {
	case "", loads.ModeResultant:
	case loads.ModeDirect:
		resp.Mode = loads.ModeDirect
	default:
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("mode: unknown demand mode %q", req.Mode))
		return
	}
	if req.Eccentricity != nil {
		resp.Eccentricity = *req.Eccentricity
	}
	resp.Eccentricity = loads.EffectiveEccentricity(resp.Eccentricity)

	if req.Components != nil {
		for _, c := range loads.ASDCombinations {
			resp.Combinations = append(resp.Combinations, combinationDocument{
				ID:          c.ID,
				Description: c.Description,
				Load:        c.Factored(*req.Components),
			})
		}
		p, gov := loads.Governing(*req.Components, loads.ASDCombinations)
		resp.Governing = &combinationDocument{ID: gov.ID, Description: gov.Description, Load: p}
		resp.DirectLoad = p
	}

	resp.Demand = loads.Demand(resp.Mode, lc.Vector(), resp.DirectLoad, resp.Eccentricity)
	writeJSON(w, http.StatusOK, resp)
}

type sectionDocument struct {
	Name            string  `json:"name"`
	Class           string  `json:"class"`
	Shape           string  `json:"shape"`
	Area            float64 `json:"area"`
	Depth           float64 `json:"depth"`
	WebThickness    float64 `json:"web_thickness"`
	FlangeThickness float64 `json:"flange_thickness"`
}

type materialDocument struct {
	Grade string  `json:"grade"`
	Fy    float64 `json:"fy"`
	Fu    float64 `json:"fu"`
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Sections  []sectionDocument  `json:"sections"`
		Materials []materialDocument `json:"materials"`
	}{}
	for _, sec := range aisc.Sections() {
		resp.Sections = append(resp.Sections, sectionDocument(sec))
	}
	for _, m := range aisc.Materials() {
		resp.Materials = append(resp.Materials, materialDocument{Grade: m.Grade, Fy: m.Fy, Fu: m.Fu})
	}
	writeJSON(w, http.StatusOK, resp)
}
