package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rshade/mixing-energy/internal/mixing"
)

// paramError reports a missing or malformed query parameter.
type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	if e.value == "" {
		return fmt.Sprintf("missing query parameter %q", e.name)
	}
	return fmt.Sprintf("invalid value %q for query parameter %q", e.value, e.name)
}

func floatParam(q url.Values, name string, def *float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		if def != nil {
			return *def, nil
		}
		return 0, &paramError{name: name}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &paramError{name: name, value: raw}
	}
	return v, nil
}

func ptr[T any](v T) *T {
	return &v
}

func (s *Server) handleSeparation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x1, err := floatParam(q, "fraction", nil)
	if err != nil {
		s.writeError(w, "separation", err)
		return
	}
	t, err := floatParam(q, "temperature", ptr(mixing.AmbientTemperature))
	if err != nil {
		s.writeError(w, "separation", err)
		return
	}

	res, err := s.calc.Evaluate(x1, t)
	if err != nil {
		s.writeError(w, "separation", err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

type sweepResponse struct {
	Temperature float64        `json:"temperature_k"`
	Spacing     string         `json:"spacing"`
	Points      []mixing.Point `json:"points"`
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		sc  mixing.SweepConfig
		t   float64
		err error
	)
	if sc.Min, err = floatParam(q, "min", ptr(1e-4)); err != nil {
		s.writeError(w, "sweep", err)
		return
	}
	if sc.Max, err = floatParam(q, "max", ptr(1.0)); err != nil {
		s.writeError(w, "sweep", err)
		return
	}
	if t, err = floatParam(q, "temperature", ptr(mixing.AmbientTemperature)); err != nil {
		s.writeError(w, "sweep", err)
		return
	}
	points := 50
	if raw := q.Get("points"); raw != "" {
		if points, err = strconv.Atoi(raw); err != nil || points > MaxSweepPoints {
			s.writeError(w, "sweep", &paramError{name: "points", value: raw})
			return
		}
	}
	sc.Points = points
	if sc.Spacing, err = mixing.ParseSpacing(q.Get("spacing")); err != nil {
		s.writeError(w, "sweep", err)
		return
	}

	pts, err := mixing.Collect(s.calc.Sweep(sc, t))
	if err != nil {
		s.writeError(w, "sweep", err)
		return
	}
	s.writeJSON(w, http.StatusOK, sweepResponse{Temperature: t, Spacing: sc.Spacing.String(), Points: pts})
}

type convertResponse struct {
	Value  float64 `json:"value"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v, err := floatParam(q, "value", nil)
	if err != nil {
		s.writeError(w, "convert", err)
		return
	}
	from, to := q.Get("from"), q.Get("to")

	res, err := s.calc.Convert(v, from, to)
	if err != nil {
		s.writeError(w, "convert", err)
		return
	}
	s.writeJSON(w, http.StatusOK, convertResponse{Value: v, From: from, To: to, Result: res})
}
