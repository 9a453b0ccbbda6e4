package kstar

import (
	"encoding/json"
	"fmt"
	"os"
)

// planRecord is the on-disk shape of a Plan, grounded on original_source's
// plan_reconstructor dump_dot_plan/JSON dumping: cost, the action names in
// order, and the visited state ids, one JSON object per line.
type planRecord struct {
	Index   int      `json:"index"`
	Cost    int64    `json:"cost"`
	Actions []string `json:"actions"`
	States  []int64  `json:"states"`
}

// JSONFileSink is the default PlanSink: it appends one JSON object per
// emitted plan to an underlying file, in the newline-delimited JSON shape
// original_source uses for its own plan dumps.
type JSONFileSink struct {
	f   *os.File
	enc *json.Encoder
}

// NewJSONFileSink opens (creating or truncating) path for newline-delimited
// JSON plan output.
func NewJSONFileSink(path string) (*JSONFileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("kstar: opening plan dump %q: %w", path, err)
	}
	return &JSONFileSink{f: f, enc: json.NewEncoder(f)}, nil
}

// OnPlan writes one plan as a JSON line.
func (s *JSONFileSink) OnPlan(p Plan) error {
	rec := planRecord{
		Index:   p.Index,
		Cost:    p.Cost,
		Actions: make([]string, len(p.Actions)),
		States:  make([]int64, len(p.States)),
	}
	for i, a := range p.Actions {
		rec.Actions[i] = a.Name
	}
	for i, s := range p.States {
		rec.States[i] = int64(s)
	}
	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("kstar: writing plan %d: %w", p.Index, err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *JSONFileSink) Close() error {
	return s.f.Close()
}

// NopSink discards every plan; useful when only Result.Plans (in-memory) is
// wanted and DumpPlans is left false.
type NopSink struct{}

// OnPlan implements PlanSink by doing nothing.
func (NopSink) OnPlan(Plan) error { return nil }
