package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/regiontime/region"
)

// Row is the serialised form of one metric. Times are in seconds.
type Row struct {
	Name          string       `json:"name" yaml:"name"`
	Group         string       `json:"group,omitempty" yaml:"group,omitempty"`
	Calls         int64        `json:"calls" yaml:"calls"`
	Invocations   int64        `json:"invocations" yaml:"invocations"`
	Overruns      int64        `json:"overruns" yaml:"overruns"`
	TotalTime     float64      `json:"totalTime" yaml:"totalTime"`
	SelfTime      float64      `json:"selfTime" yaml:"selfTime"`
	LastTime      float64      `json:"lastTime" yaml:"lastTime"`
	LastSelfTime  float64      `json:"lastSelfTime" yaml:"lastSelfTime"`
	AverageTime   float64      `json:"averageTime" yaml:"averageTime"`
	TotalQuantity int64        `json:"totalQuantity" yaml:"totalQuantity"`
	LastQuantity  int64        `json:"lastQuantity" yaml:"lastQuantity"`
	Percentiles   *Percentiles `json:"percentiles,omitempty" yaml:"percentiles,omitempty"`
}

// Percentiles is the serialised duration distribution, in seconds.
type Percentiles struct {
	P50   float64 `json:"p50" yaml:"p50"`
	P90   float64 `json:"p90" yaml:"p90"`
	P99   float64 `json:"p99" yaml:"p99"`
	Max   float64 `json:"max" yaml:"max"`
	Count int64   `json:"count" yaml:"count"`
}

// Document is the top-level JSON/YAML report.
type Document struct {
	Metrics []Row `json:"metrics" yaml:"metrics"`
}

// NewRow converts stats to a Row.
func NewRow(s region.Stats) Row {
	r := Row{
		Name:          s.Name,
		Group:         s.Group,
		Calls:         s.Calls,
		Invocations:   s.Invocations,
		Overruns:      s.Overruns,
		TotalTime:     s.TotalTime.Seconds(),
		SelfTime:      s.TotalSelfTime.Seconds(),
		LastTime:      s.LastTime.Seconds(),
		LastSelfTime:  s.LastSelfTime.Seconds(),
		AverageTime:   s.AverageTime().Seconds(),
		TotalQuantity: s.TotalQuantity,
		LastQuantity:  s.LastQuantity,
	}
	if p := s.Percentiles; p != nil {
		r.Percentiles = &Percentiles{
			P50:   p.P50.Seconds(),
			P90:   p.P90.Seconds(),
			P99:   p.P99.Seconds(),
			Max:   p.Max.Seconds(),
			Count: p.Count,
		}
	}
	return r
}

func newDocument(stats []region.Stats) Document {
	doc := Document{Metrics: make([]Row, 0, len(stats))}
	for _, s := range stats {
		doc.Metrics = append(doc.Metrics, NewRow(s))
	}
	return doc
}

func writeJSON(w io.Writer, stats []region.Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(stats)); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, stats []region.Stats) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(stats)); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return enc.Close()
}
