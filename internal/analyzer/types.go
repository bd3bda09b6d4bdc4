package analyzer

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/ppiankov/costspectre/internal/probe"
)

// Priority ranks how urgently a recommendation should be acted on.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// RiskLevel describes the blast radius of acting on a recommendation.
type RiskLevel string

const (
	RiskMedium  RiskLevel = "Medium"
	RiskLow     RiskLevel = "Low"
	RiskVeryLow RiskLevel = "Very Low"
)

// Effort describes how much work implementing a recommendation takes.
type Effort string

const (
	EffortLow    Effort = "Low"
	EffortMedium Effort = "Medium"
)

// Recommendation is one ranked, scored output record derived from a
// category bucket. Never mutated after generation; regenerating replaces
// the whole sequence on the run result.
type Recommendation struct {
	Category              string    `json:"category"`
	Priority              Priority  `json:"priority"`
	FindingCount          int       `json:"finding_count"`
	TotalSavings          float64   `json:"total_savings"`
	AverageSavingsPerItem float64   `json:"average_savings_per_item"`
	Recommendation        string    `json:"recommendation"`
	RiskLevel             RiskLevel `json:"risk_level"`
	Effort                Effort    `json:"effort"`
}

// Bucket accumulates one category's findings across provider merges.
// After every merge of consistent provider payloads, Count == len(Items)
// and Savings equals the sum of item savings.
type Bucket struct {
	Count   int             `json:"count"`
	Savings float64         `json:"savings"`
	Items   []probe.Finding `json:"items"`
}

// Categories is a category-name-to-bucket map that remembers insertion
// order. The order is the documented tie-break for equally ranked
// recommendations and keeps serialized output reproducible.
type Categories struct {
	buckets map[string]*Bucket
	names   []string
}

// NewCategories returns an empty category map.
func NewCategories() *Categories {
	return &Categories{buckets: make(map[string]*Bucket)}
}

// Bucket returns the bucket for a category, if present.
func (c *Categories) Bucket(name string) (*Bucket, bool) {
	b, ok := c.buckets[name]
	return b, ok
}

// ensure returns the bucket for a category, creating a fresh one on first
// contribution and recording its insertion position.
func (c *Categories) ensure(name string) *Bucket {
	if b, ok := c.buckets[name]; ok {
		return b
	}
	b := &Bucket{Items: []probe.Finding{}}
	c.buckets[name] = b
	c.names = append(c.names, name)
	return b
}

// Names returns category names in insertion order.
func (c *Categories) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of categories.
func (c *Categories) Len() int {
	return len(c.buckets)
}

// MarshalJSON encodes the categories as a JSON object with keys in
// insertion order.
func (c *Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.buckets[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a saved artifact. JSON objects carry no insertion
// order, so categories load in sorted key order, which is still
// deterministic.
func (c *Categories) UnmarshalJSON(data []byte) error {
	var raw map[string]*Bucket
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	c.buckets = raw
	c.names = names
	return nil
}
