// Package records reads the raw timeline data file. Records are kept as
// close to the source as possible; shape checks happen when entities are
// built so a malformed record only drops itself.
package records

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Slot is an optional vertical placement. Absolute pixels win over values
// relative to the plot height.
type Slot struct {
	Y    *float64 `yaml:"y"`
	H    *float64 `yaml:"h"`
	YRel *float64 `yaml:"yRel"`
	HRel *float64 `yaml:"hRel"`
}

// Band is a duration row, optionally split into segments.
type Band struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Color    string   `yaml:"color"`
	Start    *float64 `yaml:"start"`
	End      *float64 `yaml:"end"`
	Note     string   `yaml:"note"`
	Slot     `yaml:",inline"`
	Segments []Segment `yaml:"segments"`
}

// Segment is a sub-interval of a band.
type Segment struct {
	Start *float64 `yaml:"start"`
	End   *float64 `yaml:"end"`
	Label string   `yaml:"label"`
	Note  string   `yaml:"note"`
	Slot  `yaml:",inline"`
}

// Author is a lifespan drawn over a band.
type Author struct {
	ID         string   `yaml:"id"`
	DurationID string   `yaml:"durationId"`
	Name       string   `yaml:"name"`
	Start      *float64 `yaml:"start"`
	End        *float64 `yaml:"end"`
	Note       string   `yaml:"note"`
}

// Text is a single dated work drawn over a band.
type Text struct {
	ID         string   `yaml:"id"`
	DurationID string   `yaml:"durationId"`
	Title      string   `yaml:"title"`
	Year       *float64 `yaml:"year"`
	Note       string   `yaml:"note"`
}

// Set is one data file.
type Set struct {
	Bands   []Band   `yaml:"bands"`
	Authors []Author `yaml:"authors"`
	Texts   []Text   `yaml:"texts"`
}

// Len is the total number of top-level records.
func (s Set) Len() int { return len(s.Bands) + len(s.Authors) + len(s.Texts) }

// Load reads a YAML or JSON data file.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("error reading data file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Set{}, fmt.Errorf("error parsing data file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a data document. JSON input is accepted since it is valid
// YAML. A numeric field holding something other than a number is cleared
// rather than failing the whole document, so only its record is dropped.
func Parse(data []byte) (Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Set{}, err
	}
	var s Set
	if doc.Kind == 0 {
		return s, nil
	}
	clearNonNumeric(&doc)
	if err := doc.Decode(&s); err != nil {
		return Set{}, err
	}
	return s, nil
}

// numericKeys are the mapping keys decoded into *float64 fields.
var numericKeys = map[string]bool{
	"start": true,
	"end":   true,
	"year":  true,
	"y":     true,
	"h":     true,
	"yRel":  true,
	"hRel":  true,
}

func clearNonNumeric(n *yaml.Node) {
	if n.Kind != yaml.MappingNode {
		for _, c := range n.Content {
			clearNonNumeric(c)
		}
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if numericKeys[key.Value] {
			numeric(val)
			continue
		}
		clearNonNumeric(val)
	}
}

// numeric rewrites v in place to a number or null. Quoted numbers such as
// "-200" are accepted.
func numeric(v *yaml.Node) {
	target := v
	if v.Kind == yaml.AliasNode && v.Alias != nil {
		target = v.Alias
	}
	if target.Kind == yaml.ScalarNode {
		switch target.ShortTag() {
		case "!!int", "!!float", "!!null":
			return
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(target.Value), 64); err == nil &&
			!math.IsNaN(f) && !math.IsInf(f, 0) && v.Kind == yaml.ScalarNode {
			v.Tag, v.Style = "!!float", 0
			v.Value = strconv.FormatFloat(f, 'g', -1, 64)
			return
		}
	}
	*v = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null", Line: v.Line, Column: v.Column}
}

// Year returns a pointer to y, for building records in code.
func Year(y float64) *float64 { return &y }
