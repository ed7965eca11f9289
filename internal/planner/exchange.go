package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/spendplan/internal/model"
)

// Format is an export file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
	}
}

// FormatForPath picks the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// exportDoc is the top-level shape of an export file.
type exportDoc struct {
	Planners []model.Planner `json:"planners" yaml:"planners"`
}

// Export writes planners to w.
func Export(w io.Writer, planners []model.Planner, f Format) error {
	doc := exportDoc{Planners: planners}
	if doc.Planners == nil {
		doc.Planners = []model.Planner{}
	}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}

// Decode reads planners written by Export.
func Decode(r io.Reader, f Format) ([]model.Planner, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc exportDoc
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f, err)
	}
	return doc.Planners, nil
}

// Import adds every planner to the collection under fresh planner and item
// ids. Amounts are clamped to [0, money.MaxCents] and invalid colors are
// replaced. It
// returns the stored records.
func (w *Workspace) Import(planners []model.Planner) ([]model.Planner, error) {
	var added []model.Planner
	for _, p := range planners {
		f := model.Fields{Title: p.Title, AvailableToSpend: p.AvailableToSpend.Clamp()}
		for _, it := range p.Spending {
			in := model.ItemInput{Label: it.Label, Color: it.Color, Amount: it.Amount.Clamp()}
			if !model.ValidColor(in.Color) {
				in.Color = ""
			}
			f.Spending = append(f.Spending, model.NewSpendingItem(in))
		}
		if strings.TrimSpace(f.Title) == "" {
			f.Title = DefaultTitle(w.now())
		}
		stored, err := w.planners.Add(f)
		if err != nil {
			return added, err
		}
		added = append(added, stored)
	}
	return added, nil
}
