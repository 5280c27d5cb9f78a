package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SiteFile is the top-level JSON structure for a site-file import: the
// roster and affair book a workshop hands over when it moves onto the app.
type SiteFile struct {
	Workers []WorkerImport `json:"workers,omitempty"`
	Affairs []AffairImport `json:"affairs"`
}

// WorkerImport defines one roster entry in the import file.
type WorkerImport struct {
	Ref      string `json:"ref"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Contract string `json:"contract,omitempty"`
	Color    string `json:"color,omitempty"`
}

// AffairImport defines one affair in the import file.
type AffairImport struct {
	Ref            string        `json:"ref"`
	Number         string        `json:"number"`
	Client         string        `json:"client"`
	Label          string        `json:"label,omitempty"`
	Status         string        `json:"status,omitempty"`
	Priority       string        `json:"priority,omitempty"`
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	OutsideHours   bool          `json:"outside_hours,omitempty"`
	BudgetEstimate float64       `json:"budget_estimate,omitempty"`
	Phases         []PhaseImport `json:"phases,omitempty"`
}

// PhaseImport defines one ordered phase of an imported affair. Phases keep
// the order they appear in the file.
type PhaseImport struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
	// ResponsibleRef points at a worker ref in the same file.
	ResponsibleRef string `json:"responsible_ref,omitempty"`
}

// LoadSiteFile reads and parses a site-file import from disk.
func LoadSiteFile(path string) (*SiteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf SiteFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &sf, nil
}
