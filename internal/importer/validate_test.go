package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSiteFile() *SiteFile {
	return &SiteFile{
		Workers: []WorkerImport{
			{Ref: "marc", Name: "Marc", Role: "workshop"},
			{Ref: "julie", Name: "Julie", Role: "installer", Contract: "subcontractor"},
		},
		Affairs: []AffairImport{
			{
				Ref: "kitchen", Number: "MEN-001", Client: "Dupont", Label: "Kitchen refit",
				StartDate: "2025-01-06", EndDate: "2025-01-31",
				Phases: []PhaseImport{
					{Name: "fabrication", Type: "fabrication", StartDate: "2025-01-06", EndDate: "2025-01-17", ResponsibleRef: "marc"},
					{Name: "installation", Type: "installation", StartDate: "2025-01-20", EndDate: "2025-01-31", ResponsibleRef: "julie"},
				},
			},
			{
				Ref: "staircase", Number: "MEN-002", Client: "Martin",
				StartDate: "2025-01-06", EndDate: "2025-02-28", OutsideHours: true,
			},
		},
	}
}

func TestValidateSiteFile_Valid(t *testing.T) {
	assert.Empty(t, ValidateSiteFile(validSiteFile()))
}

func TestValidateSiteFile_CollectsAllErrors(t *testing.T) {
	sf := validSiteFile()
	sf.Workers[0].Role = "plumber"
	sf.Workers[1].Ref = "marc"
	sf.Affairs[0].Number = "kitchen refit"
	sf.Affairs[1].EndDate = "2025-01-01"

	errs := ValidateSiteFile(sf)
	require.Len(t, errs, 4)
}

func TestValidateSiteFile_PhaseChecks(t *testing.T) {
	sf := validSiteFile()
	sf.Affairs[0].Phases[0].Type = "painting"
	sf.Affairs[0].Phases[1].EndDate = "2025-02-15"

	errs := ValidateSiteFile(sf)
	require.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], "phases[0].type")
	assert.ErrorContains(t, errs[1], "outside the affair's dates")
}

func TestValidateSiteFile_UnknownResponsibleRef(t *testing.T) {
	sf := validSiteFile()
	sf.Affairs[0].Phases[0].ResponsibleRef = "ghost"

	errs := ValidateSiteFile(sf)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], `unknown worker ref "ghost"`)
}

func TestValidateSiteFile_DuplicateNumber(t *testing.T) {
	sf := validSiteFile()
	sf.Affairs[1].Number = "MEN-001"

	errs := ValidateSiteFile(sf)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "duplicate number")
}

func TestValidateSiteFile_NoAffairs(t *testing.T) {
	sf := &SiteFile{}
	errs := ValidateSiteFile(sf)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "at least one affair")
}

func TestValidateSiteFile_BadDates(t *testing.T) {
	sf := validSiteFile()
	sf.Affairs[0].StartDate = "06/01/2025"
	sf.Affairs[1].StartDate = ""

	errs := ValidateSiteFile(sf)
	require.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], "invalid date")
	assert.ErrorContains(t, errs[1], "start_date is required")
}
