package domain

type Role string

const (
	RoleWorkshop   Role = "workshop"
	RoleInstaller  Role = "installer"
	RoleForeman    Role = "foreman"
	RoleApprentice Role = "apprentice"
	RoleOffice     Role = "office"
)

// ValidRoles is the canonical set of accepted worker role strings.
var ValidRoles = map[string]bool{
	"workshop": true, "installer": true, "foreman": true,
	"apprentice": true, "office": true,
}

type ContractType string

const (
	ContractEmployee      ContractType = "employee"
	ContractSubcontractor ContractType = "subcontractor"
)

type AffairStatus string

const (
	AffairPlanned    AffairStatus = "planned"
	AffairInProgress AffairStatus = "in_progress"
	AffairDone       AffairStatus = "done"
	AffairCancelled  AffairStatus = "cancelled"
)

// ValidAffairStatuses is the canonical set of accepted affair statuses.
var ValidAffairStatuses = map[AffairStatus]bool{
	AffairPlanned: true, AffairInProgress: true,
	AffairDone: true, AffairCancelled: true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPhaseTypes is the canonical set of accepted phase type strings.
var ValidPhaseTypes = map[string]bool{
	"study": true, "supply": true, "fabrication": true,
	"finishing": true, "delivery": true, "installation": true,
}
