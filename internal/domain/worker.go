package domain

import "time"

type Worker struct {
	ID        string
	Name      string
	Role      Role
	Color     string // hex planning color, assigned from the palette
	Available bool
	Contract  ContractType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayID returns a short identifier suitable for grid labels.
func (w *Worker) DisplayID() string {
	if len(w.ID) >= 8 {
		return w.ID[:8]
	}
	return w.ID
}
