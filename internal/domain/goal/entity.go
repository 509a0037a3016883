package goal

import (
	"math"
	"time"
)

type Goal struct {
	ID          string
	EmployeeID  string
	AssignedBy  string
	Title       string
	Description *string
	DueDate     *time.Time
	Modules     []Module
	Progress    int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
	AssignerName *string
}

type Module struct {
	ID     string
	Name   string
	Status ModuleStatus
}

type ModuleStatus string

const (
	ModulePending   ModuleStatus = "Pending"
	ModuleCompleted ModuleStatus = "Completed"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Recalculate derives Progress and Status from the module checklist:
// progress is the rounded completion percentage, status follows from it.
func (g *Goal) Recalculate() {
	if len(g.Modules) == 0 {
		g.Progress = 0
		g.Status = StatusPending
		return
	}

	completed := 0
	for _, m := range g.Modules {
		if m.Status == ModuleCompleted {
			completed++
		}
	}
	g.Progress = int(math.Round(float64(completed) / float64(len(g.Modules)) * 100))

	switch {
	case g.Progress == 0:
		g.Status = StatusPending
	case g.Progress == 100:
		g.Status = StatusCompleted
	default:
		g.Status = StatusInProgress
	}
}
