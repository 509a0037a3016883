package goal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func modules(statuses ...ModuleStatus) []Module {
	result := make([]Module, 0, len(statuses))
	for i, s := range statuses {
		result = append(result, Module{ID: string(rune('a' + i)), Name: "Module", Status: s})
	}
	return result
}

func TestRecalculate_NoModules(t *testing.T) {
	g := Goal{}
	g.Recalculate()

	assert.Equal(t, 0, g.Progress)
	assert.Equal(t, StatusPending, g.Status)
}

func TestRecalculate_NoneCompleted(t *testing.T) {
	g := Goal{Modules: modules(ModulePending, ModulePending)}
	g.Recalculate()

	assert.Equal(t, 0, g.Progress)
	assert.Equal(t, StatusPending, g.Status)
}

func TestRecalculate_PartiallyCompleted(t *testing.T) {
	g := Goal{Modules: modules(ModuleCompleted, ModulePending, ModulePending)}
	g.Recalculate()

	// 1 of 3 rounds to 33.
	assert.Equal(t, 33, g.Progress)
	assert.Equal(t, StatusInProgress, g.Status)
}

func TestRecalculate_RoundsUp(t *testing.T) {
	g := Goal{Modules: modules(ModuleCompleted, ModuleCompleted, ModulePending)}
	g.Recalculate()

	// 2 of 3 rounds to 67.
	assert.Equal(t, 67, g.Progress)
	assert.Equal(t, StatusInProgress, g.Status)
}

func TestRecalculate_AllCompleted(t *testing.T) {
	g := Goal{Modules: modules(ModuleCompleted, ModuleCompleted)}
	g.Recalculate()

	assert.Equal(t, 100, g.Progress)
	assert.Equal(t, StatusCompleted, g.Status)
}
