package core

import (
	"errors"
	"testing"

	"github.com/huangsam/starchart/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords(names ...string) []schema.RepositoryRecord {
	records := make([]schema.RepositoryRecord, len(names))
	for i, name := range names {
		records[i] = schema.RepositoryRecord{
			Name:        name,
			StarsByDate: map[string]int{"2024-01-01": i + 1},
			ForksByDate: map[string]int{},
		}
	}
	return records
}

func TestReduceLoaded(t *testing.T) {
	state := NewDashboardState(5)
	assert.Equal(t, schema.LoadingStatus, state.Status)

	ready := Reduce(state, Loaded{Records: sampleRecords("a/a", "b/b")})
	assert.Equal(t, schema.ReadyStatus, ready.Status)
	assert.Equal(t, []string{"a/a"}, ready.Selected)

	empty := Reduce(state, Loaded{Records: nil})
	assert.Equal(t, schema.EmptyStatus, empty.Status)
	assert.Empty(t, empty.Selected)
}

func TestReduceFailed(t *testing.T) {
	boom := errors.New("boom")
	state := Reduce(NewDashboardState(5), Failed{Err: boom})
	assert.Equal(t, schema.FailedStatus, state.Status)
	assert.Equal(t, boom, state.Err)
}

func TestReduceToggle(t *testing.T) {
	state := ReduceAll(NewDashboardState(2), Loaded{Records: sampleRecords("a/a", "b/b", "c/c")})

	state = Reduce(state, Toggle{Name: "b/b"})
	assert.Equal(t, []string{"a/a", "b/b"}, state.Selected)

	capped := Reduce(state, Toggle{Name: "c/c"})
	assert.Equal(t, state.Selected, capped.Selected, "toggling past the limit is a no-op")

	removed := Reduce(state, Toggle{Name: "a/a"})
	assert.Equal(t, []string{"b/b"}, removed.Selected)

	unknown := Reduce(removed, Toggle{Name: "nobody/none"})
	assert.Equal(t, []string{"b/b"}, unknown.Selected)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := ReduceAll(NewDashboardState(5), Loaded{Records: sampleRecords("a/a", "b/b")})
	before := append([]string(nil), state.Selected...)

	_ = Reduce(state, Toggle{Name: "b/b"})
	_ = Reduce(state, Toggle{Name: "a/a"})

	assert.Equal(t, before, state.Selected)
}

func TestReduceClearAndMetric(t *testing.T) {
	state := ReduceAll(NewDashboardState(5),
		Loaded{Records: sampleRecords("a/a")},
		SetMetric{Metric: schema.ForksMetric},
		ClearSelection{},
	)
	assert.Empty(t, state.Selected)
	assert.Equal(t, schema.ForksMetric, state.Metric)

	state = Reduce(state, SetMetric{Metric: "watchers"})
	assert.Equal(t, schema.ForksMetric, state.Metric)
}

func TestDashboardChartData(t *testing.T) {
	state := ReduceAll(NewDashboardState(5),
		Loaded{Records: sampleRecords("a/a", "b/b", "c/c")},
		Toggle{Name: "c/c"},
	)
	records := state.SelectedRecords()
	require.Len(t, records, 2)
	assert.Equal(t, "c/c", records[1].Name)

	chart := state.ChartData()
	assert.Equal(t, []string{"a/a", "c/c"}, chart.Repositories)
	assert.Equal(t, []int{3}, chart.Column("c/c"))
}

func TestNewDashboardStateDefault(t *testing.T) {
	assert.Equal(t, 5, NewDashboardState(0).MaxSelections)
}
