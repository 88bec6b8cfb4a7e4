package core

import (
	"slices"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/schema"
)

// DashboardState is the immutable presentation state of the dashboard.
// Every change goes through Reduce, which returns a new value.
type DashboardState struct {
	Records       []schema.RepositoryRecord
	Selected      []string // Selection order, at most MaxSelections names
	Metric        schema.Metric
	Status        schema.LoadStatus
	Err           error
	MaxSelections int
}

// DashboardAction is an event applied by Reduce.
type DashboardAction interface {
	isDashboardAction()
}

// Loaded delivers the catalog records.
type Loaded struct{ Records []schema.RepositoryRecord }

// Failed reports that loading failed.
type Failed struct{ Err error }

// Toggle selects or deselects one repository.
type Toggle struct{ Name string }

// ClearSelection deselects everything.
type ClearSelection struct{}

// SetMetric switches the plotted metric.
type SetMetric struct{ Metric schema.Metric }

func (Loaded) isDashboardAction()         {}
func (Failed) isDashboardAction()         {}
func (Toggle) isDashboardAction()         {}
func (ClearSelection) isDashboardAction() {}
func (SetMetric) isDashboardAction()      {}

// NewDashboardState returns the initial loading state.
func NewDashboardState(maxSelections int) DashboardState {
	if maxSelections <= 0 {
		maxSelections = contract.DefaultMaxSelections
	}
	return DashboardState{
		Metric:        schema.StarsMetric,
		Status:        schema.LoadingStatus,
		MaxSelections: maxSelections,
	}
}

// Reduce applies action to state and returns the next state.
func Reduce(state DashboardState, action DashboardAction) DashboardState {
	next := state
	next.Selected = slices.Clone(state.Selected)

	switch a := action.(type) {
	case Loaded:
		next.Records = a.Records
		next.Err = nil
		next.Selected = nil
		if len(a.Records) == 0 {
			next.Status = schema.EmptyStatus
			break
		}
		next.Status = schema.ReadyStatus
		next.Selected = []string{a.Records[0].Name}

	case Failed:
		next.Status = schema.FailedStatus
		next.Err = a.Err
		next.Records = nil
		next.Selected = nil

	case Toggle:
		if i := slices.Index(next.Selected, a.Name); i >= 0 {
			next.Selected = slices.Delete(next.Selected, i, i+1)
			break
		}
		if len(next.Selected) >= next.MaxSelections || !state.hasRecord(a.Name) {
			break
		}
		next.Selected = append(next.Selected, a.Name)

	case ClearSelection:
		next.Selected = nil

	case SetMetric:
		if _, ok := schema.ValidMetrics[a.Metric]; ok {
			next.Metric = a.Metric
		}
	}
	return next
}

// ReduceAll applies actions in order.
func ReduceAll(state DashboardState, actions ...DashboardAction) DashboardState {
	for _, a := range actions {
		state = Reduce(state, a)
	}
	return state
}

// SelectedRecords returns the selected records in selection order.
func (s DashboardState) SelectedRecords() []schema.RepositoryRecord {
	out := make([]schema.RepositoryRecord, 0, len(s.Selected))
	for _, name := range s.Selected {
		for _, r := range s.Records {
			if r.Name == name {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ChartData aligns the selected records on the current metric.
func (s DashboardState) ChartData() schema.AlignedResult {
	return AlignRecords(s.SelectedRecords(), s.Metric)
}

// IsSelected reports whether name is selected.
func (s DashboardState) IsSelected(name string) bool {
	return slices.Contains(s.Selected, name)
}

func (s DashboardState) hasRecord(name string) bool {
	return slices.ContainsFunc(s.Records, func(r schema.RepositoryRecord) bool { return r.Name == name })
}
