package model

import (
	"encoding/json"
	"slices"

	"github.com/theirongolddev/spendplan/internal/money"
)

// Fields is the editable content of a planner.
type Fields struct {
	Title            string
	AvailableToSpend money.Cents
	Spending         []SpendingItem
}

// Clone returns a copy that shares no slice memory with f.
func (f Fields) Clone() Fields {
	f.Spending = slices.Clone(f.Spending)
	if f.Spending == nil {
		f.Spending = []SpendingItem{}
	}
	return f
}

// Kind discriminates draft and saved states.
type Kind int

const (
	KindDraft Kind = iota
	KindSaved
)

func (k Kind) String() string {
	if k == KindSaved {
		return "saved"
	}
	return "draft"
}

// State is the active board: either an unsaved draft or a saved planner
// identified by ID.
type State struct {
	Kind Kind
	ID   string
	Fields
}

// Draft returns an unsaved state.
func Draft(f Fields) State {
	return State{Kind: KindDraft, Fields: f.Clone()}
}

// Saved returns a state bound to the planner id.
func Saved(id string, f Fields) State {
	return State{Kind: KindSaved, ID: id, Fields: f.Clone()}
}

// DefaultState is the empty draft a board starts from and resets to.
func DefaultState() State {
	return Draft(Fields{})
}

// IsSaved reports whether the state is bound to a saved planner.
func (s State) IsSaved() bool {
	return s.Kind == KindSaved && s.ID != ""
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Fields = s.Fields.Clone()
	return s
}

// Planner returns the saved record the state represents.
func (s State) Planner() (Planner, bool) {
	if !s.IsSaved() {
		return Planner{}, false
	}
	return PlannerFrom(s.ID, s.Fields), true
}

// stateJSON is the persisted shape of the active board. The presence of id
// marks a saved planner.
type stateJSON struct {
	ID               string         `json:"id,omitempty"`
	Title            string         `json:"title,omitempty"`
	AvailableToSpend money.Cents    `json:"availableToSpend"`
	Spending         []SpendingItem `json:"spending"`
}

// MarshalJSON implements json.Marshaler.
func (s State) MarshalJSON() ([]byte, error) {
	out := stateJSON{
		Title:            s.Title,
		AvailableToSpend: s.AvailableToSpend,
		Spending:         s.Spending,
	}
	if out.Spending == nil {
		out.Spending = []SpendingItem{}
	}
	if s.IsSaved() {
		out.ID = s.ID
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *State) UnmarshalJSON(data []byte) error {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	f := Fields{Title: in.Title, AvailableToSpend: in.AvailableToSpend, Spending: in.Spending}
	if in.ID != "" {
		*s = Saved(in.ID, f)
	} else {
		*s = Draft(f)
	}
	return nil
}

// Planner is a saved, named budget.
type Planner struct {
	ID               string         `json:"id" yaml:"id"`
	Title            string         `json:"title" yaml:"title"`
	AvailableToSpend money.Cents    `json:"availableToSpend" yaml:"available_to_spend"`
	Spending         []SpendingItem `json:"spending" yaml:"spending"`
}

// PlannerFrom builds a planner record from id and fields.
func PlannerFrom(id string, f Fields) Planner {
	f = f.Clone()
	return Planner{
		ID:               id,
		Title:            f.Title,
		AvailableToSpend: f.AvailableToSpend,
		Spending:         f.Spending,
	}
}

// Fields returns a copy of the planner's editable content.
func (p Planner) Fields() Fields {
	return Fields{
		Title:            p.Title,
		AvailableToSpend: p.AvailableToSpend,
		Spending:         p.Spending,
	}.Clone()
}

// State returns the planner as an active saved state.
func (p Planner) State() State {
	return Saved(p.ID, p.Fields())
}

// Clone returns a deep copy of p.
func (p Planner) Clone() Planner {
	return PlannerFrom(p.ID, p.Fields())
}
