package reconcile

// DBItem represents a stored entity.
// Adapters define the concrete type.
type DBItem any

// SourceItem represents an incoming entity from the authoritative source.
// Adapters define the concrete type.
type SourceItem any

// Batch is one chunk of source items, typically one fetched page.
type Batch struct {
	Items []SourceItem
	Last  bool
}

// ActionType represents the decision taken for one source item.
type ActionType string

const (
	// ActionCreated stores a new entity.
	ActionCreated ActionType = "created"
	// ActionUpdated overwrites an entity whose fields differ.
	ActionUpdated ActionType = "updated"
	// ActionSkippedUnchanged leaves an entity that already matches.
	ActionSkippedUnchanged ActionType = "skipped_unchanged"
	// ActionSkippedBlacklisted leaves an entity excluded by the filter.
	ActionSkippedBlacklisted ActionType = "skipped_blacklisted"
	// ActionSkippedMissing leaves an unknown entity when creation is disabled.
	ActionSkippedMissing ActionType = "skipped_missing"
)

// Action records the decision taken for one source item.
type Action struct {
	// Type is the decision.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`

	// Mismatch lists the differing fields for updates.
	Mismatch []string `json:"mismatch,omitempty"`
}

// Mutating reports whether the action writes to the store.
func (a Action) Mutating() bool {
	return a.Type == ActionCreated || a.Type == ActionUpdated
}

// Summary provides aggregate counts of a reconciliation.
type Summary struct {
	Total       int `json:"total"`
	Created     int `json:"created"`
	Updated     int `json:"updated"`
	Unchanged   int `json:"unchanged"`
	Blacklisted int `json:"blacklisted"`
	Missing     int `json:"missing"`
}

// Result is the ordered list of actions of one reconciliation.
type Result struct {
	Actions []Action `json:"actions"`
	Summary Summary  `json:"summary"`
}

func (r *Result) add(a Action) {
	r.Actions = append(r.Actions, a)
	r.Summary.Total++
	switch a.Type {
	case ActionCreated:
		r.Summary.Created++
	case ActionUpdated:
		r.Summary.Updated++
	case ActionSkippedUnchanged:
		r.Summary.Unchanged++
	case ActionSkippedBlacklisted:
		r.Summary.Blacklisted++
	case ActionSkippedMissing:
		r.Summary.Missing++
	}
}

// Options controls mutation behavior.
type Options struct {
	// CreateMissing stores entities that do not exist yet.
	CreateMissing bool

	// DryRun decides every action without executing any mutation.
	DryRun bool
}

// Spec bundles the adapter, filter and options of one reconciliation.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter

	// Filter excludes keys from mutation. Nil excludes nothing.
	Filter Filter

	// Options controls mutation behavior.
	Options Options
}
