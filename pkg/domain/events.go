package domain

import "context"

// ProjectEvent marks the start or end of processing one project.
type ProjectEvent struct {
	Project string `json:"project"`
	Actions int    `json:"actions"`
}

// ActionEvent records a single action application, with the scalar state
// as it stands after the action ran.
type ActionEvent struct {
	Project    string  `json:"project"`
	Action     string  `json:"action"`
	Department string  `json:"department"`
	Funded     bool    `json:"funded"`
	Budget     float64 `json:"budget"`
	Completed  bool    `json:"completed"`
}

// LifecycleHooks defines callbacks for engine observability. Hooks are
// fired by the engine facade; the pure Process methods stay silent.
type LifecycleHooks struct {
	OnProjectEnter func(context.Context, *ProjectEvent)
	OnProjectLeave func(context.Context, *ProjectEvent)
	OnActionApply  func(context.Context, *ActionEvent)
}
