package domain

// Action is a single state transition over one project. Apply never
// fails: an unmet precondition (project not funded, budget below a gate's
// threshold) is a silent no-op, not an error. The set of variants is
// open; a project only requires something with an Apply method.
type Action interface {
	// Name identifies the variant for logs, hooks and metric labels.
	Name() string

	// Apply mutates the given project in place. The side effect is
	// confined to this one project; no other state is consulted.
	Apply(p *Project)
}

// Action names. These double as the "type" discriminators in manifests.
const (
	ActionApproveFunding      = "approve_funding"
	ActionAdjustBudget        = "adjust_budget"
	ActionCompleteProject     = "complete_project"
	ActionConditionalApproval = "conditional_approval"
	ActionDepartmentTransfer  = "department_transfer"
	ActionBudgetFreeze        = "budget_freeze"
)

type approveFunding struct{}

// ApproveFunding marks the project as funded.
func ApproveFunding() Action { return approveFunding{} }

func (approveFunding) Name() string     { return ActionApproveFunding }
func (approveFunding) Apply(p *Project) { p.funded = true }

type adjustBudget struct {
	delta float64
}

// AdjustBudget shifts the budget by delta. A negative delta is a cut.
func AdjustBudget(delta float64) Action { return adjustBudget{delta: delta} }

func (adjustBudget) Name() string { return ActionAdjustBudget }

func (a adjustBudget) Apply(p *Project) { p.budget += a.delta }

type completeProject struct{}

// CompleteProject marks the project completed, but only once funding has
// been approved. Unfunded projects are left untouched.
func CompleteProject() Action { return completeProject{} }

func (completeProject) Name() string { return ActionCompleteProject }

func (completeProject) Apply(p *Project) {
	if p.funded {
		p.completed = true
	}
}

type conditionalApproval struct {
	child     Action
	threshold float64
}

// ConditionalApproval gates a child action behind a minimum budget. The
// budget is read at apply time, so earlier actions in the same sequence
// influence the decision; the threshold itself qualifies (>=). The child
// may itself be a ConditionalApproval, stacking thresholds with
// short-circuit evaluation.
func ConditionalApproval(child Action, threshold float64) Action {
	return conditionalApproval{child: child, threshold: threshold}
}

func (conditionalApproval) Name() string { return ActionConditionalApproval }

func (c conditionalApproval) Apply(p *Project) {
	if p.budget >= c.threshold {
		c.child.Apply(p)
	}
}

type departmentTransfer struct {
	department string
}

// DepartmentTransfer reassigns the project to another department,
// unconditionally overwriting the current one.
func DepartmentTransfer(department string) Action {
	return departmentTransfer{department: department}
}

func (departmentTransfer) Name() string { return ActionDepartmentTransfer }

func (a departmentTransfer) Apply(p *Project) { p.department = a.department }

type budgetFreeze struct{}

// BudgetFreeze zeroes the budget regardless of its prior value.
func BudgetFreeze() Action { return budgetFreeze{} }

func (budgetFreeze) Name() string     { return ActionBudgetFreeze }
func (budgetFreeze) Apply(p *Project) { p.budget = 0 }
