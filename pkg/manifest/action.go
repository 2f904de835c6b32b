package manifest

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/docket-run/docket/pkg/domain"
)

// ActionSpec is the declarative form of one action. Type selects the
// variant; the remaining keys are variant parameters and sit inline in
// YAML ("type: adjust_budget\ndelta: 500000").
type ActionSpec struct {
	Type   string         `yaml:"type" json:"type"`
	Params map[string]any `yaml:",inline" json:"params,omitempty"`
}

type adjustBudgetParams struct {
	Delta float64 `mapstructure:"delta"`
}

type departmentTransferParams struct {
	Department string `mapstructure:"department"`
}

type conditionalApprovalParams struct {
	Threshold float64 `mapstructure:"threshold"`
	Action    any     `mapstructure:"action"`
}

// Validate reports whether the spec can build a domain action.
func (a *ActionSpec) Validate() error {
	_, err := a.Build()
	return err
}

// Build constructs the domain action for this spec. Parameter maps are
// decoded per variant; a conditional_approval recurses into its child.
func (a *ActionSpec) Build() (domain.Action, error) {
	switch a.Type {
	case domain.ActionApproveFunding:
		return domain.ApproveFunding(), nil

	case domain.ActionAdjustBudget:
		if _, ok := a.Params["delta"]; !ok {
			return nil, fmt.Errorf("%s requires a delta", a.Type)
		}
		var p adjustBudgetParams
		if err := decodeParams(a.Params, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", a.Type, err)
		}
		return domain.AdjustBudget(p.Delta), nil

	case domain.ActionCompleteProject:
		return domain.CompleteProject(), nil

	case domain.ActionConditionalApproval:
		if _, ok := a.Params["threshold"]; !ok {
			return nil, fmt.Errorf("%s requires a threshold", a.Type)
		}
		var p conditionalApprovalParams
		if err := decodeParams(a.Params, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", a.Type, err)
		}
		if p.Action == nil {
			return nil, fmt.Errorf("%s requires a child action", a.Type)
		}
		childSpec, err := asActionSpec(p.Action)
		if err != nil {
			return nil, fmt.Errorf("%s child: %w", a.Type, err)
		}
		child, err := childSpec.Build()
		if err != nil {
			return nil, fmt.Errorf("%s child: %w", a.Type, err)
		}
		return domain.ConditionalApproval(child, p.Threshold), nil

	case domain.ActionDepartmentTransfer:
		var p departmentTransferParams
		if err := decodeParams(a.Params, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", a.Type, err)
		}
		if p.Department == "" {
			return nil, fmt.Errorf("%s requires a department", a.Type)
		}
		return domain.DepartmentTransfer(p.Department), nil

	case domain.ActionBudgetFreeze:
		return domain.BudgetFreeze(), nil

	case "":
		return nil, fmt.Errorf("action type is required")

	default:
		return nil, fmt.Errorf("unknown action type %q", a.Type)
	}
}

// decodeParams maps a raw parameter map onto a typed params struct.
// Weak typing lets YAML integers land in float64 fields.
func decodeParams(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}

// asActionSpec converts a nested raw value (a YAML/JSON map) into an
// ActionSpec, splitting the type discriminator from the parameter keys.
func asActionSpec(raw any) (*ActionSpec, error) {
	var inner struct {
		Type   string         `mapstructure:"type"`
		Params map[string]any `mapstructure:",remain"`
	}
	if err := mapstructure.Decode(raw, &inner); err != nil {
		return nil, fmt.Errorf("invalid action definition: %w", err)
	}
	return &ActionSpec{Type: inner.Type, Params: inner.Params}, nil
}
