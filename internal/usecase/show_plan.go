package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/pkgcheck/internal/domain"
)

// ShowPlanInput contains the parameters for resolving the rule plan.
type ShowPlanInput struct {
	Coverage bool
}

// ShowPlanOutput contains the resolved rule.
type ShowPlanOutput struct {
	Rule domain.Rule
}

// ShowPlan resolves the steps the test rule would run, without running them.
type ShowPlan struct {
	config domain.ConfigLoader
}

// NewShowPlan creates a new ShowPlan use case.
func NewShowPlan(config domain.ConfigLoader) *ShowPlan {
	return &ShowPlan{config: config}
}

// Execute builds the rule from the effective configuration.
func (uc *ShowPlan) Execute(_ context.Context, in ShowPlanInput) (*ShowPlanOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &ShowPlanOutput{
		Rule: domain.NewTestRule(cfg, in.Coverage),
	}, nil
}
