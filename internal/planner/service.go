package planner

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rcliao/fitplan/internal/llm"
	"github.com/rcliao/fitplan/internal/model"
	"github.com/rcliao/fitplan/internal/normalize"
)

// Service chooses between the local generator and the remote provider.
type Service struct {
	local      *Generator
	requester  *llm.Requester
	normalizer *normalize.Normalizer
}

// NewService returns a Service. A nil requester limits it to local plans.
func NewService(local *Generator, requester *llm.Requester) *Service {
	if local == nil {
		local = NewGenerator(nil)
	}
	return &Service{
		local:      local,
		requester:  requester,
		normalizer: normalize.New(local),
	}
}

// Generate builds a plan for p. With useRemote set, both plan requests are
// sent concurrently and each reply is normalized on its own; a failed request
// degrades only its half of the plan.
func (s *Service) Generate(ctx context.Context, p model.Profile, useRemote bool) model.Plan {
	if !useRemote {
		return s.local.Plan(p)
	}
	if s.requester == nil {
		slog.Warn("Remote generation requested without a provider, using local plan")
		return s.local.Plan(p)
	}

	var meal, workout llm.Reply
	var g errgroup.Group
	g.Go(func() error {
		meal = s.requester.MealPlan(ctx, p)
		return nil
	})
	g.Go(func() error {
		workout = s.requester.WorkoutPlan(ctx, p)
		return nil
	})
	_ = g.Wait()

	plan := model.Plan{
		Raw: &model.RawProviderText{
			MealPlanText:    meal.Text,
			WorkoutPlanText: workout.Text,
		},
		Provenance: model.Provenance{Source: model.SourceRemote},
	}
	plan.MealPlan, plan.Provenance.MealStatus = s.normalizer.MealPlan(meal.Text, p)
	plan.WorkoutPlan, plan.Provenance.WorkoutStatus = s.normalizer.WorkoutPlan(workout.Text, p)
	if meal.Failed() {
		plan.Provenance.MealError = meal.Err.Error()
	}
	if workout.Failed() {
		plan.Provenance.WorkoutError = workout.Err.Error()
	}

	slog.Info("Remote plan generated",
		"meal_status", plan.Provenance.MealStatus,
		"workout_status", plan.Provenance.WorkoutStatus)
	return plan
}
