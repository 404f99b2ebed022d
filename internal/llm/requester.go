package llm

import (
	"context"
	"log/slog"

	"github.com/rcliao/fitplan/internal/model"
)

// ErrorPrefix starts the text of a failed reply.
const ErrorPrefix = "generation error: "

// Reply is the outcome of one plan request. On failure Text holds a
// description starting with ErrorPrefix and Err the cause.
type Reply struct {
	Text string
	Err  error
}

// Failed reports whether the request did not produce a completion.
func (r Reply) Failed() bool { return r.Err != nil }

// Requester sends plan prompts to a chat completer. Failures never escape as
// errors; they come back as Reply values.
type Requester struct {
	client ChatCompleter
}

// NewRequester wraps client.
func NewRequester(client ChatCompleter) *Requester {
	return &Requester{client: client}
}

// MealPlan requests a diet plan for p.
func (r *Requester) MealPlan(ctx context.Context, p model.Profile) Reply {
	return r.request(ctx, "meal", MealPrompt(p))
}

// WorkoutPlan requests a workout plan for p.
func (r *Requester) WorkoutPlan(ctx context.Context, p model.Profile) Reply {
	return r.request(ctx, "workout", WorkoutPrompt(p))
}

func (r *Requester) request(ctx context.Context, kind string, messages []Message) Reply {
	text, err := r.client.Complete(ctx, messages)
	if err != nil {
		slog.Error("Plan request failed", "kind", kind, "error", err)
		return Reply{Text: ErrorPrefix + err.Error(), Err: err}
	}
	slog.Info("Plan request completed", "kind", kind, "chars", len(text))
	return Reply{Text: text}
}
