package cli

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rcliao/fitplan/internal/catalogue"
	"github.com/rcliao/fitplan/internal/export"
	"github.com/rcliao/fitplan/internal/llm"
	"github.com/rcliao/fitplan/internal/model"
	"github.com/rcliao/fitplan/internal/planner"
	"github.com/rcliao/fitplan/internal/store"
)

// profileFlags maps command flags onto profile form keys.
var profileFlags = []struct {
	flag, key, usage string
}{
	{"sex", model.KeySex, "Sex: male or female (required)"},
	{"age", model.KeyAge, "Age in years (required)"},
	{"height", model.KeyHeight, "Height in cm (required)"},
	{"weight", model.KeyWeight, "Weight in kg (required)"},
	{"goal", model.KeyGoal, "Goal: lose, maintain, gain, buildMuscle"},
	{"experience", model.KeyExperience, "Training experience: beginner, intermediate, advanced"},
	{"activity", model.KeyActivity, "Activity level: sedentary, light, moderate, active, veryActive"},
	{"days", model.KeyWorkoutDays, "Workout days per week"},
	{"duration", model.KeyDuration, "Workout duration in minutes"},
}

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a weekly meal and workout plan",
		Long: "Generate a weekly plan for a profile. Plans come from the built-in catalogue unless --ai is set, " +
			"in which case both halves are requested from the configured chat model and parsed.",
		Run: runGenerate,
	}

	defaults := map[string]string{
		model.KeyGoal:        string(model.GoalMaintain),
		model.KeyExperience:  string(model.Beginner),
		model.KeyActivity:    string(model.Moderate),
		model.KeyWorkoutDays: "3",
		model.KeyDuration:    "45",
	}
	for _, f := range profileFlags {
		cmd.Flags().String(f.flag, defaults[f.key], f.usage)
	}
	cmd.Flags().StringSliceP("restrictions", "r", nil, "Dietary restrictions: vegetarian, vegan, glutenFree, lactoseFree, nutFree")
	cmd.Flags().Bool("ai", false, "Request the plan from the chat model (default: $FITPLAN_USE_AI)")
	cmd.Flags().Int64("seed", 0, "Seed catalogue selection for reproducible plans (0 picks a random seed)")
	cmd.Flags().Duration("timeout", 0, "Give up on the chat model after this long (0 waits indefinitely)")
	cmd.Flags().StringP("out", "o", "", "Also write the plan as a text document to this file")
	cmd.Flags().Bool("no-record", false, "Do not log the submission")

	cmd.MarkFlagRequired("sex")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("weight")

	RootCmd.AddCommand(cmd)
}

// profileForm collects the profile flags into the form ParseProfile reads.
func profileForm(flags *pflag.FlagSet) map[string][]string {
	form := make(map[string][]string)
	for _, f := range profileFlags {
		if v, _ := flags.GetString(f.flag); strings.TrimSpace(v) != "" {
			form[f.key] = []string{v}
		}
	}
	if rs, _ := flags.GetStringSlice("restrictions"); len(rs) > 0 {
		form[model.KeyRestrictions] = rs
	}
	return form
}

func runGenerate(cmd *cobra.Command, args []string) {
	profile, err := model.ParseProfile(profileForm(cmd.Flags()))
	if err != nil {
		exitErr("generate", err)
	}

	useAI := cfg.UseAI
	if cmd.Flags().Changed("ai") {
		useAI, _ = cmd.Flags().GetBool("ai")
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	outPath, _ := cmd.Flags().GetString("out")
	noRecord, _ := cmd.Flags().GetBool("no-record")

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	generator := planner.NewGenerator(catalogue.NewSelector(rng))

	var requester *llm.Requester
	if useAI {
		if cfg.LLM.APIKey == "" {
			slog.Warn("No API key configured for the chat model", "endpoint", cfg.LLM.Endpoint)
		}
		requester = llm.NewRequester(llm.NewOpenAIClient(cfg.LLM, nil))
	}
	svc := planner.NewService(generator, requester)
	slog.Debug("Generating plan", "remote", useAI, "seed", seedString(seed), "timeout", timeout)

	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	doc := export.Document{Profile: profile, Plan: svc.Generate(ctx, profile, useAI)}

	if !noRecord {
		doc.SubmissionID = record(cmd.Context(), profile, doc.Plan.Provenance)
	}

	if outPath != "" {
		if err := writeTextFile(outPath, doc); err != nil {
			exitErr("write plan", err)
		}
		slog.Info("Plan written", "path", outPath)
	}

	if textFormat() {
		if err := export.WriteText(os.Stdout, doc); err != nil {
			exitErr("print plan", err)
		}
		return
	}
	printJSON(doc)
}

// record logs the submission. Failures are reported but do not stop the
// plan from being printed.
func record(ctx context.Context, profile model.Profile, pv model.Provenance) string {
	s, err := openStore()
	if err != nil {
		slog.Warn("Submission not recorded", "error", err)
		return ""
	}
	defer s.Close()

	sub, err := s.Record(ctx, store.RecordParams{Profile: profile, Provenance: pv})
	if err != nil {
		slog.Warn("Submission not recorded", "error", err)
		return ""
	}
	slog.Debug("Submission recorded", "id", sub.ID, "source", pv.Source)
	return sub.ID
}

func writeTextFile(path string, doc export.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteText(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// seedString formats a seed for log output.
func seedString(seed int64) string {
	if seed == 0 {
		return "random"
	}
	return strconv.FormatInt(seed, 10)
}
