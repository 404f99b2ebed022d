package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/fitplan/internal/model"
	"github.com/rcliao/fitplan/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "List logged submissions",
		Long:  "List logged submissions newest first, or show one submission by ID.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runHistory,
	}

	cmd.Flags().String("goal", "", "Filter by goal")
	cmd.Flags().String("source", "", "Filter by source: local or remote")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	goal, _ := cmd.Flags().GetString("goal")
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if len(args) == 1 {
		sub, err := s.Get(cmd.Context(), args[0])
		if err != nil {
			exitErr("history", err)
		}
		printJSON(sub)
		return
	}

	subs, err := s.List(cmd.Context(), store.ListParams{
		Goal:   model.Goal(goal),
		Source: model.Source(source),
		Limit:  limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	if textFormat() {
		for _, sub := range subs {
			fmt.Printf("%s  %s  %-6s meals=%-8s workouts=%-8s %s %s\n",
				sub.ID, sub.CreatedAt.Local().Format("2006-01-02 15:04"), sub.Provenance.Source,
				sub.Provenance.MealStatus, sub.Provenance.WorkoutStatus,
				sub.Profile.Sex, sub.Profile.Goal)
		}
		return
	}
	printJSON(subs)
}
