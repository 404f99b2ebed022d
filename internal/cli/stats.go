package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show submission statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	if textFormat() {
		fmt.Printf("%s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
		fmt.Printf("submissions: %d, degraded: %d\n", stats.TotalSubmissions, stats.Degraded)
		for _, g := range stats.BySource {
			fmt.Printf("  source %-12s %d\n", g.Value, g.Count)
		}
		for _, g := range stats.ByGoal {
			fmt.Printf("  goal   %-12s %d\n", g.Value, g.Count)
		}
		return
	}
	printJSON(stats)
}
