package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/fitplan/internal/export"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render a generated plan as a text document",
		Long:  "Read the JSON printed by generate (file or stdin) and write it as a plain-text weekly plan.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Write to this file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	outPath, _ := cmd.Flags().GetString("out")

	input, err := readInput(args)
	if err != nil {
		exitErr("read plan", err)
	}

	var doc export.Document
	if err := json.Unmarshal(input, &doc); err != nil {
		exitErr("decode plan", err)
	}
	if len(doc.Plan.MealPlan) == 0 && len(doc.Plan.WorkoutPlan) == 0 {
		exitErr("export", fmt.Errorf("input holds no plan"))
	}

	if outPath != "" {
		if err := writeTextFile(outPath, doc); err != nil {
			exitErr("export", err)
		}
		return
	}
	if err := export.WriteText(os.Stdout, doc); err != nil {
		exitErr("export", err)
	}
}
