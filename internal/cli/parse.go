package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/fitplan/internal/model"
	"github.com/rcliao/fitplan/internal/normalize"
)

func init() {
	cmd := &cobra.Command{
		Use:       "parse meal|workout [file]",
		Short:     "Parse a saved chat model reply",
		Long:      "Run the reply parser over a saved meal or workout reply (file or stdin) and print the result.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"meal", "workout"},
		Run:       runParse,
	}

	cmd.Flags().Bool("segments", false, "Print the weekday segments instead of the parsed plan")

	RootCmd.AddCommand(cmd)
}

type parseResult struct {
	Status model.Status `json:"status"`
	Plan   any          `json:"plan"`
}

func runParse(cmd *cobra.Command, args []string) {
	segments, _ := cmd.Flags().GetBool("segments")

	input, err := readInput(args[1:])
	if err != nil {
		exitErr("read reply", err)
	}
	text := string(input)

	if segments {
		spans := normalize.Segment(text, normalize.DayLabels)
		if textFormat() {
			for _, sp := range spans {
				fmt.Printf("== %s [%d:%d]\n%s\n\n", sp.Label, sp.Start, sp.End, sp.Text)
			}
			return
		}
		printJSON(spans)
		return
	}

	var res parseResult
	switch args[0] {
	case "meal":
		res.Plan, res.Status = normalize.ParseMealPlan(text)
	case "workout":
		res.Plan, res.Status = normalize.ParseWorkoutPlan(text)
	default:
		exitErr("parse", fmt.Errorf("unknown plan kind %q (use meal or workout)", args[0]))
	}
	printJSON(res)
}
