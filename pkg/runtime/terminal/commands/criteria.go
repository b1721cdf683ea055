package commands

import (
	"fmt"
	"strconv"

	"github.com/de-tools/tda-copilot/pkg/services/scoring"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewCriteriaCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "List the assessment criteria of every category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := [][]string{{"Category", "Max", "Criteria"}}
			for _, c := range scoring.Criteria() {
				for i, item := range c.Items {
					title, maxScore := "", ""
					if i == 0 {
						title, maxScore = pterm.FgCyan.Sprint(c.Title), strconv.Itoa(c.MaxScore)
					}
					data = append(data, []string{title, maxScore, item})
				}
			}
			err := pterm.DefaultTable.WithHasHeader().WithWriter(env.Output).WithData(data).Render()
			if err != nil {
				return fmt.Errorf("failed to render criteria: %w", err)
			}
			return nil
		},
	}
}
