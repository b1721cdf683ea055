package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewVersionCmd(env *Env, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(env.Output, "tda", version)
		},
	}
}
