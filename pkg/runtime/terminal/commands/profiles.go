package commands

import (
	"fmt"

	"github.com/de-tools/tda-copilot/pkg/services/config"
	"github.com/spf13/cobra"
)

func NewProfilesCmd(env *Env) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the metadata profiles available to analyze --profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = env.Config.Profiles.Path
			}
			if path == "" {
				return fmt.Errorf("no profiles file configured, use --profiles or profiles.path")
			}

			registry, err := config.NewRegistry(path)
			if err != nil {
				return err
			}
			profiles, err := registry.GetProfiles(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range profiles {
				md, err := registry.GetMetadata(cmd.Context(), name)
				if err != nil {
					fmt.Fprintf(env.Output, "%s\t(invalid: %v)\n", name, err)
					continue
				}
				fmt.Fprintf(env.Output, "%s\t%s\t%s\n", name, md.ProjectName, md.Organization)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "profiles", "", "Path to the profiles file")
	return cmd
}
