package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mason/pkg/layout"
	"mason/pkg/scene"
)

func newMeasureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "measure <scene.toml>",
		Short: "Print a scene's intrinsic min/max inline sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			params, err := s.Build()
			if err != nil {
				return err
			}

			mm := layout.New(params).ComputeMinMaxSizes()
			loggerFromContext(cmd.Context()).Debug("measured",
				"min", mm.Sizes.MinSize, "max", mm.Sizes.MaxSize)
			fmt.Fprintf(cmd.OutOrStdout(), "min-content: %g\nmax-content: %g\n",
				mm.Sizes.MinSize, mm.Sizes.MaxSize)
			return nil
		},
	}
}
