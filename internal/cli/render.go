package cli

import (
	"github.com/spf13/cobra"

	"mason/pkg/render"
	"mason/pkg/style"
)

func newRenderCmd() *cobra.Command {
	var (
		out        string
		scale      float64
		showTracks bool
	)
	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Render a scene's layout to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, res, err := layoutScene(cmd, args[0])
			if err != nil {
				return err
			}

			opts := render.Options{
				Scale:      scale,
				ShowTracks: showTracks,
				Columns:    params.Style.Direction == style.ForColumns,
			}
			if err := render.ToPNG(out, res, opts); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("rendered", "path", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "layout.png", "output PNG path")
	cmd.Flags().Float64Var(&scale, "scale", 1, "device pixels per layout unit")
	cmd.Flags().BoolVar(&showTracks, "tracks", false, "draw track guides")
	return cmd
}
