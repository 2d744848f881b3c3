package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mason/pkg/layout"
	"mason/pkg/scene"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout <scene.toml>",
		Short: "Lay out a scene and print placements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := layoutScene(cmd, args[0])
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}
}

// layoutScene loads a scene file and runs the algorithm once.
func layoutScene(cmd *cobra.Command, path string) (layout.Params, *layout.Result, error) {
	log := loggerFromContext(cmd.Context())

	s, err := scene.Load(path)
	if err != nil {
		return layout.Params{}, nil, err
	}
	params, err := s.Build()
	if err != nil {
		return layout.Params{}, nil, err
	}
	log.Debug("scene loaded", "path", path, "items", len(params.Children))

	res := layout.New(params).Layout()
	log.Debug("layout complete",
		"inline", res.InlineSize, "block", res.BlockSize,
		"tracks", len(res.Tracks), "placed", len(res.Children), "out-of-flow", len(res.OutOfFlow))
	return params, res, nil
}

func printResult(cmd *cobra.Command, res *layout.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "container: %g x %g\n", res.InlineSize, res.BlockSize)

	fmt.Fprintln(out, "tracks:")
	for i, tr := range res.Tracks {
		state := ""
		if tr.Collapsed {
			state = " (collapsed)"
		}
		fmt.Fprintf(out, "  %d: offset %g size %g%s\n", i, tr.Offset, tr.Size, state)
	}

	fmt.Fprintln(out, "items:")
	for i, child := range res.Children {
		fmt.Fprintf(out, "  %d: span %v at (%g, %g) size %g x %g\n",
			i, child.Span, child.Offset.Inline, child.Offset.Block,
			child.Fragment.Size.Inline, child.Fragment.Size.Block)
	}
	for i, oof := range res.OutOfFlow {
		fmt.Fprintf(out, "  out-of-flow %d: static (%g, %g)\n",
			i, oof.StaticOffset.Inline, oof.StaticOffset.Block)
	}

	if res.HasFirstBaseline {
		fmt.Fprintf(out, "baselines: first %g last %g\n", res.FirstBaseline, res.LastBaseline)
	}
}
