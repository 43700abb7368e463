package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solarlune/rotation3d/internal/logging"
	"github.com/solarlune/rotation3d/overlay"
	"github.com/solarlune/rotation3d/scenario"
)

type rootOpts struct {
	scenarioFile string
	logLevel     string
	dev          bool
}

// load returns the scenarios to work with (the built-in ones unless a file is given) and the logger to use.
func (o *rootOpts) load() ([]*scenario.Scenario, *zap.Logger, error) {

	log, err := logging.New(logging.Config{Level: o.logLevel, Development: o.dev})
	if err != nil {
		return nil, nil, err
	}

	if o.scenarioFile == "" {
		return scenario.Builtin(), log, nil
	}

	scenarios, err := scenario.LoadFile(o.scenarioFile)
	if err != nil {
		return nil, nil, err
	}

	log.Debug("loaded scenarios", zap.String("file", o.scenarioFile), zap.Int("count", len(scenarios)))

	return scenarios, log, nil

}

func newRootCommand() *cobra.Command {

	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:           "rotdemo",
		Short:         "Shows rotations computed with quaternions and matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.scenarioFile, "scenarios", "", "YAML file of scenarios to use instead of the built-in ones")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn, or error")
	cmd.PersistentFlags().BoolVar(&opts.dev, "dev", false, "log human-readable text instead of JSON")

	cmd.AddCommand(
		newRunCommand(opts),
		newPrintCommand(opts),
		newExportCommand(opts),
		newListCommand(opts),
	)

	return cmd

}

func newRunCommand(root *rootOpts) *cobra.Command {

	var width, height int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window showing each scenario; Left and Right switch between them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			scenarios, log, err := root.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			game, err := overlay.NewGame(scenarios, width, height, log)
			if err != nil {
				return err
			}

			ebiten.SetWindowTitle("rotdemo")
			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			return ebiten.RunGame(game)

		},
	}

	cmd.Flags().IntVar(&width, "width", 1280, "window width")
	cmd.Flags().IntVar(&height, "height", 720, "window height")

	return cmd

}

func newPrintCommand(root *rootOpts) *cobra.Command {

	var name string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Evaluate the scenarios and print them as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			scenarios, log, err := root.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			if name != "" {
				sc := scenario.Find(scenarios, name)
				if sc == nil {
					return fmt.Errorf("no scenario named %q", name)
				}
				scenarios = []*scenario.Scenario{sc}
			}

			results, err := scenario.NewEvaluator(log).EvaluateAll(scenarios)
			if err != nil {
				return err
			}

			return scenario.Format(cmd.OutOrStdout(), results)

		},
	}

	cmd.Flags().StringVar(&name, "scenario", "", "only print the scenario with this name")

	return cmd

}

func newExportCommand(root *rootOpts) *cobra.Command {

	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Evaluate the scenarios and save the results as a glTF scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			scenarios, log, err := root.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			results, err := scenario.NewEvaluator(log).EvaluateAll(scenarios)
			if err != nil {
				return err
			}

			if err := scenario.SaveGLTF(out, results); err != nil {
				return err
			}

			log.Info("exported", zap.String("file", out), zap.Int("scenarios", len(results)))
			return nil

		},
	}

	cmd.Flags().StringVar(&out, "out", "rotations.gltf", "file to write; a .glb extension writes binary glTF")

	return cmd

}

func newListCommand(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the scenarios and the operations their steps can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			scenarios, _, err := root.load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "Scenarios:")
			for _, sc := range scenarios {
				fmt.Fprintf(w, "  %-24s %s\n", sc.Name, sc.DisplayTitle())
			}

			fmt.Fprintln(w, "Operations:")
			for _, op := range scenario.Operations() {
				fmt.Fprintf(w, "  %s\n", op)
			}

			return nil

		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rotdemo:", err)
		os.Exit(1)
	}
}
