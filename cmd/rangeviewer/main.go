package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/rangeviewer/internal/config"
	"github.com/ChicagoDave/rangeviewer/internal/logger"
	"github.com/ChicagoDave/rangeviewer/internal/server"
)

// cfg is loaded before any command runs.
var cfg *config.Config

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rangeviewer",
		Short: "Draw towers and their range bands on a square grid",
		Long: "Without a command, rangeviewer shows the two-tower sample village in the terminal.\n" +
			"A project path is a directory holding village.yaml, or a YAML file.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			c, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg = c
			logger.Init(cfg.LogLevel, cfg.Development())
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDefault()
		},
	}

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(viewportCmd())
	rootCmd.AddCommand(coverCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(initCmd())
	return rootCmd
}

func projectArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-path]",
		Short: "Show a village in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runShow(projectArg(args))
		},
	}
}

func renderCmd() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Render a village to an SVG or PNG file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), projectArg(args), format, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (svg, png; default from --out, else svg)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default village.<format> in RANGEVIEWER_OUTPUT_DIR)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a village file without drawing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), projectArg(args))
		},
	}
}

func viewportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "viewport [project-path]",
		Short: "Print the bounds, limits and ticks framing a village",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewport(cmd.OutOrStdout(), projectArg(args))
		},
	}
}

func coverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cover [project-path] x y",
		Short: "List the range bands that reach a point",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := "."
			if len(args) == 3 {
				project, args = args[0], args[1:]
			}
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing y: %w", err)
			}
			return runCover(cmd.OutOrStdout(), project, x, y)
		},
	}
}

func exportCmd() *cobra.Command {
	var out, title string

	cmd := &cobra.Command{
		Use:   "export [project-path]",
		Short: "Write a spreadsheet report of buildings, bands and viewport",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), projectArg(args), out, title)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default village.xlsx in RANGEVIEWER_OUTPUT_DIR)")
	cmd.Flags().StringVar(&title, "title", "", "report title (default the village title)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start a local server that redraws the village on every refresh",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = cfg.Port
			}
			srv := server.New(projectArg(args), port)
			srv.SetFigure(cfg.FigureSize, cfg.DPI)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port (default RANGEVIEWER_PORT)")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write the sample village to village.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), projectArg(args))
		},
	}
}
