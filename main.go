package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/toxichemicals/GO/holy-terrain/config"
	"github.com/toxichemicals/GO/holy-terrain/mesh"
	"github.com/toxichemicals/GO/holy-terrain/viewer"
)

func init() {
	// GLFW and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		assetsDir  string
		glDebug    bool
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "holy-terrain",
		Short: "Fly a camera over a textured terrain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			slog.SetDefault(log)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("assets") {
				cfg.Assets.Dir = assetsDir
			}
			if glDebug {
				cfg.GLDebug = true
			}

			log.Debug("starting", "config", configPath, "assets", cfg.Assets.Dir, "gl_debug", cfg.GLDebug)
			return viewer.Run(cfg, log)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	root.Flags().StringVar(&assetsDir, "assets", "", "asset directory, overrides assets.dir")
	root.Flags().BoolVar(&glDebug, "gl-debug", false, "request a debug context and log driver messages")

	root.AddCommand(&cobra.Command{
		Use:   "info <mesh>",
		Short: "Print vertex statistics for a mesh file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(newLogger(verbose))
			m, err := mesh.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices:  %d\n", m.VertexCount())
			fmt.Fprintf(out, "triangles: %d\n", m.TriangleCount())
			fmt.Fprintf(out, "texcoords: %t\n", m.HasTexCoords())
			return nil
		},
	})
	return root
}

func main() {
	if err := fang.Execute(context.Background(), newRootCommand()); err != nil {
		os.Exit(1)
	}
}
