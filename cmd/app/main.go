package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/starford/imaginarium/internal"
	pkgconfig "github.com/starford/imaginarium/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithSeed(cmd.Int("seed")),
		internal.WithWatch(cmd.Bool("watch")),
	}
	if img := cmd.String("image"); img != "" {
		opts = append(opts, internal.WithImage(img))
	}
	if roles := cmd.String("roles"); roles != "" {
		opts = append(opts, internal.WithRolePlan(strings.Split(roles, ",")))
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "imaginarium",
		Usage:  "Turn images into playable sound-generator packs",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "Image file to build a pack from",
			},
			&cli.IntFlag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Pipeline seed; the same image and seed reproduce the same pack",
				Value:   1,
			},
			&cli.StringFlag{
				Name:  "roles",
				Usage: "Comma-separated role plan overriding the configured one",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Watch the inbox directory and build a pack per dropped image",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
