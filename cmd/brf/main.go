package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/brf/internal"
	"github.com/starford/brf/internal/apperr"
	"github.com/starford/brf/internal/rename"
	pkgconfig "github.com/starford/brf/pkg/config"
)

const notDirectoryMessage = "Path is not a directory!"

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(os.Getenv("BRF_CONFIG_FILE"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return internal.Run(ctx,
		internal.WithConfig(cfg),
		internal.WithArgs(cmd.Args().Slice()),
	)
}

func main() {
	cmd := &cli.Command{
		Name:      "brf",
		Usage:     "Bulk rename the files of a directory",
		UsageText: "brf [dir_path] [file_name | -u | -l | -U | -L]",
		Action:    run,
		// Mode tokens such as -u and -L are positional arguments, not flags.
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
	}

	err := cmd.Run(context.Background(), os.Args)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrUsage):
		fmt.Println(rename.Usage)
	case errors.Is(err, apperr.ErrNotDirectory):
		fmt.Println(notDirectoryMessage)
	default:
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
