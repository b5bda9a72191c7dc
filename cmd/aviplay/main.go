package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/adajani/go-aviplay/internal/avi"
	"github.com/adajani/go-aviplay/internal/cli"
	"github.com/adajani/go-aviplay/internal/player"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "aviplay <file.avi>",
	Short:         "Play uncompressed AVI files.",
	Long:          "aviplay decodes and plays uncompressed RIFF/AVI video (8-bit indexed, RGB565, BGR24, BGRA32).",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := avi.Open(args[0])
		if err != nil {
			return err
		}
		defer c.Close()
		return player.Play(c, filepath.Base(args[0]))
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <file.avi> [file...]",
	Short: "Print container metadata without playing",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if code := cli.Info(cmd.OutOrStdout(), cmd.ErrOrStderr(), args); code != 0 {
			return errors.New("one or more files failed to load")
		}
		return nil
	},
	DisableFlagsInUseLine: true,
}

var (
	exportFrame  int
	exportAll    bool
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <file.avi>",
	Short: "Decode frames to PNG or BMP files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if code := cli.Export(cmd.ErrOrStderr(), args[0], exportFrame, exportAll, exportOutput); code != 0 {
			return errors.New("export failed")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print aviplay version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli.Version(cmd.OutOrStdout())
		return nil
	},
	DisableFlagsInUseLine: true,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update aviplay",
	Long:  "Update aviplay to latest version (release builds only).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSelfUpdate(cmd.Context())
	},
	DisableFlagsInUseLine: true,
}

func init() {
	cli.SetVersion(resolveVersion())
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	exportCmd.Flags().IntVarP(&exportFrame, "frame", "n", 0, "zero-based frame index to export")
	exportCmd.Flags().BoolVarP(&exportAll, "all", "a", false, "export every frame")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "frame.png", "output file, or directory name when exporting all (.png or .bmp)")
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func runSelfUpdate(ctx context.Context) error {
	if version == "" || version == "dev" {
		return errors.New("self-update is only available in release builds")
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug("adajani/go-aviplay"))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", "adajani/go-aviplay", version)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current binary is the latest version: v%s\n", version)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version: v%s\n", latest.Version())
	return nil
}

func resolveVersion() string {
	if version != "" && version != "dev" {
		return normalizeVersion(version)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return normalizeVersion(info.Main.Version)
		}
	}
	return "dev"
}

func normalizeVersion(value string) string {
	return strings.TrimPrefix(value, "v")
}
