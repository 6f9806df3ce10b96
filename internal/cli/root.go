// Package cli builds the addbom and rmbom commands: flag and config wiring,
// the pre-run banner, and the post-run summary block.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bomkit/internal/batch"
)

// version is the application version, set via ldflags.
var version = "dev"

var (
	defaultAddExtensions = []string{"cu", "c", "cpp", "h", "txt", "md", "mk", "cuh"}
	defaultExcludeDirs   = []string{".git", "__pycache__", "node_modules", "venv"}
)

// options holds the flag-bound settings shared by both commands.
type options struct {
	dryRun      bool
	verbose     bool
	extensions  []string
	excludeDirs []string
	gitignore   bool
}

// Execute runs cmd and exits non-zero on failure. Per-file errors never reach
// this path; they are counted and reported in the summary instead.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bindCommonFlags registers the flags both commands share and binds them to
// viper so the config file and BOMKIT_* environment can supply defaults.
func bindCommonFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview outcomes without modifying any file")
	viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Print a line for every file visited")
	viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	cmd.Flags().StringSliceVar(&opts.excludeDirs, "exclude-dirs", defaultExcludeDirs, "Directory names to skip anywhere in the tree (comma-separated)")
	viper.BindPFlag("exclude_dirs", cmd.Flags().Lookup("exclude-dirs"))
	cmd.Flags().BoolVar(&opts.gitignore, "gitignore", false, "Also honor a .gitignore at the scan root")
	viper.BindPFlag("gitignore", cmd.Flags().Lookup("gitignore"))

	viper.SetDefault("exclude_dirs", defaultExcludeDirs)
}

// initConfig reads the optional config file and environment variables.
// Search order matches the config precedence: flag > env > config > default.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "bomkit"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("BOMKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
	}
}

// run resolves the final configuration, prints the banner, executes the batch
// over the process working directory, and prints the summary. A completed run
// always returns nil, even when per-file errors were counted.
func run(cmd *cobra.Command, opts *options, mode batch.Mode) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}

	// Flags left at their defaults pick up whatever viper resolved from the
	// config file or environment.
	if !cmd.Flags().Changed("extensions") {
		if v := viper.GetStringSlice("extensions"); len(v) > 0 {
			opts.extensions = v
		}
	}
	if !cmd.Flags().Changed("exclude-dirs") {
		if v := viper.GetStringSlice("exclude_dirs"); len(v) > 0 {
			opts.excludeDirs = v
		}
	}
	if !cmd.Flags().Changed("dry-run") {
		opts.dryRun = viper.GetBool("dry_run")
	}
	if !cmd.Flags().Changed("verbose") {
		opts.verbose = viper.GetBool("verbose")
	}
	if !cmd.Flags().Changed("gitignore") {
		opts.gitignore = viper.GetBool("gitignore")
	}

	cfg := batch.Config{
		Root:         root,
		Mode:         mode,
		Extensions:   opts.extensions,
		ExcludeDirs:  opts.excludeDirs,
		UseGitignore: opts.gitignore,
		DryRun:       opts.dryRun,
		Verbose:      opts.verbose,
	}

	printBanner(os.Stdout, cfg)

	stats, err := batch.Run(afero.NewOsFs(), cfg)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, cfg, stats)
	return nil
}
