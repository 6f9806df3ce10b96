package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bomkit/internal/batch"
)

// NewAddCommand builds the addbom root command.
func NewAddCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "addbom",
		Short: "Add a UTF-8 BOM to text files under the current directory",
		Long: `addbom recursively scans the current working directory and prepends the
UTF-8 byte-order mark to every matching text file that does not already
carry one. Binary-looking files and files that are not valid UTF-8 are
skipped and counted.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, batch.ModeAdd)
		},
	}

	cobra.OnInitialize(initConfig)
	bindCommonFlags(cmd, opts)
	cmd.Flags().StringSliceVar(&opts.extensions, "extensions", defaultAddExtensions, "File extensions to process (comma-separated)")
	viper.BindPFlag("extensions", cmd.Flags().Lookup("extensions"))
	viper.SetDefault("extensions", defaultAddExtensions)

	return cmd
}
