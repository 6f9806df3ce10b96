package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bomkit/internal/batch"
)

// NewRemoveCommand builds the rmbom root command. Unlike addbom it defaults
// to scanning every file, since only files that actually start with the BOM
// are rewritten.
func NewRemoveCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "rmbom",
		Short: "Remove the UTF-8 BOM from files under the current directory",
		Long: `rmbom recursively scans the current working directory and strips the
UTF-8 byte-order mark from every matching file that starts with one.
Binary-looking files and files that are not valid UTF-8 are skipped and
counted.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, batch.ModeRemove)
		},
	}

	cobra.OnInitialize(initConfig)
	bindCommonFlags(cmd, opts)
	cmd.Flags().StringSliceVar(&opts.extensions, "extensions", nil, "Only process these file extensions (default: all files)")
	viper.BindPFlag("extensions", cmd.Flags().Lookup("extensions"))

	return cmd
}
