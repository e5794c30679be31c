// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/sadaie/rsgen/internal/config"
)

// Version contains the version string, overridable at build time.
var Version = "x.y.z-dev" //nolint:gochecknoglobals

// options holds the command line flag values of one root command instance.
type options struct {
	configPath string

	count int
	loop  int
	fast  bool

	numeric                 bool
	printableASCII          bool
	printableASCIIWithSpace bool
	onlyUpperCase           bool
	onlyLowerCase           bool
	onlyLatinAlphabet       bool
}

// NewRootCommand builds the rsgen command with a fresh flag set, so tests
// can execute independent instances.
func NewRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "rsgen",
		Short: "rsgen generates random character strings",
		Long: `rsgen generates random character strings drawn from a selectable
character set, one string per line. When several character-set flags
are combined, the most restrictive one wins: numeric, printable-ascii,
printable-ascii-with-space, only-upper-case, only-lower-case,
only-latin-alphabet.`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	cmd.Flags().IntVarP(&o.count, "count", "c", config.DefaultCount, "The number of characters per generated string")
	cmd.Flags().IntVarP(&o.loop, "loop", "l", config.DefaultLoop, "The number of strings to generate")
	cmd.Flags().BoolVarP(&o.fast, "fast", "f", false, "Use the fast but NOT cryptographically secure random source")
	cmd.Flags().BoolVarP(&o.numeric, "numeric", "n", false, "Restrict the output to numeric characters")
	cmd.Flags().BoolVarP(&o.printableASCII, "printable-ascii", "p", false, "Use the printable ASCII characters without SPACE, 0x21 to 0x7E")
	cmd.Flags().BoolVarP(&o.printableASCIIWithSpace, "printable-ascii-with-space", "P", false, "Use the printable ASCII characters with SPACE, 0x20 to 0x7E")
	cmd.Flags().BoolVar(&o.onlyUpperCase, "only-upper-case", false, "Restrict the letters to upper case, without digits")
	cmd.Flags().BoolVar(&o.onlyLowerCase, "only-lower-case", false, "Restrict the letters to lower case, without digits")
	cmd.Flags().BoolVar(&o.onlyLatinAlphabet, "only-latin-alphabet", false, "Restrict the output to latin letters of both cases, without digits")
	cmd.Flags().StringVar(&o.configPath, "config", "", "Path to the TOML config file with generation defaults")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
