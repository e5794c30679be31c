package app

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sadaie/rsgen/internal/config"
	"github.com/sadaie/rsgen/internal/logger"
	"github.com/sadaie/rsgen/pkg/randstr"
)

// run resolves the effective configuration and prints the requested random
// strings to the command output.
func (o *options) run(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Log); err != nil {
		return err
	}

	if zerolog.GlobalLevel() == zerolog.TraceLevel {
		if dump, dumpErr := config.DumpConfig(cfg); dumpErr == nil {
			log.Trace().Str("config", dump).Msg("effective configuration")
		} else {
			log.Warn().Err(dumpErr).Msg("could not dump the effective configuration")
		}
	}

	charset, err := o.charset(cfg.Output.Charset)
	if err != nil {
		return err
	}

	// The alphabet is resolved once and shared by the whole loop.
	alphabet, err := charset.Resolve()
	if err != nil {
		return err
	}

	src := newSource(cfg.Output.Fast)

	log.Debug().
		Int("count", cfg.Output.Count).
		Int("loop", cfg.Output.Loop).
		Bool("fast", cfg.Output.Fast).
		Int("alphabetSize", len(alphabet)).
		Msg("generating")

	return generate(cmd.OutOrStdout(), src, alphabet, cfg.Output.Count, cfg.Output.Loop, stdoutIsTerminal())
}

// charset applies the documented flag precedence, most restrictive first,
// and falls back to the configured default policy name.
func (o *options) charset(fallback string) (randstr.Charset, error) {
	switch {
	case o.numeric:
		return randstr.Numeric, nil
	case o.printableASCII:
		return randstr.PrintableASCIIWithoutSpace, nil
	case o.printableASCIIWithSpace:
		return randstr.PrintableASCIIWithSpace, nil
	case o.onlyUpperCase:
		return randstr.LatinAlphabet(true, false), nil
	case o.onlyLowerCase:
		return randstr.LatinAlphabet(false, true), nil
	case o.onlyLatinAlphabet:
		return randstr.LatinAlphabet(true, true), nil
	default:
		return randstr.ParseCharset(fallback)
	}
}

// newSource picks the random source once per invocation; the instance is
// reused across the whole generation loop.
func newSource(fast bool) randstr.Source {
	if fast {
		return randstr.NewFastSource()
	}

	return randstr.NewSecureSource()
}

// generate writes loop strings of count characters each to w. On a terminal
// every string ends with a newline; when the output is piped the final
// newline is omitted so the result can be consumed without trimming.
func generate(w io.Writer, src randstr.Source, alphabet randstr.Alphabet, count, loop int, terminal bool) error {
	for i := 0; i < loop; i++ {
		s, err := randstr.GenerateFromAlphabet(src, count, alphabet)
		if err != nil {
			return err
		}

		if terminal || i < loop-1 {
			_, err = fmt.Fprintln(w, s)
		} else {
			_, err = fmt.Fprint(w, s)
		}

		if err != nil {
			return errors.Wrap(err, "failed to write the generated string")
		}
	}

	return nil
}

// stdoutIsTerminal reports whether stdout is attached to an interactive
// terminal rather than a pipe or a file.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
