// Command bitcalc is a programmer's calculator: fixed width registers, four
// numeral systems and bit level operators.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/bitcalc/engine"
	"github.com/calebcase/bitcalc/radix"
	"github.com/calebcase/bitcalc/settings"
	"github.com/calebcase/bitcalc/word"
)

// EnvStatePath overrides the default state file location.
const EnvStatePath = "BITCALC_STATE"

// Version is reported by --version.
var Version = "0.1.0"

var (
	statePath string
	sizeFlag  string
	signed    bool
	inFlag    string
	outFlag   string
	fraction  int
	verbose   bool
)

var rootCommand = &cobra.Command{
	Use:           "bitcalc",
	Short:         "bitcalc is a programmer's calculator",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(verbose)
	},
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&statePath, "state", "s", defaultStatePath(), "session state `FILE`")
	flags.StringVar(&sizeFlag, "size", "", "word size in bits (8, 16, 32 or 64)")
	flags.BoolVar(&signed, "signed", false, "interpret the register as two's complement")
	flags.StringVar(&inFlag, "in", "", "input numeral system (bin, oct, dec, hex)")
	flags.StringVar(&outFlag, "out", "", "output numeral system (bin, oct, dec, hex)")
	flags.IntVar(&fraction, "frac", 0, "fraction bits kept (0 to 16)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log engine events to stderr")

	rootCommand.AddCommand(evalCommand, convertCommand, tuiCommand)
}

func defaultStatePath() string {
	if p := os.Getenv(EnvStatePath); p != "" {
		return p
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "bitcalc.yaml"
	}

	return filepath.Join(dir, "bitcalc", "state.yaml")
}

func setupLogging(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	engine.SetLogger(logger.Named("engine"))
	settings.SetLogger(logger.Named("settings"))

	return nil
}

// session loads the stored state and applies the command line overrides.
func session(cmd *cobra.Command) (*settings.FileStore, *engine.Context, *engine.Engine, error) {
	store := settings.NewFileStore(statePath)
	s := settings.Load(store)

	flags := cmd.Flags()

	if flags.Changed("size") {
		size, err := word.Parse(sizeFlag)
		if err != nil {
			return nil, nil, nil, err
		}
		s.Word.WordSize = size
	}

	if flags.Changed("signed") {
		s.Calculator.SignedMode = signed
	}

	if flags.Changed("in") {
		r, err := radix.Lookup(inFlag)
		if err != nil {
			return nil, nil, nil, err
		}
		s.Conversion.InputSystem = r
	}

	if flags.Changed("out") {
		r, err := radix.Lookup(outFlag)
		if err != nil {
			return nil, nil, nil, err
		}
		s.Conversion.OutputSystem = r
	}

	if flags.Changed("frac") {
		s.Conversion.FractionalWidth = fraction
	}

	// The last value is wrapped into the new mode by Restore.
	if err := settings.ValidateMode(s); err != nil {
		return nil, nil, nil, err
	}

	c := &engine.Context{}
	e := engine.New()
	e.Restore(c, s)

	return store, c, e, nil
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
