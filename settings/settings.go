// Package settings holds the session configuration of the calculator and the
// contracts used to persist it.
package settings

import (
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/bitcalc/decimal"
	"github.com/calebcase/bitcalc/overflow"
	"github.com/calebcase/bitcalc/radix"
	"github.com/calebcase/bitcalc/word"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("settings")

// Conversion selects the numeral systems used for input and output and the
// number of fraction bits kept.
type Conversion struct {
	InputSystem     radix.Radix `yaml:"input_system" default:"10" validate:"oneof=2 8 10 16"`
	OutputSystem    radix.Radix `yaml:"output_system" default:"10" validate:"oneof=2 8 10 16"`
	FractionalWidth int         `yaml:"fractional_width" default:"8" validate:"min=0,max=16"`
}

// Calculator is the last value shown when the session ended.
type Calculator struct {
	LastValue      decimal.Value `yaml:"last_value"`
	LastInputText  string        `yaml:"last_input_text"`
	LastOutputText string        `yaml:"last_output_text"`
	SignedMode     bool          `yaml:"signed_mode"`
}

// Word is the register width.
type Word struct {
	WordSize word.Size `yaml:"word_size" default:"32" validate:"oneof=8 16 32 64"`
}

// State is everything persisted between sessions.
type State struct {
	Calculator Calculator `yaml:"calculator"`
	Word       Word       `yaml:"word"`
	Conversion Conversion `yaml:"conversion"`
}

// Store loads and saves the session state.
type Store interface {
	Load() (State, error)
	Save(State) error
}

var validate = validator.New()

// Default returns the state used when nothing valid has been stored.
func Default() State {
	var s State

	// Set only fails for non-pointer arguments or malformed tags.
	if err := defaults.Set(&s); err != nil {
		panic(err)
	}

	return s
}

// Validate checks every group of s.
func Validate(s State) (err error) {
	var group errs.Group

	group.Add(ValidateMode(s))
	group.Add(validateCalculator(s))

	return Error.Wrap(group.Err())
}

// ValidateMode checks the register and conversion groups of s, leaving the
// last value out.
func ValidateMode(s State) (err error) {
	var group errs.Group

	group.Add(validate.Struct(s.Word))
	group.Add(validate.Struct(s.Conversion))

	return Error.Wrap(group.Err())
}

func validateCalculator(s State) error {
	c := s.Calculator
	if !s.Word.WordSize.Valid() {
		return nil
	}

	if !overflow.InRange(c.LastValue, s.Word.WordSize, c.SignedMode) {
		return Error.New("last value %s out of range for %d bit register", c.LastValue, s.Word.WordSize)
	}

	if c.SignedMode && c.LastValue.Negative() && c.LastValue.HasFraction() {
		return Error.New("last value %s is a signed fraction", c.LastValue)
	}

	return nil
}

// Sanitize replaces every invalid group of s by its default.
func Sanitize(s State) State {
	def := Default()

	if err := validate.Struct(s.Word); err != nil {
		Logger().Warn("invalid word settings, using defaults", zap.Error(err))
		s.Word = def.Word
	}

	if err := validate.Struct(s.Conversion); err != nil {
		Logger().Warn("invalid conversion settings, using defaults", zap.Error(err))
		s.Conversion = def.Conversion
	}

	if err := validateCalculator(s); err != nil {
		Logger().Warn("invalid calculator state, using defaults", zap.Error(err))
		s.Calculator = def.Calculator
	}

	return s
}

// Load returns the stored state. Any failure falls back to defaults, group by
// group, and is only logged.
func Load(store Store) State {
	s, err := store.Load()
	if err != nil {
		Logger().Warn("loading settings", zap.Error(err))
	}

	return Sanitize(s)
}
