package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitcalc/engine"
	"github.com/calebcase/bitcalc/radix"
	"github.com/calebcase/bitcalc/settings"
	"github.com/calebcase/bitcalc/word"
)

func TestGroupBits(t *testing.T) {
	type TC struct {
		bits string
		want string
	}

	tcs := []TC{
		{bits: "00001111", want: "00001111"},
		{bits: "0000000100000010", want: "00000001 00000010"},
		{bits: "00000001.1000", want: "00000001.1000"},
		{bits: "1", want: "1"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.bits), func(t *testing.T) {
			require.Equal(t, tc.want, groupBits(tc.bits))
		})
	}
}

func TestScript(t *testing.T) {
	s := settings.Default()
	s.Word.WordSize = word.Byte
	s.Conversion.OutputSystem = radix.Hexadecimal

	c := engine.NewContext(s)
	e := engine.New()

	ds, err := script(c, e, []string{"200", "+", "55", "="})
	require.NoError(t, err)
	require.Equal(t, "FF", ds.OutputText)

	buf := &bytes.Buffer{}
	printDisplay(buf, c, ds)
	require.Contains(t, buf.String(), "output:  FF (hexadecimal)")
	require.Contains(t, buf.String(), "bits:    11111111.00000000")

	_, err = script(c, e, []string{"bogus!"})
	require.Error(t, err)
}

// execute runs the root command against the state file at path. Flag values
// are reset first since the command tree is shared between runs.
func execute(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()

	rootCommand.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})

	out := &bytes.Buffer{}
	rootCommand.SetOut(out)
	rootCommand.SetArgs(append([]string{"--state", path}, args...))

	err := rootCommand.Execute()

	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	run := func(args ...string) string {
		out, err := execute(t, path, args...)
		require.NoError(t, err)

		return out
	}

	out := run("eval", "--size", "8", "--out", "hex", "--frac", "0", "250", "+", "10", "=")
	t.Logf("%s", out)
	require.Contains(t, out, "output:  4 (hexadecimal)")

	s, err := settings.NewFileStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, word.Byte, s.Word.WordSize)
	require.Equal(t, "4", s.Calculator.LastValue.String())

	out = run("eval", "+", "1", "=")
	require.Contains(t, out, "output:  5 (hexadecimal)")

	out = run("convert", "--in", "hex", "FF")
	t.Logf("%s", out)
	require.Contains(t, out, "decimal:      255")
	require.Contains(t, out, "binary:       1111 1111")
}

func TestEvalOverridesWrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	run := func(args ...string) string {
		out, err := execute(t, path, args...)
		require.NoError(t, err, "%v", args)
		t.Logf("%s", out)

		return out
	}

	run("eval", "--size", "32", "1000", "=")

	out := run("eval", "--size", "8", "+", "1", "=")
	require.Contains(t, out, "output:  233 (decimal)")

	out = run("eval", "--signed", "=")
	require.Contains(t, out, "output:  -23 (decimal)")

	out = run("eval", "--size", "8", "=")
	require.Contains(t, out, "output:  -23 (decimal)")

	_, err := execute(t, path, "eval", "--frac", "17", "=")
	require.Error(t, err)

	_, err = execute(t, path, "eval", "--size", "12", "=")
	require.Error(t, err)
}
