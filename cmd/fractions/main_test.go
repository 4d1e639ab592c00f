package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var cfg config
	p, err := kong.New(&cfg)
	require.NoError(t, err)
	_, err = p.Parse([]string{"1+2", "3/4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1+2", "3/4"}, cfg.Exprs)
	assert.Equal(t, uint(64), cfg.Prec)
	assert.Equal(t, 4096, cfg.Digits)
	assert.False(t, cfg.Lines)
	assert.Empty(t, cfg.In)
}

func TestConfigFlags(t *testing.T) {
	var cfg config
	p, err := kong.New(&cfg)
	require.NoError(t, err)
	_, err = p.Parse([]string{"-n", "-i", "exprs.txt", "-p", "128", "--digits", "10", "--echo", "--fmt", "%g"})
	require.NoError(t, err)
	assert.True(t, cfg.Lines)
	assert.True(t, cfg.Echo)
	assert.Equal(t, "exprs.txt", cfg.In)
	assert.Equal(t, uint(128), cfg.Prec)
	assert.Equal(t, 10, cfg.Digits)
	assert.Equal(t, "%g", cfg.Fmt)
	assert.Empty(t, cfg.Exprs)
}

func TestScanInputs(t *testing.T) {
	in := "1+2\n\n 3 \r\n4/5"
	srcs, err := scanInputs(strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1+2", " 3 ", "4/5"}, srcs)

	srcs, err = scanInputs(strings.NewReader(in), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"1+2"}, srcs)

	srcs, err = scanInputs(strings.NewReader(""), false)
	require.NoError(t, err)
	assert.Empty(t, srcs)
}

func TestRun(t *testing.T) {
	cases := []struct {
		name   string
		srcs   []string
		cfg    config
		out    string
		failed int
	}{
		{
			name: "int",
			srcs: []string{"2 * (3 + 4)"},
			cfg:  config{Digits: 4096},
			out:  "14\n",
		},
		{
			name: "repeating",
			srcs: []string{"1/3", "0.1 + 0.2"},
			cfg:  config{Digits: 4096},
			out:  "1/3 = 0.(3)\n3/10 = 0.3\n",
		},
		{
			name: "truncated",
			srcs: []string{"1/7"},
			cfg:  config{Digits: 3},
			out:  "1/7 = 0.142...\n",
		},
		{
			name: "echo",
			srcs: []string{"2*3"},
			cfg:  config{Echo: true, Digits: 4096},
			out:  "([2] * [3]) : 6\n",
		},
		{
			name: "fmt",
			srcs: []string{"1/3"},
			cfg:  config{Fmt: "%.3f", Prec: 64, Digits: 4096},
			out:  "1/3 = 0.(3) ~ 0.333\n",
		},
		{
			name:   "div-zero",
			srcs:   []string{"5 / 0"},
			cfg:    config{Digits: 4096},
			out:    "5 / 0\n--^\n3: division by zero in /\n",
			failed: 1,
		},
		{
			name:   "lex",
			srcs:   []string{"2 $ 3"},
			cfg:    config{Digits: 4096},
			out:    "2 $ 3\n--^\n3: unexpected character '$'\n",
			failed: 1,
		},
		{
			name:   "syntax",
			srcs:   []string{"(2 + 3"},
			cfg:    config{Digits: 4096},
			out:    "(2 + 3\n------^\n7: expected RPAREN but got EOF\n",
			failed: 1,
		},
		{
			name:   "continue",
			srcs:   []string{"1/0", "-1/2"},
			cfg:    config{Digits: 4096},
			out:    "1/0\n-^\n2: division by zero in /\n-1/2 = -0.5\n",
			failed: 1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			failed := run(&b, c.srcs, &c.cfg)
			assert.Equal(t, c.out, b.String())
			assert.Equal(t, c.failed, failed)
		})
	}
}

func TestRunTokens(t *testing.T) {
	var b strings.Builder
	failed := run(&b, []string{"1 + 2"}, &config{Tokens: true, Digits: 4096})
	assert.Zero(t, failed)
	out := b.String()
	assert.Contains(t, out, "fractions.Token{")
	assert.True(t, strings.HasSuffix(out, "\n3\n"), out)
}
