package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/fractions"
)

type config struct {
	Exprs  []string `arg:"" optional:"" name:"expr" help:"Expressions to evaluate. With none, input is read from --in or stdin."`
	In     string   `short:"i" placeholder:"FILE" help:"Input file, or - for stdin."`
	Lines  bool     `short:"n" help:"Evaluate each input line as a separate expression instead of only the first."`
	Echo   bool     `help:"Print parse trees."`
	Tokens bool     `help:"Dump lexed tokens."`
	Fmt    string   `placeholder:"VERB" help:"Also print a floating-point approximation formatted with VERB, e.g. %g."`
	Prec   uint     `short:"p" default:"64" help:"Precision of approximations in bits."`
	Digits int      `default:"4096" help:"Maximum digits after the decimal point."`
}

func main() {
	log.SetFlags(0)
	var cfg config
	kctx := kong.Parse(&cfg, kong.Description(`
Evaluate arithmetic expressions exactly. Results are printed as reduced
fractions followed by their decimal expansions, with repeating digits in
parentheses.
`))
	if cfg.Digits < 1 {
		kctx.Fatalf("digits (%d) must be positive", cfg.Digits)
	}
	srcs, err := readInputs(cfg.In, len(cfg.Exprs) == 0, cfg.Lines)
	if err != nil {
		log.Fatal(err)
	}
	srcs = append(srcs, cfg.Exprs...)
	if failed := run(os.Stdout, srcs, &cfg); failed > 0 {
		os.Exit(1)
	}
}

// readInputs reads expressions from the named file, or from stdin if the name
// is "-" or std is set and there is no name.
func readInputs(inname string, std, lines bool) ([]string, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return scanInputs(f, lines)
}

// scanInputs splits input into expressions. Without lines, only the first
// line is an expression.
func scanInputs(r io.Reader, lines bool) ([]string, error) {
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimRight(sc.Text(), "\r")
		if !lines {
			return []string{s}, nil
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		srcs = append(srcs, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return srcs, nil
}

// run evaluates each expression and writes the results to w. It returns the
// number of expressions that failed.
func run(w io.Writer, srcs []string, cfg *config) int {
	failed := 0
	for _, src := range srcs {
		if !evaluate(w, src, cfg) {
			failed++
		}
	}
	return failed
}

func evaluate(w io.Writer, src string, cfg *config) bool {
	if cfg.Tokens {
		// Lexing errors are reported by Parse below.
		if toks, err := fractions.Lex(src); err == nil {
			fmt.Fprintln(w, repr.String(toks, repr.Indent("\t")))
		}
	}
	e, err := fractions.Parse(src)
	if err != nil {
		report(w, src, err)
		return false
	}
	if cfg.Echo {
		fmt.Fprintf(w, "%v : ", e)
	}
	r, err := e.Reduce()
	if err != nil {
		report(w, src, err)
		return false
	}
	fmt.Fprint(w, r)
	if !r.IsInt() {
		d, _ := r.DecimalN(cfg.Digits)
		fmt.Fprint(w, " = ", d)
	}
	if cfg.Fmt != "" {
		fmt.Fprintf(w, " ~ "+cfg.Fmt, r.Float(cfg.Prec))
	}
	fmt.Fprintln(w)
	return true
}

// report writes an error, pointing to its position in src if it has one.
func report(w io.Writer, src string, err error) {
	var lerr *fractions.LexError
	var ierr fractions.InputError
	switch {
	case errors.As(err, &lerr):
		// Lex errors already carry their own diagnostic.
		fmt.Fprintln(w, err)
	case errors.As(err, &ierr):
		fmt.Fprintln(w, fractions.Pointer(src, ierr.Pos()))
		fmt.Fprintln(w, err)
	default:
		fmt.Fprintln(w, err)
	}
}
