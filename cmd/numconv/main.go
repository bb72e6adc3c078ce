package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/calebcase/numconv"
)

func main() {
	var (
		form    = flag.String("form", "decimal", "Input form (binary, decimal, hex, s754, d754, comp1, comp2)")
		digits  = flag.Int("digits", numconv.DefaultDigits, "Maximum digits for radix strings and complement patterns")
		output  = flag.String("output", "text", "Output format (text, json, msgpack)")
		verbose = flag.Bool("v", false, "Log each conversion to stderr")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: numconv [-form F] [-digits N] [-output text|json|msgpack] [-v] [--] VALUE...")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		var err error

		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config{
		Form:   *form,
		Digits: *digits,
		Output: *output,
	}

	if err := run(os.Stdout, logger, cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	Form   string
	Digits int
	Output string
}

// run converts each argument and writes the results to w. Failed values are
// skipped and reported together once every value has been tried.
func run(w io.Writer, logger *zap.Logger, cfg config, args []string) error {
	form, err := numconv.ParseForm(cfg.Form)
	if err != nil {
		return err
	}

	render, err := renderer(cfg.Output)
	if err != nil {
		return err
	}

	var errs *multierror.Error

	for _, arg := range args {
		result, err := numconv.Convert(numconv.Text(arg), form, cfg.Digits)
		if err != nil {
			logger.Debug("conversion failed",
				zap.String("value", arg),
				zap.Stringer("form", form),
				zap.Error(err),
			)

			errs = multierror.Append(errs, fmt.Errorf("%s: %w", arg, err))

			continue
		}

		logger.Debug("converted",
			zap.String("value", arg),
			zap.Stringer("form", form),
			zap.Int("digits", cfg.Digits),
			zap.Float64("canonical", result.Value),
		)

		err = render(w, result)
		if err != nil {
			return err
		}
	}

	return errs.ErrorOrNil()
}
