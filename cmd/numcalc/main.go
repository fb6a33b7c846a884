// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command numcalc performs a single arithmetic operation over a numeral set.
//
//	numcalc add 123 456
//	numcalc --set ternary-words add one two
//	numcalc --places 4 div 10 3
//	numcalc convert --to binary 10.5
package main

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/avdva/numeral"
	"github.com/avdva/numeral/internal/config"
	"github.com/avdva/numeral/internal/logg"
	"github.com/avdva/numeral/internal/mathutil"
	"github.com/avdva/numeral/numconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const defaultPlaces = 16

var result = color.New(color.FgGreen, color.Bold).FprintlnFunc()

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		logg.New(false).Error(err)
		os.Exit(1)
	}
}

// env is the state shared by all commands.
type env struct {
	log    *logg.Logger
	cfg    *config.Config
	set    *numeral.NumeralSet
	places int
}

func newEnv(c *cli.Context) (*env, error) {
	e := &env{
		log:    &logg.Logger{Out: c.App.Writer, Err: c.App.ErrWriter, Verbose: c.GlobalBool("verbose")},
		places: c.GlobalInt("places"),
	}
	if path := c.GlobalString("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		e.cfg = cfg
		e.log.Debugf("loaded config %s", path)
	}
	set, err := e.cfg.NumeralSet(c.GlobalString("set"))
	if err != nil {
		return nil, err
	}
	e.set = set
	e.log.Debugf("using set %q with radix %d", c.GlobalString("set"), set.Radix())
	return e, nil
}

func (e *env) print(w io.Writer, v interface{}) {
	result(w, v)
}

func run(args []string, out, errOut io.Writer) error {
	app := cli.NewApp()
	app.Name = "numcalc"
	app.Usage = "arbitrary-precision arithmetic over user-defined numeral sets"
	app.Version = "0.1.0"
	app.Writer = out
	app.ErrWriter = errOut
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "set, s", Value: config.DefaultSet, Usage: "numeral set name"},
		cli.StringFlag{Name: "config, c", Usage: "yaml file with numeral set definitions"},
		cli.IntFlag{Name: "places, p", Value: defaultPlaces, Usage: "maximum fractional digits for division"},
		cli.BoolFlag{Name: "verbose", Usage: "print debug messages"},
	}
	app.Commands = []cli.Command{
		binaryCommand("add", "adds two numbers", func(e *env, a, b *numeral.Number) error {
			return a.Add(b)
		}),
		binaryCommand("sub", "subtracts the second number from the first", func(e *env, a, b *numeral.Number) error {
			return a.Sub(b)
		}),
		binaryCommand("mul", "multiplies two numbers", func(e *env, a, b *numeral.Number) error {
			return a.Mul(b)
		}),
		binaryCommand("div", "divides the first number by the second", func(e *env, a, b *numeral.Number) error {
			return a.Div(b, e.places)
		}),
		{
			Name:      "cmp",
			Usage:     "compares two numbers, prints -1, 0, or 1",
			ArgsUsage: "<a> <b>",
			Action: withEnv(func(c *cli.Context, e *env) error {
				a, b, err := twoNumbers(c, e.set)
				if err != nil {
					return err
				}
				res, err := a.Cmp(b)
				if err != nil {
					return err
				}
				e.print(c.App.Writer, res)
				return nil
			}),
		},
		{
			Name:      "shift",
			Usage:     "multiplies a number by radix^count, negative count divides",
			ArgsUsage: "<a> <count>",
			Action: withEnv(func(c *cli.Context, e *env) error {
				a, count, err := numberAndInt(c, e.set)
				if err != nil {
					return err
				}
				dir := "left"
				if count > 0 {
					dir = "right"
				}
				e.log.Debugf("shifting %s by %d digits", dir, mathutil.AbsInt(count))
				for ; count > 0; count-- {
					a.ShiftRight()
				}
				for ; count < 0; count++ {
					a.ShiftLeft()
				}
				e.print(c.App.Writer, a)
				return nil
			}),
		},
		{
			Name:      "truncate",
			Usage:     "truncates a number to given fractional digits",
			ArgsUsage: "<a> <places>",
			Action: withEnv(func(c *cli.Context, e *env) error {
				a, places, err := numberAndInt(c, e.set)
				if err != nil {
					return err
				}
				if err := a.Truncate(places); err != nil {
					return err
				}
				e.print(c.App.Writer, a)
				return nil
			}),
		},
		{
			Name:      "convert",
			Usage:     "converts a number to another numeral set",
			ArgsUsage: "<a>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "to, t", Value: config.DefaultSet, Usage: "target numeral set name"},
			},
			Action: withEnv(func(c *cli.Context, e *env) error {
				a, err := oneNumber(c, e.set)
				if err != nil {
					return err
				}
				to, err := e.cfg.NumeralSet(c.String("to"))
				if err != nil {
					return err
				}
				converted, err := numconv.Convert(a, to, e.places)
				if err != nil {
					return err
				}
				e.print(c.App.Writer, converted)
				return nil
			}),
		},
		{
			Name:      "decimal",
			Usage:     "prints the base-10 value of a number",
			ArgsUsage: "<a>",
			Action: withEnv(func(c *cli.Context, e *env) error {
				a, err := oneNumber(c, e.set)
				if err != nil {
					return err
				}
				if e.places > math.MaxInt32 {
					return errors.Errorf("decimal: places must not exceed %d, got %d", math.MaxInt32, e.places)
				}
				if a.FracDigits() > 0 && e.set.Radix() != 10 {
					e.log.Warn("fraction truncated to", e.places, "decimal places")
				}
				d, err := numconv.ToDecimal(a, int32(e.places))
				if err != nil {
					return err
				}
				e.print(c.App.Writer, d.String())
				return nil
			}),
		},
		{
			Name:  "symbols",
			Usage: "prints the symbols of the numeral set",
			Action: withEnv(func(c *cli.Context, e *env) error {
				e.log.Infof("decimal: %q, negative: %q\n", e.set.Decimal(), e.set.Negative())
				for i, s := range e.set.Symbols() {
					e.log.Infof("%d\t%s\n", i, s)
				}
				return nil
			}),
		},
		{
			Name:  "sets",
			Usage: "lists known numeral sets",
			Action: withEnv(func(c *cli.Context, e *env) error {
				for _, name := range e.cfg.Names() {
					e.log.Info(name)
				}
				return nil
			}),
		},
	}
	return app.Run(args)
}

func withEnv(fn func(c *cli.Context, e *env) error) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		e, err := newEnv(c)
		if err != nil {
			return err
		}
		return fn(c, e)
	}
}

func binaryCommand(name, usage string, op func(e *env, a, b *numeral.Number) error) cli.Command {
	return cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<a> <b>",
		Action: withEnv(func(c *cli.Context, e *env) error {
			a, b, err := twoNumbers(c, e.set)
			if err != nil {
				return err
			}
			e.log.Debugf("%s %s %s", name, a, b)
			if err := op(e, a, b); err != nil {
				return err
			}
			e.print(c.App.Writer, a)
			return nil
		}),
	}
}

func oneNumber(c *cli.Context, set *numeral.NumeralSet) (*numeral.Number, error) {
	if c.NArg() != 1 {
		return nil, errors.Errorf("%s: expected 1 argument, got %d", c.Command.Name, c.NArg())
	}
	return numeral.NewNumber(c.Args().Get(0), set)
}

func twoNumbers(c *cli.Context, set *numeral.NumeralSet) (*numeral.Number, *numeral.Number, error) {
	if c.NArg() != 2 {
		return nil, nil, errors.Errorf("%s: expected 2 arguments, got %d", c.Command.Name, c.NArg())
	}
	a, err := numeral.NewNumber(c.Args().Get(0), set)
	if err != nil {
		return nil, nil, err
	}
	b, err := numeral.NewNumber(c.Args().Get(1), set)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func numberAndInt(c *cli.Context, set *numeral.NumeralSet) (*numeral.Number, int, error) {
	if c.NArg() != 2 {
		return nil, 0, errors.Errorf("%s: expected 2 arguments, got %d", c.Command.Name, c.NArg())
	}
	a, err := numeral.NewNumber(c.Args().Get(0), set)
	if err != nil {
		return nil, 0, err
	}
	v, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return nil, 0, errors.Wrap(err, c.Command.Name)
	}
	return a, v, nil
}
