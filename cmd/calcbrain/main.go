// Command calcbrain is an RPN calculator. Each line of input is a sequence of
// words pushed onto one persistent stack; after each line, calcbrain prints
// the value of the stack.
//
//	$ calcbrain '3 4 +' '2 ×' 'clear' 'pi cos'
//	7
//	14
//	0
//	-1
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/calcbrain"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname, none string
		places                int
		echo                  bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML file defining constants and output defaults")
	flag.StringVar(&none, "none", "0", "text to print when the stack has no value")
	flag.IntVar(&places, "places", -1, "decimal places to round results to, or -1 for all")
	flag.BoolVar(&echo, "echo", false, "print the stack before each result")
	flag.Parse()

	cfg := defaultConfig()
	if cfgname != "" {
		var err error
		cfg, err = loadConfig(cfgname)
		if err != nil {
			log.Fatal(err)
		}
	}
	// Flags given explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "none":
			cfg.None = none
		case "places":
			cfg.Places = places
		}
	})
	if cfg.Places < -1 {
		log.Fatalf("places (%d) must be -1 or more", cfg.Places)
	}

	c := calculator{
		e:      calcbrain.New(calcbrain.UseRegistry(cfg.registry())),
		out:    os.Stdout,
		log:    log.Default(),
		none:   cfg.None,
		places: cfg.Places,
		echo:   echo,
	}

	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		if err := c.run(f); err != nil {
			log.Fatal(err)
		}
	}
	for _, arg := range flag.Args() {
		c.line(arg)
	}
}

// calculator feeds lines of RPN text into an evaluator and prints results.
type calculator struct {
	e      *calcbrain.Evaluator
	out    io.Writer
	log    *log.Logger
	none   string
	places int
	echo   bool
}

// aliases maps ASCII spellings to registry symbols.
var aliases = map[string]string{
	"*":    "×",
	"/":    "÷",
	"-":    "−",
	"sqrt": "√",
	"pi":   "π",
}

// run processes each line of in.
func (c *calculator) run(in io.Reader) error {
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		c.line(scan.Text())
	}
	return scan.Err()
}

// line enters each word of text and prints the resulting value. Malformed
// numbers and unknown symbols are reported and skipped.
func (c *calculator) line(text string) {
	scan := calcbrain.NewScanner(strings.NewReader(text))
	for {
		w, err := scan.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			c.log.Printf("%q: %v", text, err)
			continue
		}
		if w.Text == "clear" {
			c.e.Clear()
			continue
		}
		if s, ok := aliases[w.Text]; ok {
			w.Text = s
		}
		if w.Kind != calcbrain.WordNum && !c.known(w.Text) {
			c.log.Printf("%q: unknown symbol %q at column %d", text, w.Text, w.Pos)
		}
		c.e.Enter(w.Text)
	}
	v, ok := c.e.Evaluate()
	r := format(v, ok, c.none, c.places)
	if c.echo {
		fmt.Fprintf(c.out, "%v = %s\n", c.e, r)
		return
	}
	fmt.Fprintln(c.out, r)
}

func (c *calculator) known(name string) bool {
	reg := c.e.Registry()
	if _, ok := reg.Operator(name); ok {
		return true
	}
	_, ok := reg.Constant(name)
	return ok
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
