package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/zephyrtronium/calcbrain"
	"gopkg.in/yaml.v3"
)

// config is the contents of a -config file.
//
//	constants:
//	  τ: 6.283185307179586
//	  c: 299792458
//	none: "-"
//	places: 4
type config struct {
	// Constants are added to the default registry, replacing defaults with
	// the same names.
	Constants map[string]float64 `yaml:"constants"`
	// None is printed when the stack has no value.
	None string `yaml:"none"`
	// Places is the number of decimal places in results, or -1 for all.
	Places int `yaml:"places"`
}

func defaultConfig() config {
	return config{None: "0", Places: -1}
}

// loadConfig reads a config file. Settings missing from the file keep their
// defaults.
func loadConfig(name string) (config, error) {
	f, err := os.Open(name)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	return readConfig(f, name)
}

func readConfig(r io.Reader, name string) (config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("reading config %s: %w", name, err)
	}
	for k := range cfg.Constants {
		if k == "" {
			return config{}, fmt.Errorf("reading config %s: constant with empty name", name)
		}
	}
	return cfg, nil
}

// registry creates the registry described by the config.
func (cfg config) registry() *calcbrain.Registry {
	if len(cfg.Constants) == 0 {
		return calcbrain.Default()
	}
	names := make([]string, 0, len(cfg.Constants))
	for k := range cfg.Constants {
		names = append(names, k)
	}
	sort.Strings(names)
	opts := make([]calcbrain.RegistryOption, 0, len(names))
	for _, k := range names {
		opts = append(opts, calcbrain.DefineConstant(k, cfg.Constants[k]))
	}
	return calcbrain.NewRegistry(opts...)
}
