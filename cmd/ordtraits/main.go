package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sat20-labs/ordinals/common"
	"github.com/sat20-labs/ordinals/config"
	"github.com/sat20-labs/ordinals/indexer/ordinals"
	"github.com/sat20-labs/ordinals/indexer/subsidy"
	"gopkg.in/yaml.v2"
)

type options struct {
	env      string
	chain    string
	format   string
	validate bool
	sats     []string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("ordtraits", flag.ContinueOnError)
	fs.StringVar(&opts.env, "env", "", "config file, the embedded dataset is used when empty")
	fs.StringVar(&opts.chain, "chain", "", "chain, overrides the config file")
	fs.StringVar(&opts.format, "format", "yaml", "output format, yaml or json")
	fs.BoolVar(&opts.validate, "validate", false, "check the subsidy table against the reward schedule")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: ordtraits [-env cfg] [-chain mainnet] [-format yaml|json] [-validate] <sat>...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch opts.format {
	case "yaml", "json":
	default:
		return nil, fmt.Errorf("unsupported format %s", opts.format)
	}
	opts.sats = fs.Args()
	if len(opts.sats) == 0 && !opts.validate {
		return nil, errors.New("no sat given")
	}
	return opts, nil
}

func loadTable(opts *options) (*subsidy.Table, string, error) {
	chain := common.ChainMainnet
	source := func(string) subsidy.SourceConfig { return subsidy.SourceConfig{} }
	if opts.env != "" {
		conf, err := config.LoadYamlConf(opts.env)
		if err != nil {
			return nil, "", err
		}
		chain = conf.Chain
		source = conf.Subsidy.Source
	}
	if opts.chain != "" {
		if !common.IsSupportedChain(opts.chain) {
			return nil, "", fmt.Errorf("unsupported chain %s", opts.chain)
		}
		chain = opts.chain
	}

	table, err := subsidy.NewRegistry(source).Table(chain)
	if err != nil {
		return nil, "", errors.Wrapf(err, "load %s subsidy table", chain)
	}
	return table, chain, nil
}

func encode(w io.Writer, format string, v interface{}) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// run prints the traits of every sat, reporting bad inputs on stderr and
// carrying on with the rest.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(stderr, err)
		}
		return 2
	}

	table, chain, err := loadTable(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	code := 0
	if opts.validate {
		report, err := subsidy.Validate(table, subsidy.NewSchedule(chain), 0, table.LastHeight())
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if err := encode(stdout, opts.format, report); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if !report.OK() {
			code = 1
		}
	}

	for _, input := range opts.sats {
		sat, err := ordinals.ParseSat(input, table)
		if err == nil {
			var traits *ordinals.Traits
			traits, err = ordinals.NewTraits(sat, table)
			if err == nil {
				err = encode(stdout, opts.format, traits)
			}
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", input, err)
			code = 1
		}
	}
	return code
}

func main() {
	common.Log.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
