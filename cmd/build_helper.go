package main

import (
	"github.com/rmohr/featgraph/pkg/api/featgraph"
	"github.com/rmohr/featgraph/pkg/model"
)

// buildSettings merges the config file with the command line. Explicitly
// set flags win over the file, the file wins over flag defaults.
func buildSettings(opts buildOpts, oracleOpts oracleHelperOpts, changed func(string) bool) (*featgraph.Config, error) {
	config := &featgraph.Config{}
	if opts.config != "" {
		var err error
		if config, err = model.LoadConfig(opts.config); err != nil {
			return nil, err
		}
	}
	if changed("workers") || config.Workers == 0 {
		config.Workers = opts.workers
	}
	if changed("oracle") || config.Oracle == "" {
		config.Oracle = oracleOpts.oracle
	}
	if changed("output") || config.Output == "" {
		config.Output = opts.output
	}
	return config, nil
}

func outputPath(name string, output string) (string, error) {
	if output != "" {
		return output, nil
	}
	return model.DefaultOutput(name)
}
