package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// source loads one configuration layer. resolved holds the merge of every
// earlier layer. A nil layer with a nil error means the source had nothing
// to contribute.
type source struct {
	name string
	load func(resolved *StructuredConfig) (*StructuredConfig, error)
}

type configBuilder struct {
	sources []source
}

func newConfigBuilder(sources ...source) *configBuilder {
	return &configBuilder{sources: sources}
}

func envSource() source {
	return source{name: "env", load: func(*StructuredConfig) (*StructuredConfig, error) {
		cfg := &StructuredConfig{}
		if err := parseEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}}
}

func flagSource(args []string) source {
	return source{name: "flags", load: func(*StructuredConfig) (*StructuredConfig, error) {
		return parseFlags(args)
	}}
}

// jsonSource reads the file named by the JSON path resolved so far.
func jsonSource() source {
	return source{name: "json", load: func(resolved *StructuredConfig) (*StructuredConfig, error) {
		if resolved.JSONFilePath == "" {
			return nil, nil
		}
		return parseJSON(resolved.JSONFilePath)
	}}
}

// build merges the layers in order: a non-zero field of a later layer
// overrides the same field of an earlier one. Every failing source is
// reported, not just the first.
func (b *configBuilder) build() (*StructuredConfig, error) {
	resolved := new(StructuredConfig)

	var errs error
	for _, src := range b.sources {
		layer, err := src.load(resolved)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", src.name, err))
			continue
		}
		if layer == nil {
			continue
		}

		if err = mergo.Merge(resolved, layer, mergo.WithOverride); err != nil {
			errs = errors.Join(errs, fmt.Errorf("merging %s: %w", src.name, err))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("error occured during building config: %w", errs)
	}

	resolved.applyDefaults()

	if err := resolved.validate(); err != nil {
		return nil, err
	}

	return resolved, nil
}
