// Package factory instantiates event sources by name, so binaries choose
// their traffic origin through config alone.
package factory

import (
	"fmt"
	"log"

	"NetSentry/internal/config"
	"NetSentry/internal/model"
	"NetSentry/internal/stats"
)

// SourceFactory defines a function that creates an event source from config.
// The collector lets sources account for observations they had to reject.
type SourceFactory func(cfg *config.Config, collector *stats.Collector) (model.EventSource, error)

// registry holds the mapping of source types to their factory functions.
var registry = make(map[string]SourceFactory)

// RegisterSource registers a new source type with its factory function.
func RegisterSource(name string, factory SourceFactory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("source type '%s' already registered", name))
	}
	registry[name] = factory
}

// Create instantiates every event source named in the engine config.
func Create(cfg *config.Config, collector *stats.Collector) ([]model.EventSource, error) {
	var sources []model.EventSource

	for _, name := range cfg.Engine.Sources {
		log.Printf("Creating event source of type '%s'", name)

		factory, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown source type: '%s'", name)
		}

		source, err := factory(cfg, collector)
		if err != nil {
			return nil, fmt.Errorf("error creating source type '%s': %w", name, err)
		}

		sources = append(sources, source)
	}

	return sources, nil
}
