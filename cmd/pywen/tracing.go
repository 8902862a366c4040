package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/PAMPAS-Lab/Pywen/pkg/telemetry"
	"github.com/PAMPAS-Lab/Pywen/pkg/version"
)

// initTracing initializes the OpenTelemetry tracing system from config.
func initTracing(ctx context.Context) (func(context.Context) error, error) {
	config := telemetry.Config{
		Enabled:        viper.GetBool("tracing.enabled"),
		ServiceName:    "pywen",
		ServiceVersion: version.Get().Version,
		SamplerType:    viper.GetString("tracing.sampler"),
		SamplerRatio:   viper.GetFloat64("tracing.ratio"),
	}
	return telemetry.InitTracer(ctx, config)
}
