// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/SrVladyslav/falquor-backend/internal/logging"
)

const defaultServiceName = "falquor-backend"

type Config struct {
	ServiceName      string
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	// SampleRatio is applied to root spans, children follow their parent.
	// Values outside (0, 1) record every trace.
	SampleRatio float64
	Logger      logging.LoggerInterface

	Enabled bool
}

func (c *Config) serviceName() string {
	if c.ServiceName == "" {
		return defaultServiceName
	}
	return c.ServiceName
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, sampleRatio float64, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.ServiceName = defaultServiceName
	c.OtelGRPCEndpoint = otelGRPCEndpoint
	c.OtelHTTPEndpoint = otelHTTPEndpoint
	c.SampleRatio = sampleRatio
	c.Logger = logger
	c.Enabled = enabled

	return c
}

func NewNoopConfig() *Config {
	c := new(Config)
	c.Enabled = false
	return c
}
