package instrumentation

import (
	"fmt"
	"os"
	"strconv"
)

// Exporter names accepted by Config.MetricsExporter.
const (
	ExporterPrometheus = "prometheus"
	ExporterOTLP       = "otlp"
	ExporterStdout     = "stdout"
)

// Config holds the configuration for OpenTelemetry instrumentation.
type Config struct {
	// ServiceName is the name of the service (default: dayplan)
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Enabled determines if instrumentation is active (default: true)
	// Set to false via INSTRUMENTATION_ENABLED=false to disable metrics
	Enabled bool

	// MetricsExporter specifies the metrics exporter type
	// Options: "prometheus", "otlp", "stdout" (default: "prometheus")
	MetricsExporter string

	// OTLPEndpoint is the OTLP collector endpoint
	// Example: "localhost:4318" (without protocol prefix)
	OTLPEndpoint string

	// OTLPInsecure controls whether to use insecure HTTP for OTLP export
	// When false (default), uses TLS for secure transport
	OTLPInsecure bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ServiceName:     "dayplan",
		ServiceVersion:  "dev",
		Enabled:         true,
		MetricsExporter: ExporterPrometheus,
	}
}

// ConfigFromEnv builds a Config from environment variables, starting from
// the defaults. Recognized variables:
//
//	INSTRUMENTATION_ENABLED  "true"/"false"
//	METRICS_EXPORTER         "prometheus", "otlp" or "stdout"
//	OTLP_ENDPOINT            host:port of the OTLP collector
//	OTLP_INSECURE            "true"/"false"
func ConfigFromEnv() Config {
	config := DefaultConfig()

	config.Enabled = getEnvBool("INSTRUMENTATION_ENABLED", config.Enabled)
	config.MetricsExporter = getEnv("METRICS_EXPORTER", config.MetricsExporter)
	config.OTLPEndpoint = getEnv("OTLP_ENDPOINT", config.OTLPEndpoint)
	config.OTLPInsecure = getEnvBool("OTLP_INSECURE", config.OTLPInsecure)

	return config
}

// Validate checks the configuration for inconsistencies.
func (c Config) Validate() error {
	switch c.MetricsExporter {
	case ExporterPrometheus, ExporterStdout:
	case ExporterOTLP:
		if c.OTLPEndpoint == "" {
			return fmt.Errorf("OTLP endpoint is required when the otlp exporter is selected")
		}
	default:
		return fmt.Errorf("unknown metrics exporter %q", c.MetricsExporter)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
