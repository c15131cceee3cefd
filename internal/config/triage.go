package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvTriageQualityThreshold = "INTAKE_TRIAGE_QUALITY_THRESHOLD"
	EnvTriageMaxAttempts      = "INTAKE_TRIAGE_MAX_ATTEMPTS"
	EnvTriageBulkMaxAttempts  = "INTAKE_TRIAGE_BULK_MAX_ATTEMPTS"
	EnvTriageBulkWorkers      = "INTAKE_TRIAGE_BULK_WORKERS"
	EnvTriageMaxBatchSize     = "INTAKE_TRIAGE_MAX_BATCH_SIZE"
	EnvTriageGenerateTimeout  = "INTAKE_TRIAGE_GENERATE_TIMEOUT"
)

// TriageConfig holds quality gate and bulk processing parameters.
// BulkMaxAttempts is deliberately separate from MaxAttempts: bulk runs
// trade retry depth for throughput, and that tradeoff stays tunable
// rather than hard-coded.
type TriageConfig struct {
	QualityThreshold float64 `toml:"quality_threshold"`
	MaxAttempts      int     `toml:"max_attempts"`
	BulkMaxAttempts  int     `toml:"bulk_max_attempts"`
	BulkWorkers      int     `toml:"bulk_workers"`
	MaxBatchSize     int     `toml:"max_batch_size"`
	GenerateTimeout  string  `toml:"generate_timeout"`
}

// GenerateTimeoutDuration returns GenerateTimeout as a time.Duration.
func (c *TriageConfig) GenerateTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.GenerateTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *TriageConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *TriageConfig) Merge(overlay *TriageConfig) {
	if overlay.QualityThreshold != 0 {
		c.QualityThreshold = overlay.QualityThreshold
	}
	if overlay.MaxAttempts != 0 {
		c.MaxAttempts = overlay.MaxAttempts
	}
	if overlay.BulkMaxAttempts != 0 {
		c.BulkMaxAttempts = overlay.BulkMaxAttempts
	}
	if overlay.BulkWorkers != 0 {
		c.BulkWorkers = overlay.BulkWorkers
	}
	if overlay.MaxBatchSize != 0 {
		c.MaxBatchSize = overlay.MaxBatchSize
	}
	if overlay.GenerateTimeout != "" {
		c.GenerateTimeout = overlay.GenerateTimeout
	}
}

func (c *TriageConfig) loadDefaults() {
	if c.QualityThreshold == 0 {
		c.QualityThreshold = 0.85
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.BulkMaxAttempts == 0 {
		c.BulkMaxAttempts = 1
	}
	if c.BulkWorkers == 0 {
		c.BulkWorkers = 5
	}
	if c.MaxBatchSize == 0 {
		c.MaxBatchSize = 100
	}
	if c.GenerateTimeout == "" {
		c.GenerateTimeout = "60s"
	}
}

func (c *TriageConfig) loadEnv() {
	if v := os.Getenv(EnvTriageQualityThreshold); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			c.QualityThreshold = threshold
		}
	}

	setInt := func(envVar string, target *int) {
		if v := os.Getenv(envVar); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*target = n
			}
		}
	}

	setInt(EnvTriageMaxAttempts, &c.MaxAttempts)
	setInt(EnvTriageBulkMaxAttempts, &c.BulkMaxAttempts)
	setInt(EnvTriageBulkWorkers, &c.BulkWorkers)
	setInt(EnvTriageMaxBatchSize, &c.MaxBatchSize)

	if v := os.Getenv(EnvTriageGenerateTimeout); v != "" {
		c.GenerateTimeout = v
	}
}

func (c *TriageConfig) validate() error {
	if c.QualityThreshold < 0 || c.QualityThreshold > 1 {
		return fmt.Errorf("invalid quality_threshold: %f", c.QualityThreshold)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("invalid max_attempts: %d", c.MaxAttempts)
	}
	if c.BulkMaxAttempts < 1 {
		return fmt.Errorf("invalid bulk_max_attempts: %d", c.BulkMaxAttempts)
	}
	if c.BulkWorkers < 1 {
		return fmt.Errorf("invalid bulk_workers: %d", c.BulkWorkers)
	}
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("invalid max_batch_size: %d", c.MaxBatchSize)
	}
	if _, err := time.ParseDuration(c.GenerateTimeout); err != nil {
		return fmt.Errorf("invalid generate_timeout: %w", err)
	}
	return nil
}
