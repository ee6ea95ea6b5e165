package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides config fields from environment variables. Deployment
// environments (containers, CI) tune the server without a config file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GOALFORGE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("GOALFORGE_DATA_DIR"); v != "" {
		c.Server.DataDir = v
	}
	if v := getEnvInt("GOALFORGE_MAX_PHASES_PER_GOAL"); v > 0 {
		c.Planning.MaxPhasesPerGoal = v
	}
	if v := getEnvInt("GOALFORGE_MAX_TASKS_PER_PHASE"); v > 0 {
		c.Planning.MaxTasksPerPhase = v
	}
	if v := getEnvFloat("GOALFORGE_DEFAULT_WEEKLY_HOURS"); v > 0 {
		c.Planning.DefaultWeeklyHours = v
	}
	if v := getEnvInt("GOALFORGE_MINIMUM_ADJUSTMENT_DAYS"); v >= 0 {
		c.Planning.MinimumAdjustmentDays = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return -1
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return -1
	}
	return n
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return -1
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return -1
	}
	return f
}
