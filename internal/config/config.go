package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"goalforge/internal/plan"
)

type Config struct {
	Server   Server   `yaml:"server" json:"server"`
	Planning Planning `yaml:"planning" json:"planning"`
}

type Server struct {
	Addr    string `yaml:"addr" json:"addr"`
	DataDir string `yaml:"data_dir" json:"data_dir"`
}

// Planning holds the engine tunables. They mirror plan.PlanningConfig so the
// engine package stays free of yaml concerns.
type Planning struct {
	MaxPhasesPerGoal      int     `yaml:"max_phases_per_goal" json:"max_phases_per_goal"`
	MaxTasksPerPhase      int     `yaml:"max_tasks_per_phase" json:"max_tasks_per_phase"`
	DefaultWeeklyHours    float64 `yaml:"default_weekly_hours" json:"default_weekly_hours"`
	MinimumAdjustmentDays int     `yaml:"minimum_adjustment_days" json:"minimum_adjustment_days"`
}

func (p Planning) ToPlanningConfig() plan.PlanningConfig {
	return plan.PlanningConfig{
		MaxPhasesPerGoal:      p.MaxPhasesPerGoal,
		MaxTasksPerPhase:      p.MaxTasksPerPhase,
		DefaultWeeklyHours:    p.DefaultWeeklyHours,
		MinimumAdjustmentDays: p.MinimumAdjustmentDays,
	}
}

func (s *Server) ApplyDefaults() {
	if s.Addr == "" {
		s.Addr = ":8175"
	}
	if s.DataDir == "" {
		s.DataDir = "data"
	}
}

func (p *Planning) ApplyDefaults() {
	if p.MaxPhasesPerGoal == 0 {
		p.MaxPhasesPerGoal = plan.DefaultMaxPhasesPerGoal
	}
	if p.MaxTasksPerPhase == 0 {
		p.MaxTasksPerPhase = plan.DefaultMaxTasksPerPhase
	}
	if p.DefaultWeeklyHours == 0 {
		p.DefaultWeeklyHours = plan.DefaultWeeklyHours
	}
	if p.MinimumAdjustmentDays == 0 {
		p.MinimumAdjustmentDays = plan.DefaultMinimumAdjustmentDays
	}
}

func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Planning.ApplyDefaults()
}

func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
