package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"cpu-scheduler/internal/requests"
)

type SchedulerConfig struct {
	Port                                     int
	BodyLimit                                int
	RateLimitPerSecond                       float64
	RateLimitBurst                           int
	MetricsEnabled                           bool
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	MultilevelFeedbackQueueBoostInterval     int
	PriorityLowerIsHigher                    bool
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml (optional) once and exits on error.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads config.yaml from path, applying SCHEDULER_* environment
// overrides. A missing file is not an error; defaults are used instead.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetDefault("port", 9095)
	v.SetDefault("server.body_limit", 4*1024*1024)
	v.SetDefault("server.rate_limit.requests_per_second", 0)
	v.SetDefault("server.rate_limit.burst", 20)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("scheduler.round_robin.time_quantum", requests.DefaultTimeQuantum)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{1, 2, 4})
	v.SetDefault("scheduler.multilevel_feedback_queue.boost_interval", requests.DefaultBoostInterval)
	v.SetDefault("scheduler.priority.lower_is_higher", true)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.BodyLimit = v.GetInt("server.body_limit")
	cfg.RateLimitPerSecond = v.GetFloat64("server.rate_limit.requests_per_second")
	cfg.RateLimitBurst = v.GetInt("server.rate_limit.burst")
	cfg.MetricsEnabled = v.GetBool("metrics.enabled")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.MultilevelFeedbackQueueLevelsTimeQuantum = v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum")
	cfg.MultilevelFeedbackQueueBoostInterval = v.GetInt("scheduler.multilevel_feedback_queue.boost_interval")
	cfg.PriorityLowerIsHigher = v.GetBool("scheduler.priority.lower_is_higher")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid config: port %d out of range", c.Port)
	}
	if c.RateLimitPerSecond < 0 {
		return fmt.Errorf("invalid config: rate limit must not be negative, got %g", c.RateLimitPerSecond)
	}
	if c.RateLimitPerSecond > 0 && c.RateLimitBurst <= 0 {
		return fmt.Errorf("invalid config: rate limit burst must be positive, got %d", c.RateLimitBurst)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("invalid config: round robin time quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return errors.New("invalid config: multilevel feedback queue needs at least one level")
	}
	for i, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return fmt.Errorf("invalid config: multilevel feedback queue level %d time quantum must be positive, got %d", i, q)
		}
	}
	if c.MultilevelFeedbackQueueBoostInterval <= 0 {
		return fmt.Errorf("invalid config: boost interval must be positive, got %d", c.MultilevelFeedbackQueueBoostInterval)
	}
	return nil
}

// MLFQLevels builds the ladder from the configured quanta: every level is
// round robin except the last, which is FCFS.
func (c *SchedulerConfig) MLFQLevels() []requests.MLFQLevel {
	levels := make([]requests.MLFQLevel, len(c.MultilevelFeedbackQueueLevelsTimeQuantum))
	for i, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		levels[i] = requests.MLFQLevel{Quantum: q, Algorithm: requests.RoundRobin}
	}
	if n := len(levels); n > 0 {
		levels[n-1].Algorithm = requests.FirstComeFirstServe
	}
	return levels
}

// ApplyDefaults fills the parameters the request left out.
func (c *SchedulerConfig) ApplyDefaults(request *requests.SimulationRequest) {
	if request.Quantum == nil {
		quantum := c.RoundRobinTimeQuantum
		request.Quantum = &quantum
	}
	if request.PriorityLowerIsHigher == nil {
		lowerIsHigher := c.PriorityLowerIsHigher
		request.PriorityLowerIsHigher = &lowerIsHigher
	}
	if len(request.MLFQLevels) == 0 {
		request.MLFQLevels = c.MLFQLevels()
	}
	if request.BoostInterval == nil {
		boost := c.MultilevelFeedbackQueueBoostInterval
		request.BoostInterval = &boost
	}
}
