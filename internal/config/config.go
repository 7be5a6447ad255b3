package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// CategoriesPath points at the JSON category catalog. When
	// DatabasePath is set the catalog loads from that SQLite word pack
	// instead.
	CategoriesPath string `mapstructure:"categories_path" yaml:"categories_path"`
	DatabasePath   string `mapstructure:"database_path" yaml:"database_path"`

	Game Game `mapstructure:"game" yaml:"game"`
}

// Game holds the gameplay constants the room engine runs under.
type Game struct {
	RoundDuration    time.Duration `mapstructure:"round_duration" yaml:"round_duration"`
	FinalWarningLead time.Duration `mapstructure:"final_warning_lead" yaml:"final_warning_lead"`
	RoundsPerMatch   int           `mapstructure:"rounds_per_match" yaml:"rounds_per_match"`
	AnswersPerRound  int           `mapstructure:"answers_per_round" yaml:"answers_per_round"`
	RoomCapacity     int           `mapstructure:"room_capacity" yaml:"room_capacity"`
	IdleTimeout      time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	ReapInterval     time.Duration `mapstructure:"reap_interval" yaml:"reap_interval"`
	InterRoundDelay  time.Duration `mapstructure:"inter_round_delay" yaml:"inter_round_delay"`
	RestartDelay     time.Duration `mapstructure:"restart_delay" yaml:"restart_delay"`
	CooldownWindow   time.Duration `mapstructure:"cooldown_window" yaml:"cooldown_window"`
	LeaderboardSize  int           `mapstructure:"leaderboard_size" yaml:"leaderboard_size"`
	NearSimilarity   float64       `mapstructure:"near_similarity" yaml:"near_similarity"`
	NearMinLength    int           `mapstructure:"near_min_length" yaml:"near_min_length"`
	GuessRatePerSec  float64       `mapstructure:"guess_rate_per_sec" yaml:"guess_rate_per_sec"`
	GuessBurst       int           `mapstructure:"guess_burst" yaml:"guess_burst"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		CategoriesPath:    "data/categories.json",
		Game: Game{
			RoundDuration:    90 * time.Second,
			FinalWarningLead: 10 * time.Second,
			RoundsPerMatch:   5,
			AnswersPerRound:  5,
			RoomCapacity:     8,
			IdleTimeout:      3 * time.Minute,
			ReapInterval:     30 * time.Second,
			InterRoundDelay:  3 * time.Second,
			RestartDelay:     10 * time.Second,
			CooldownWindow:   10 * time.Minute,
			LeaderboardSize:  10,
			NearSimilarity:   0.85,
			NearMinLength:    4,
			GuessRatePerSec:  5,
			GuessBurst:       10,
		},
	}
}
