package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type Config struct {
	LogLevel        string            `yaml:"log-level" env:"HANGMAN_LOG_LEVEL" env-default:"info"`
	LogFile         string            `yaml:"log-file" env:"HANGMAN_LOG_FILE" env-default:"hangman.log"`
	NoClear         bool              `yaml:"no-clear" env:"HANGMAN_NO_CLEAR"`
	MaxWrongGuesses int               `yaml:"max-wrong-guesses" env:"HANGMAN_MAX_WRONG_GUESSES" env-default:"8"`
	Storage         Storage           `yaml:"storage"`
	Categories      []entity.Category `yaml:"categories"`
}

type Storage struct {
	Backend    string `yaml:"backend" env:"HANGMAN_STORAGE" env-default:"file"`
	FilePath   string `yaml:"file-path" env:"HANGMAN_SCORE_FILE" env-default:"score.txt"`
	SQLitePath string `yaml:"sqlite-path" env:"HANGMAN_SQLITE_PATH" env-default:"hangman.db"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"HANGMAN_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"HANGMAN_REDIS_PORT" env-default:"6379"`
	Key  string `yaml:"key" env:"HANGMAN_REDIS_KEY" env-default:"hangman:score"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
