package app

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultRepoURL = "https://github.com/camcaswell/sir-robin"
	defaultPrefix  = "!"
	defaultFeedURL = "https://blog.python.org/feeds/posts/default?alt=rss"
)

// Config holds the process-wide configuration. RepoURL is the base URL of
// the hosted repository that source links point at; it is read once and
// never mutated.
type Config struct {
	RepoURL     string `yaml:"repository_url"`
	Prefix      string `yaml:"command_prefix"`
	NewsFeedURL string `yaml:"news_feed_url"`
	DatabaseURL string `yaml:"database_url"`
}

// LoadConfig reads a YAML config file, falling back to defaults when the
// file does not exist. DATABASE_URL in the environment overrides the
// configured database URL.
func LoadConfig(path string) (Config, error) {
	config := Config{
		RepoURL:     defaultRepoURL,
		Prefix:      defaultPrefix,
		NewsFeedURL: defaultFeedURL,
	}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return config, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, err
		}
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.DatabaseURL = url
	}
	config.RepoURL = strings.TrimRight(config.RepoURL, "/")
	if config.Prefix == "" {
		config.Prefix = defaultPrefix
	}
	return config, nil
}
