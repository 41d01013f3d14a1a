// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Defaults used when the configuration leaves a field unset.
const (
	DefaultAPIBase        = "https://forkify-api.herokuapp.com/api/v2/recipes"
	DefaultTimeout        = 10 * time.Second
	DefaultResultsPerPage = 10
	DefaultBookmarksKey   = "bookmarks"
	DefaultModalClose     = 2500 * time.Millisecond
)

// HTTPConfig holds settings for requests to the recipe API.
type HTTPConfig struct {
	// BaseURL is the recipes collection endpoint; ids and queries are
	// appended to it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey is sent as the key query parameter. Recipes uploaded with a key
	// are only visible to requests carrying the same key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Timeout bounds each request. A response arriving later is discarded.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// StorageConfig locates the local key/value store for bookmarks.
type StorageConfig struct {
	// Path is the SQLite database file. Empty selects an in-memory store.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// BookmarksKey is the key the bookmark list is stored under.
	BookmarksKey string `json:"bookmarks_key" yaml:"bookmarks_key" mapstructure:"bookmarks_key"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ResultsPerPage int           `json:"results_per_page" yaml:"results_per_page" mapstructure:"results_per_page"`
	ModalClose     time.Duration `json:"modal_close" yaml:"modal_close" mapstructure:"modal_close"`
	NoColor        bool          `json:"no_color" yaml:"no_color" mapstructure:"no_color"`
}

// Config groups all application settings.
type Config struct {
	API     HTTPConfig    `json:"api" yaml:"api" mapstructure:"api"`
	Storage StorageConfig `json:"storage" yaml:"storage" mapstructure:"storage"`
	UI      UIConfig      `json:"ui" yaml:"ui" mapstructure:"ui"`
}

// WithDefaults returns a copy with zero fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIBase
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = "forkify/dev"
	}
	if c.Storage.BookmarksKey == "" {
		c.Storage.BookmarksKey = DefaultBookmarksKey
	}
	if c.UI.ResultsPerPage <= 0 {
		c.UI.ResultsPerPage = DefaultResultsPerPage
	}
	if c.UI.ModalClose <= 0 {
		c.UI.ModalClose = DefaultModalClose
	}
	return c
}
