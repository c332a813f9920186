package driving

import "github.com/docent-labs/docent/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Set updates a single dot-separated configuration key and persists it.
	Set(key, value string) error

	// SetAPIKey stores the API key for a cloud provider.
	SetAPIKey(provider domain.AIProvider, apiKey string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
