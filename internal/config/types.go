package config

// Config is the root configuration structure for hookline.
// Serialised to ~/.hookline/config.json; every key can also be supplied from
// the environment with the HOOKLINE_ prefix (dots become underscores).
type Config struct {
	Channels ChannelsConfig `mapstructure:"channels" json:"channels"`
	Forge    ForgeConfig    `mapstructure:"forge"    json:"forge"`
	Log      LogConfig      `mapstructure:"log"      json:"log"`
	Policy   PolicyConfig   `mapstructure:"policy"   json:"policy"`
}

// ChannelsConfig holds the two outbound Discord webhook endpoints.
type ChannelsConfig struct {
	// StaffURL receives events triggered by repository staff.
	StaffURL string `mapstructure:"staff_url"    json:"staff_url"`
	// ExternalURL receives events triggered by external contributors.
	ExternalURL string `mapstructure:"external_url" json:"external_url"`
}

// ForgeConfig holds credentials for the permission-lookup API.
type ForgeConfig struct {
	// Provider is "github" (default) or "gitlab".
	Provider string `mapstructure:"provider" json:"provider"`
	Token    string `mapstructure:"token"    json:"token"`
	// Host allows enterprise/self-hosted instances (e.g. github.mycompany.com).
	Host string `mapstructure:"host"     json:"host"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Path string `mapstructure:"path" json:"path"`
}

// PolicyConfig points at an optional YAML policy override file.
type PolicyConfig struct {
	Path string `mapstructure:"path" json:"path"`
}
