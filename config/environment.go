package config

const (
	// Environment variable with the path of the config file
	ConfigFilePath = "ZONESEC_CONFIG_FILE"

	// Environment variables carrying Cloudflare credentials
	EnvAPIToken = "CF_API_TOKEN"
	EnvAPIEmail = "CF_API_EMAIL"
	EnvAPIKey   = "CF_API_KEY"
)
