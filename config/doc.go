// Package config provides configuration loading and validation for
// execkit-based tools.
//
// It uses Viper to load configuration from files and environment variables.
// Config files are discovered in project-local locations first
// (./.{tool}.yml, ./{tool}.yml, ./config.yml) and then in the user config
// directory ({XDG_CONFIG_HOME}/{tool}/config.yml). A .env file, when
// present, is loaded via godotenv before environment binding.
//
// # Usage
//
//	var cfg config.Settings
//	if err := config.LoadConfig("mytool", &cfg); err != nil {
//	    return err
//	}
//	if err := cfg.Apply(); err != nil {
//	    return err
//	}
//
// Environment variables override file values using underscore-separated
// paths (e.g., LOGGING_LEVEL, ECHO_COLOR).
package config
