package config

// LogConfig defines the logger configuration options
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" validate:"omitempty,oneof=json console"`
	OutputFile  string `yaml:"output_file"`                                     // rotated file output, optional
	Environment string `yaml:"environment" validate:"omitempty,oneof=dev prod"` // dev forces console encoding
}

func GetDefaultLogConfig() LogConfig {
	return LogConfig{
		Level:       "info",
		Format:      "console",
		Environment: "dev",
	}
}
