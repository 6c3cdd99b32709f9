package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Identity  Identity        `mapstructure:"IDENTITY" json:"identity" yaml:"identity"`
	Storage   Storage         `mapstructure:"STORAGE" json:"storage" yaml:"storage"`
	Mail      Mail            `mapstructure:"MAIL" json:"mail" yaml:"mail"`
	FormLimit FormLimit       `mapstructure:"FORM_LIMIT" json:"form_limit" yaml:"form_limit"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
