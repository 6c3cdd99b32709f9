package config

type Mail struct {
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Username string `mapstructure:"USERNAME" json:"username" yaml:"username"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	// 每日出勤摘要收件人
	DigestTo string `mapstructure:"DIGEST_TO" json:"digest_to" yaml:"digest_to"`
}
