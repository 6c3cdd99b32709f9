package config

type Identity struct {
	// Firebase 服務帳戶憑證檔路徑，空字串時使用 ADC
	CredentialsFile string `mapstructure:"CREDENTIALS_FILE" json:"credentials_file" yaml:"credentials_file"`
	// 員工登入帳號必須以此結尾，例如 "@fieldforce.in"
	LoginDomain string `mapstructure:"LOGIN_DOMAIN" json:"login_domain" yaml:"login_domain"`
	// 員工 JWT 有效時間（小時）
	TokenTTLHours int `mapstructure:"TOKEN_TTL_HOURS" json:"token_ttl_hours" yaml:"token_ttl_hours"`
}
