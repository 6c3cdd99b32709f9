package config

type FormLimit struct {
	// 單一 IP 在窗口內可送出的公開表單次數
	Limit int `mapstructure:"LIMIT" json:"limit" yaml:"limit"`
	// 窗口長度（秒）
	WindowSeconds int64 `mapstructure:"WINDOW_SECONDS" json:"window_seconds" yaml:"window_seconds"`
	// 列表快取 TTL（秒）
	ListingTTLSeconds int64 `mapstructure:"LISTING_TTL_SECONDS" json:"listing_ttl_seconds" yaml:"listing_ttl_seconds"`
}
