package config

type Storage struct {
	// 履歷上傳的 GCS bucket
	ResumeBucket string `mapstructure:"RESUME_BUCKET" json:"resume_bucket" yaml:"resume_bucket"`
	// 對外可讀 URL 的 base，預設 https://storage.googleapis.com
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL" json:"public_base_url" yaml:"public_base_url"`
}
