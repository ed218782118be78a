package configs

import "time"

// Vault holds the limits enforced by the vault file functions.
type Vault struct {
	MaxFileBytes      int64         `env:"MAX_FILE_BYTES" envDefault:"10485760"`
	FreeQuotaBytes    int64         `env:"FREE_QUOTA_BYTES" envDefault:"524288000"`
	UploadURLTTL      time.Duration `env:"UPLOAD_URL_TTL" envDefault:"2h"`
	DownloadURLTTL    time.Duration `env:"DOWNLOAD_URL_TTL" envDefault:"120s"`
	MaxDownloadURLTTL time.Duration `env:"MAX_DOWNLOAD_URL_TTL" envDefault:"1h"`
	DefaultPageSize   int           `env:"DEFAULT_PAGE_SIZE" envDefault:"20"`
}
