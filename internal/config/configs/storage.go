package configs

// Storage configures the S3 compatible object store that keeps campaign
// images, beneficiary documents, KYC images and vault files. PublicURL is
// the base used to build public object links; when empty the endpoint is
// used.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey string `env:"SECRET_KEY" envDefault:"minioadmin"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	PublicURL string `env:"PUBLIC_URL"`

	ImagesBucket    string `env:"IMAGES_BUCKET" envDefault:"campaign-images"`
	DocumentsBucket string `env:"DOCUMENTS_BUCKET" envDefault:"campaign-documents"`
	KYCBucket       string `env:"KYC_BUCKET" envDefault:"kyc-documents"`
	VaultBucket     string `env:"VAULT_BUCKET" envDefault:"vault"`
}
