package config

import "sync"

type StorageConfig struct {
	UploadDir   string
	MaxUploadMB int
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = &StorageConfig{
			UploadDir:   envStr("UPLOAD_DIR", "uploads"),
			MaxUploadMB: envInt("MAX_UPLOAD_MB", 32),
		}
	})
	return storageConfig
}
