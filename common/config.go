package common

import (
	"github.com/spf13/viper"
)

const (
	// CfgStorageDataPath defines the directory holding the local archives.
	CfgStorageDataPath = "storage.dataPath"
	// CfgStorageBackend selects the database backend (leveldb | badger).
	CfgStorageBackend = "storage.backend"
	// CfgStorageCacheSize sets the database cache size in MB.
	CfgStorageCacheSize = "storage.cacheSize"
	// CfgStorageFileHandles limits the open file handles of the database.
	CfgStorageFileHandles = "storage.fileHandles"

	// CfgLogLevels sets the log level.
	CfgLogLevels = "log.levels"
	// CfgLogDebug enables debug level logging.
	CfgLogDebug = "log.debug"
)

func init() {
	viper.SetDefault(CfgStorageBackend, "leveldb")
	viper.SetDefault(CfgStorageCacheSize, 16)
	viper.SetDefault(CfgStorageFileHandles, 16)
	viper.SetDefault(CfgLogDebug, false)
}
