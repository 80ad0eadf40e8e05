package report

import (
	"github.com/spf13/viper"

	"github.com/emberledger/ember/cmd/embercli/cmd/utils"
	"github.com/emberledger/ember/common"
	"github.com/emberledger/ember/store/database"
	"github.com/emberledger/ember/store/database/backend"
	"github.com/emberledger/ember/store/reportstore"
)

// openReportStore opens the local archive in the --data directory using the
// configured backend.
func openReportStore() (*reportstore.ReportStore, database.Database) {
	if len(dataFlag) == 0 {
		utils.Error("The --data directory is required\n")
	}

	var db database.Database
	var err error
	switch viper.GetString(common.CfgStorageBackend) {
	case "leveldb":
		db, err = backend.NewLDBDatabase(dataFlag,
			viper.GetInt(common.CfgStorageCacheSize), viper.GetInt(common.CfgStorageFileHandles))
	case "badger":
		db, err = backend.NewBadgerDatabase(dataFlag)
	default:
		utils.Error("Unknown storage backend: %s\n", viper.GetString(common.CfgStorageBackend))
	}
	if err != nil {
		utils.Error("Failed to open database at %s: %v\n", dataFlag, err)
	}
	return reportstore.NewReportStore(db), db
}
