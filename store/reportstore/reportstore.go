// Package reportstore archives era reports by era index. Reports are
// immutable once produced, so reads are served from an LRU cache in front
// of the database.
package reportstore

import (
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru"
	log "github.com/sirupsen/logrus"

	"github.com/emberledger/ember/common"
	"github.com/emberledger/ember/core"
	"github.com/emberledger/ember/store"
	"github.com/emberledger/ember/store/database"
	"github.com/emberledger/ember/store/kvstore"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "reportstore"})

const reportCacheSize = 256

var reportKeyPrefix = []byte("er/")

// ReportStore is an era-indexed archive of EraReports.
type ReportStore struct {
	db    database.Database
	store store.Store
	cache *lru.Cache // EraID -> *core.EraReport
}

// NewReportStore creates a ReportStore on top of db.
func NewReportStore(db database.Database) *ReportStore {
	cache, err := lru.New(reportCacheSize)
	if err != nil {
		logger.Panicf("Failed to create report cache: %v", err)
	}
	return &ReportStore{
		db:    db,
		store: kvstore.NewKVStore(db),
		cache: cache,
	}
}

// reportKey builds the database key of an era. The era index is big-endian
// so that keys sort in era order.
func reportKey(era core.EraID) common.Bytes {
	key := make([]byte, len(reportKeyPrefix)+8)
	copy(key, reportKeyPrefix)
	binary.BigEndian.PutUint64(key[len(reportKeyPrefix):], uint64(era))
	return key
}

// PutReport archives the report of the given era.
func (rs *ReportStore) PutReport(era core.EraID, report *core.EraReport) error {
	if err := rs.store.Put(reportKey(era), report); err != nil {
		return err
	}
	rs.cache.Add(era, report.Copy())
	logger.Debugf("Archived report, era: %v, %v", era, report)
	return nil
}

// GetReport loads the report of the given era. Returns
// store.ErrKeyNotFound if the era has not been archived.
func (rs *ReportStore) GetReport(era core.EraID) (*core.EraReport, error) {
	if cached, ok := rs.cache.Get(era); ok {
		return cached.(*core.EraReport).Copy(), nil
	}
	report := core.EmptyEraReport()
	if err := rs.store.Get(reportKey(era), report); err != nil {
		return nil, err
	}
	rs.cache.Add(era, report.Copy())
	return report, nil
}

// HasReport checks whether the given era has been archived.
func (rs *ReportStore) HasReport(era core.EraID) (bool, error) {
	if rs.cache.Contains(era) {
		return true, nil
	}
	return rs.db.Has(reportKey(era))
}

// DeleteReport removes the report of the given era.
func (rs *ReportStore) DeleteReport(era core.EraID) error {
	rs.cache.Remove(era)
	return rs.store.Delete(reportKey(era))
}
