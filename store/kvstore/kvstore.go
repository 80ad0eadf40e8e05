package kvstore

import (
	"fmt"

	"github.com/golang/snappy"

	"github.com/emberledger/ember/common"
	"github.com/emberledger/ember/store"
	"github.com/emberledger/ember/store/database"
	"github.com/emberledger/ember/wire"
)

// NewKVStore create a new instance of KVStore.
func NewKVStore(db database.Database) store.Store {
	return &KVStore{db}
}

// KVStore is a Database wrapped with the wire codec. Values are snappy
// compressed on disk.
type KVStore struct {
	db database.Database
}

// Put upserts key/value into DB
func (store *KVStore) Put(key common.Bytes, value wire.Encoder) error {
	encoded := wire.EncodeToBytes(value)
	return store.db.Put(key, snappy.Encode(nil, encoded))
}

// Delete deletes key entry from DB
func (store *KVStore) Delete(key common.Bytes) error {
	return store.db.Delete(key)
}

// Get looks up DB with key and decodes the result into value (passed by reference)
func (store *KVStore) Get(key common.Bytes, value wire.Decoder) error {
	compressed, err := store.db.Get(key)
	if err != nil {
		return err
	}
	encoded, err := snappy.Decode(nil, compressed)
	if err != nil {
		return fmt.Errorf("corrupt value for key %v: %v", key, err)
	}
	return wire.DecodeFromBytes(encoded, value)
}
