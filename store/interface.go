package store

import (
	"errors"

	"github.com/emberledger/ember/common"
	"github.com/emberledger/ember/wire"
)

// ErrKeyNotFound is returned when the looked-up key is not in the store.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is the interface for key/value storage of wire-encodable values.
type Store interface {
	Put(key common.Bytes, value wire.Encoder) error
	Delete(key common.Bytes) error
	Get(key common.Bytes, value wire.Decoder) error
}
