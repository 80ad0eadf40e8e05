package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberledger/ember/common"
	"github.com/emberledger/ember/core"
	"github.com/emberledger/ember/crypto"
	"github.com/emberledger/ember/store"
	"github.com/emberledger/ember/store/database/backend"
	"github.com/emberledger/ember/wire"
)

func TestKVStoreRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	kv := NewKVStore(backend.NewMemDatabase())

	_, pk, err := crypto.GenerateKeyPair(crypto.KeyTagEd25519)
	require.Nil(err)

	report := core.EmptyEraReport()
	report.Equivocators = []crypto.PublicKey{pk}
	report.Rewards.Put(pk, wire.NewU512FromUint64(1000000000))

	key := common.Bytes("report/42")
	require.Nil(kv.Put(key, report))

	loaded := core.EmptyEraReport()
	require.Nil(kv.Get(key, loaded))
	assert.Equal(report, loaded)

	require.Nil(kv.Delete(key))
	err = kv.Get(key, loaded)
	assert.Equal(store.ErrKeyNotFound, err)
}

func TestKVStoreMissingKey(t *testing.T) {
	assert := assert.New(t)

	kv := NewKVStore(backend.NewMemDatabase())
	var v wire.U512
	assert.Equal(store.ErrKeyNotFound, kv.Get(common.Bytes("absent"), &v))
}

func TestKVStoreCorruptValue(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	db := backend.NewMemDatabase()
	kv := NewKVStore(db)

	// Bytes that are not a valid snappy block.
	key := common.Bytes("k")
	require.Nil(db.Put(key, []byte{0xff, 0xff, 0xff, 0xff}))

	var v wire.U512
	assert.NotNil(kv.Get(key, &v))
}
