// Package cache provides a bbolt-backed store for computed spectra,
// so repeated CLI invocations can skip the transform.
package cache

import (
	"encoding/json"
	"fmt"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the package logging variable.
var log = logging.MustGetLogger("cache")

// bucket is the bucket name for all cached results.
var bucket = []byte("spectra")

// Result stores a computed spectrum together with the construction
// parameters it was computed from.
type Result struct {
	Order    int       `json:"order"`
	Spectrum []float64 `json:"spectrum"`
}

// IO reads and writes results. A nil database disables the cache and
// turns every operation into a no-op.
type IO struct {
	db *bolt.DB
}

// NewIO creates a new IO on top of an open database.
func NewIO(db *bolt.DB) *IO {
	return &IO{db: db}
}

// key derives the storage key for a matrix order.
func key(order int) []byte {
	return []byte(fmt.Sprintf("order-%d", order))
}

// Save serializes the result and stores it under its order key.
func (s *IO) Save(r *Result) error {
	if s.db == nil {
		return nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		log.Error("Error serializing result", err)
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		return b.Put(key(r.Order), data)
	})
	if err != nil {
		log.Error("Error saving result", err)
	}
	return err
}

// Load returns the cached result for an order, or nil if the cache
// holds none.
func (s *IO) Load(order int) (*Result, error) {
	if s.db == nil {
		return nil, nil
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		v := b.Get(key(order))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, err
	}

	var r *Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	log.Noticef("Found cached spectrum (order=%v)", r.Order)
	return r, nil
}
