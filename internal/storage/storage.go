package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/bitplanes/internal/board"
)

// ErrNotFound is returned when no snapshot exists for a game and ply.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is the state of one ply: the eight planes, the castling and
// en passant flags, and the Zobrist key of both.
type Snapshot struct {
	Planes [board.NumPlanes]board.Bitboard `json:"planes"`
	Flags  board.Flags                     `json:"flags"`
	Hash   uint64                          `json:"hash"`
}

// NewSnapshot captures a position and its flags.
func NewSnapshot(p *board.Position, f board.Flags) Snapshot {
	return Snapshot{
		Planes: p.Planes(),
		Flags:  f.Clone(),
		Hash:   board.Hash(p, f),
	}
}

// Position rebuilds the position held by the snapshot.
func (s Snapshot) Position() (*board.Position, error) {
	return board.FromPlanes(s.Planes)
}

// Storage wraps BadgerDB for persistent snapshot history.
type Storage struct {
	db *badger.DB
}

// Open opens or creates a store in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// OpenInMemory opens a store that keeps nothing on disk.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gamePrefix(game string) []byte {
	return []byte("game/" + game + "/ply/")
}

// Plies are zero-padded so that key order is ply order.
func plyKey(game string, ply int) []byte {
	return fmt.Appendf(gamePrefix(game), "%010d", ply)
}

func plyFromKey(game string, key []byte) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(string(key), string(gamePrefix(game))))
}

func validGame(game string) error {
	if game == "" || strings.Contains(game, "/") {
		return fmt.Errorf("invalid game id %q", game)
	}
	return nil
}

// Save stores the snapshot of one ply, replacing any previous one.
func (s *Storage) Save(game string, ply int, snap Snapshot) error {
	if err := validGame(game); err != nil {
		return err
	}
	if ply < 0 {
		return fmt.Errorf("invalid ply %d", ply)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(plyKey(game, ply), data)
	})
}

// Load returns the snapshot of one ply.
func (s *Storage) Load(game string, ply int) (Snapshot, error) {
	var snap Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(plyKey(game, ply))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %q ply %d: %w", game, ply, ErrNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})

	return snap, err
}

// Latest returns the highest stored ply of a game and its snapshot.
func (s *Storage) Latest(game string) (int, Snapshot, error) {
	var (
		ply  int
		snap Snapshot
	)

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := gamePrefix(game)
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration must seek past every key carrying the prefix.
		it.Seek(append(append([]byte{}, prefix...), 0xFF))
		if !it.ValidForPrefix(prefix) {
			return fmt.Errorf("game %q: %w", game, ErrNotFound)
		}
		item := it.Item()
		var err error
		if ply, err = plyFromKey(game, item.Key()); err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})

	return ply, snap, err
}

// plies calls fn for every stored ply of a game in ascending order.
func (s *Storage) plies(txn *badger.Txn, game string, withValues bool, fn func(ply int, item *badger.Item) error) error {
	prefix := gamePrefix(game)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = withValues
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		ply, err := plyFromKey(game, item.Key())
		if err != nil {
			return err
		}
		if err := fn(ply, item); err != nil {
			return err
		}
	}
	return nil
}

// Truncate deletes every ply at or after fromPly, as when moves are undone.
func (s *Storage) Truncate(game string, fromPly int) error {
	return s.db.Update(func(txn *badger.Txn) error {
		var keys [][]byte
		err := s.plies(txn, game, false, func(ply int, item *badger.Item) error {
			if ply >= fromPly {
				keys = append(keys, item.KeyCopy(nil))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByHash returns, in ascending order, the plies whose snapshot has the
// given Zobrist key.
func (s *Storage) FindByHash(game string, hash uint64) ([]int, error) {
	var found []int
	err := s.db.View(func(txn *badger.Txn) error {
		return s.plies(txn, game, true, func(ply int, item *badger.Item) error {
			var snap Snapshot
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &snap)
			}); err != nil {
				return err
			}
			if snap.Hash == hash {
				found = append(found, ply)
			}
			return nil
		})
	})
	return found, err
}
