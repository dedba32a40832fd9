package tables

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gtank/blake2/blake2b"
	_ "modernc.org/sqlite"
)

// checksumSize is the BLAKE2b-256 digest length in bytes.
const checksumSize = 32

// DefaultCachePath returns the table cache location in the user's home
// directory, creating its parent directory if needed.
func DefaultCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".twophase")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}
	return filepath.Join(dir, "tables.db"), nil
}

func openDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// LoadOrBuild loads a cached, checksum-verified table set matching
// CacheVersion from path ("" uses DefaultCachePath), or builds a fresh one
// and persists it when the cache is missing, stale, or corrupt. A failure
// to persist the freshly built tables is logged and the in-memory tables
// are still returned. progress is forwarded to Build only when a build is
// actually needed.
func LoadOrBuild(ctx context.Context, path string, progress chan<- Progress) (*Tables, error) {
	if path == "" {
		var err error
		path, err = DefaultCachePath()
		if err != nil {
			return nil, err
		}
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if t, ok := loadCached(db); ok {
		if progress != nil {
			close(progress)
		}
		return t, nil
	}

	t, err := Build(progress)
	if err != nil {
		return nil, err
	}
	if err := store(db, t); err != nil {
		log.Printf("persist table cache: %v (continuing with in-memory tables)", err)
	}
	return t, nil
}

// loadCached returns the cached tables for CacheVersion if present and the
// stored checksum matches the blob; any mismatch or error is treated as a
// cache miss rather than a fatal error, since a rebuild always recovers.
func loadCached(db *sql.DB) (*Tables, bool) {
	var checksum, blob []byte
	err := db.QueryRow(
		"SELECT checksum, blob FROM table_cache WHERE cache_version = ?",
		CacheVersion,
	).Scan(&checksum, &blob)
	if err != nil {
		return nil, false
	}
	if !bytes.Equal(checksum, checksumOf(blob)) {
		return nil, false
	}
	t, err := decodeTables(blob)
	if err != nil {
		return nil, false
	}
	return t, true
}

func store(db *sql.DB, t *Tables) error {
	blob := encodeTables(t)
	_, err := db.Exec(
		"INSERT OR REPLACE INTO table_cache (cache_version, checksum, blob, built_at) VALUES (?, ?, ?, ?)",
		CacheVersion, checksumOf(blob), blob, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func checksumOf(blob []byte) []byte {
	d, err := blake2b.NewDigest(nil, nil, nil, checksumSize)
	if err != nil {
		// Only fails for an out-of-range digest size, which checksumSize
		// never is; a panic here would mean the constant itself is wrong.
		panic(err)
	}
	d.Write(blob)
	return d.Sum(nil)
}

// encodeTables packs every move and pruning table into a single blob in a
// fixed field order. There's no need to match any external wire format:
// encodeTables/decodeTables are this package's own private contract.
func encodeTables(t *Tables) []byte {
	var buf bytes.Buffer
	writeMoveTable(&buf, t.Phase1Twist)
	writeMoveTable(&buf, t.Phase1Flip)
	writeMoveTable(&buf, t.Phase1Slice)
	writeMoveTable(&buf, t.Phase2Corner)
	writeMoveTable(&buf, t.Phase2Edge8)
	writeMoveTable(&buf, t.Phase2Slice)
	writeMoveTable(&buf, t.UEdges)
	writeMoveTable(&buf, t.DEdges)
	writePruneTable(&buf, t.PruneTwistSlice)
	writePruneTable(&buf, t.PruneFlipSlice)
	writePruneTable(&buf, t.PruneCornerSlice)
	writePruneTable(&buf, t.PruneEdge8Slice)
	return buf.Bytes()
}

func writeMoveTable(buf *bytes.Buffer, m MoveTable) {
	rows := uint32(len(m))
	cols := uint32(0)
	if rows > 0 {
		cols = uint32(len(m[0]))
	}
	binary.Write(buf, binary.LittleEndian, rows)
	binary.Write(buf, binary.LittleEndian, cols)
	flat := make([]uint16, 0, int(rows)*int(cols))
	for _, row := range m {
		flat = append(flat, row...)
	}
	binary.Write(buf, binary.LittleEndian, flat)
}

func readMoveTable(r *bytes.Reader) (MoveTable, error) {
	var rows, cols uint32
	if err := binary.Read(r, binary.LittleEndian, &rows); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &cols); err != nil {
		return nil, err
	}
	flat := make([]uint16, int(rows)*int(cols))
	if err := binary.Read(r, binary.LittleEndian, flat); err != nil {
		return nil, err
	}
	m := make(MoveTable, rows)
	for i := range m {
		m[i] = flat[int(i)*int(cols) : int(i+1)*int(cols)]
	}
	return m, nil
}

func writePruneTable(buf *bytes.Buffer, p PruneTable) {
	binary.Write(buf, binary.LittleEndian, uint32(p.sizeB))
	binary.Write(buf, binary.LittleEndian, uint32(p.total))
	binary.Write(buf, binary.LittleEndian, uint32(len(p.data)))
	buf.Write(p.data)
}

func readPruneTable(r *bytes.Reader) (PruneTable, error) {
	var sizeB, total, dataLen uint32
	if err := binary.Read(r, binary.LittleEndian, &sizeB); err != nil {
		return PruneTable{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &total); err != nil {
		return PruneTable{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &dataLen); err != nil {
		return PruneTable{}, err
	}
	data := make([]byte, dataLen)
	if _, err := io.ReadFull(r, data); err != nil {
		return PruneTable{}, err
	}
	return PruneTable{data: data, sizeB: int(sizeB), total: int(total)}, nil
}

func decodeTables(blob []byte) (t *Tables, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("corrupt table cache: %v", rec)
		}
	}()

	r := bytes.NewReader(blob)
	t = &Tables{}
	fields := []*MoveTable{
		&t.Phase1Twist, &t.Phase1Flip, &t.Phase1Slice,
		&t.Phase2Corner, &t.Phase2Edge8, &t.Phase2Slice,
		&t.UEdges, &t.DEdges,
	}
	for _, f := range fields {
		mt, err := readMoveTable(r)
		if err != nil {
			return nil, err
		}
		*f = mt
	}
	prunes := []*PruneTable{
		&t.PruneTwistSlice, &t.PruneFlipSlice, &t.PruneCornerSlice, &t.PruneEdge8Slice,
	}
	for _, f := range prunes {
		pt, err := readPruneTable(r)
		if err != nil {
			return nil, err
		}
		*f = pt
	}
	return t, nil
}
