package gbcam

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Capture is a developed picture held in the archive.
type Capture struct {
	ID        string
	Name      string
	SHA1      string
	Registers Registers
	Tiles     []byte
}

// CaptureDB archives developed pictures together with the registers used.
type CaptureDB struct {
	db *sql.DB
}

// NewCaptureDB opens or creates the archive in file.
func NewCaptureDB(file string) (*CaptureDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS source (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, name TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS capture (id INTEGER PRIMARY KEY NOT NULL, uuid TEXT NOT NULL UNIQUE, source_id INTEGER NOT NULL, registers BLOB NOT NULL, tile BLOB NOT NULL, UNIQUE(source_id, registers), FOREIGN KEY(source_id) REFERENCES source(id))"); err != nil {
		return nil, err
	}

	return &CaptureDB{
		db: db,
	}, nil
}

func (db *CaptureDB) Close() error {
	return db.db.Close()
}

func (db *CaptureDB) addSource(sha, name string) (int64, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM source WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO source (sha1, name) VALUES (?, ?)", sha, name)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// AddCapture stores a developed picture and returns its identifier. Storing
// the same source with the same registers again returns the existing
// identifier.
func (db *CaptureDB) AddCapture(name, sha string, r *Registers, tiles []byte) (string, error) {
	if len(tiles) != TileBufferSize {
		return "", errBadBuffer
	}

	source, err := db.addSource(sha, name)
	if err != nil {
		return "", err
	}

	regs, err := r.MarshalBinary()
	if err != nil {
		return "", err
	}

	var id string
	switch err := db.db.QueryRow("SELECT uuid FROM capture WHERE source_id = ? AND registers = ?", source, regs).Scan(&id); err {
	case sql.ErrNoRows:
		id = uuid.New().String()
		if _, err := db.db.Exec("INSERT INTO capture (uuid, source_id, registers, tile) VALUES (?, ?, ?, ?)", id, source, regs, tiles); err != nil {
			return "", err
		}
		return id, nil
	case nil:
		return id, nil
	default:
		return "", err
	}
}

const captureQuery = "SELECT c.uuid, s.name, s.sha1, c.registers, c.tile FROM capture AS c JOIN source AS s ON c.source_id = s.id"

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCapture(row scanner) (*Capture, error) {
	var c Capture
	var regs []byte
	if err := row.Scan(&c.ID, &c.Name, &c.SHA1, &regs, &c.Tiles); err != nil {
		return nil, err
	}
	if err := c.Registers.UnmarshalBinary(regs); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCapture returns the capture with identifier id, or nil if there is
// no such capture.
func (db *CaptureDB) FindCapture(id string) (*Capture, error) {
	c, err := scanCapture(db.db.QueryRow(captureQuery+" WHERE c.uuid = ?", id))
	switch err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return c, nil
	default:
		return nil, err
	}
}

// Captures returns every capture in the order they were stored.
func (db *CaptureDB) Captures() ([]Capture, error) {
	rows, err := db.db.Query(captureQuery + " ORDER BY c.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var captures []Capture
	for rows.Next() {
		c, err := scanCapture(rows)
		if err != nil {
			return nil, err
		}
		captures = append(captures, *c)
	}
	return captures, rows.Err()
}
