package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const busyTimeoutMs = 5000

// SQLiteRecorder stores entries in a SQLite table.
type SQLiteRecorder struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteRecorder opens (creating when needed) the database at path.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", filepath.Clean(path)))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMs)); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	r := &SQLiteRecorder{db: db}
	if err := r.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRecorder) ensureSchema() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		time INTEGER NOT NULL,
		command TEXT NOT NULL,
		signature TEXT,
		status TEXT NOT NULL,
		error TEXT,
		compute_units INTEGER,
		priority_price INTEGER,
		accounts TEXT
	)`)
	if err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	return nil
}

// Record inserts entry.
func (r *SQLiteRecorder) Record(entry Entry) error {
	accounts, err := json.Marshal(entry.Accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil {
		return sql.ErrConnDone
	}
	_, err = r.db.Exec(`INSERT INTO transactions
		(time, command, signature, status, error, compute_units, priority_price, accounts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Time.UnixMilli(), entry.Command, entry.Signature, entry.Status, entry.Error,
		int64(entry.ComputeUnits), int64(entry.PriorityPrice), string(accounts))
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// Entries returns every stored entry in insertion order.
func (r *SQLiteRecorder) Entries() ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil {
		return nil, sql.ErrConnDone
	}
	rows, err := r.db.Query(`SELECT time, command, signature, status, error, compute_units, priority_price, accounts
		FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			ms                int64
			units, price      int64
			sig, errText, acc sql.NullString
			entry             Entry
		)
		if err := rows.Scan(&ms, &entry.Command, &sig, &entry.Status, &errText, &units, &price, &acc); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		entry.Time = time.UnixMilli(ms).UTC()
		entry.Signature = sig.String
		entry.Error = errText.String
		entry.ComputeUnits = uint32(units)
		entry.PriorityPrice = uint64(price)
		if acc.Valid && acc.String != "" && acc.String != "null" {
			if err := json.Unmarshal([]byte(acc.String), &entry.Accounts); err != nil {
				return nil, fmt.Errorf("decode accounts: %w", err)
			}
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Close releases the database connection.
func (r *SQLiteRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}
