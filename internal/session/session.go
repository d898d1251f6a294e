// Package session persists playback state (volume, last track, position)
// between runs of the front end.
package session

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "yakoplay"
	dbFileName   = "yakoplay.db"
	saveDebounce = 500 * time.Millisecond
)

// State is the persisted session snapshot.
type State struct {
	Volume    float64
	Muted     bool
	TrackPath string
	Position  time.Duration
}

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *State
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveSession(m.db, *pending)
	}

	return m.db.Close()
}

// Get returns the saved session, or defaults when nothing was saved yet.
func (m *Manager) Get() (*State, error) {
	return getSession(m.db)
}

// SaveNow persists the session immediately, replacing any pending
// debounced save. Used for volume and mute changes, which are rare.
func (m *Manager) SaveNow(state State) error {
	m.saveMu.Lock()
	m.pending = nil
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	return saveSession(m.db, state)
}

// Save persists the session after a short debounce. Position updates
// arrive every tick; writing each one would hammer the disk.
func (m *Manager) Save(state State) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveSession(m.db, *pending)
		}
	})
}

func getSession(db *sql.DB) (*State, error) {
	var (
		volume     float64
		muted      bool
		trackPath  sql.NullString
		positionMs sql.NullInt64
	)

	row := db.QueryRow(`SELECT volume, muted, track_path, position_ms FROM session WHERE id = 1`)
	err := row.Scan(&volume, &muted, &trackPath, &positionMs)
	if err == sql.ErrNoRows {
		return &State{Volume: 1.0}, nil
	}
	if err != nil {
		return nil, err
	}

	s := &State{Volume: volume, Muted: muted}
	if trackPath.Valid {
		s.TrackPath = trackPath.String
	}
	if positionMs.Valid {
		s.Position = time.Duration(positionMs.Int64) * time.Millisecond
	}
	return s, nil
}

func saveSession(db *sql.DB, s State) error {
	_, err := db.Exec(`
		INSERT INTO session (id, volume, muted, track_path, position_ms, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted,
			track_path = excluded.track_path,
			position_ms = excluded.position_ms,
			updated_at = excluded.updated_at
	`, s.Volume, s.Muted, s.TrackPath, s.Position.Milliseconds(), time.Now().Unix())
	return err
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
