package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"dailythoughts/journal"

	"github.com/charmbracelet/log"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record keys, one per persisted collection.
const (
	KeyPosts      = "journalPosts"
	KeyUsers      = "journalUsers"
	KeySession    = "currentUser"
	KeyDailyQuote = "dailyMotivation"
)

// Record is a named JSON document. The whole app state lives in a
// handful of these.
type Record struct {
	Key   string         `gorm:"primaryKey"`
	Value datatypes.JSON `gorm:"type:json"`
}

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrating records table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() {
	sqlDB, err := s.db.DB()
	if err != nil {
		log.Error("Failed to get database handle on close", "err", err)
		return
	}
	sqlDB.Close()
}

// Snapshot is everything Load hydrates at startup.
type Snapshot struct {
	Posts   []journal.Post
	Users   []journal.User
	Session *journal.User
}

// read unmarshals the record under key into out. A missing key or
// malformed document leaves out untouched; malformed data is logged
// and otherwise swallowed so a broken record never takes the app down.
func (s *Store) read(key string, out any) {
	var rec Record
	result := s.db.First(&rec, "key = ?", key)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Error("Failed to read record", "key", key, "err", result.Error)
		}
		return
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		log.Error("Failed to parse stored record, falling back to empty", "key", key, "err", err)
	}
}

func (s *Store) write(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Error("Failed to serialize record", "key", key, "err", err)
		return
	}
	result := s.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&Record{Key: key, Value: datatypes.JSON(raw)})
	if result.Error != nil {
		log.Error("Failed to write record", "key", key, "err", result.Error)
	}
}

func (s *Store) remove(key string) {
	result := s.db.Delete(&Record{}, "key = ?", key)
	if result.Error != nil {
		log.Error("Failed to remove record", "key", key, "err", result.Error)
	}
}

// Load hydrates the posts and users collections and the persisted
// session. Absent or unreadable records come back empty rather than
// as errors.
func (s *Store) Load() Snapshot {
	var snap Snapshot
	s.read(KeyPosts, &snap.Posts)
	s.read(KeyUsers, &snap.Users)

	var session journal.User
	hadSession := false
	var rec Record
	if err := s.db.First(&rec, "key = ?", KeySession).Error; err == nil {
		if err := json.Unmarshal(rec.Value, &session); err != nil {
			log.Error("Failed to parse stored session, discarding", "err", err)
		} else {
			hadSession = true
		}
	}
	if hadSession {
		snap.Session = &session
	}
	return snap
}

// Save rewrites all three records. A nil session removes the session
// record instead of writing a JSON null.
func (s *Store) Save(posts []journal.Post, users []journal.User, session *journal.User) {
	if posts == nil {
		posts = []journal.Post{}
	}
	if users == nil {
		users = []journal.User{}
	}
	s.write(KeyPosts, posts)
	s.write(KeyUsers, users)
	if session != nil {
		s.write(KeySession, session)
	} else {
		s.remove(KeySession)
	}
}

// DailyQuote is the single cached motivational quote.
type DailyQuote struct {
	Date  string `json:"date"`
	Quote string `json:"quote"`
}

func (s *Store) LoadDailyQuote() *DailyQuote {
	var rec Record
	if err := s.db.First(&rec, "key = ?", KeyDailyQuote).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("Failed to read daily quote", "err", err)
		}
		return nil
	}
	var q DailyQuote
	if err := json.Unmarshal(rec.Value, &q); err != nil {
		log.Error("Failed to parse daily quote, discarding", "err", err)
		return nil
	}
	return &q
}

func (s *Store) SaveDailyQuote(q DailyQuote) {
	s.write(KeyDailyQuote, q)
}
