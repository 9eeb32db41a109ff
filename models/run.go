package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	// sqlite3 dialect
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// A Run records one binarization: where it read from, where it wrote to and
// which threshold it applied.
type Run struct {
	gorm.Model
	RunID     string `gorm:"unique_index"`
	Input     string
	Output    string
	Method    string
	Threshold int
	Width     int
	Height    int
	Mode      string
}

// NewRun returns a run with a fresh RunID.
func NewRun() *Run {
	return &Run{RunID: uuid.New().String()}
}

func (r Run) String() string {
	return fmt.Sprintf("%s %s -> %s (%s, threshold=%d, %dx%d %s)",
		r.RunID, r.Input, r.Output, r.Method, r.Threshold, r.Width, r.Height, r.Mode)
}

// BeforeSave is executed just before a Run is saved into the DB
func (r *Run) BeforeSave() error {
	if r.RunID == "" {
		return errors.New("missing run ID")
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		return fmt.Errorf("invalid run ID %q: %w", r.RunID, err)
	}
	if r.Input == "" || r.Output == "" {
		return errors.New("run input and output can't be empty")
	}
	if r.Threshold < 0 || r.Threshold > 255 {
		return fmt.Errorf("run threshold %d out of range", r.Threshold)
	}
	return nil
}

// Create creates a new run in the DB
func (r *Run) Create(db *gorm.DB) error {
	return db.Create(r).Error
}

// ListRuns returns the most recent runs first. A limit <= 0 returns them all.
func ListRuns(db *gorm.DB, limit int) (runs []Run, err error) {
	q := db.Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err = q.Find(&runs).Error
	return
}

// FindRun finds a run from its RunID
func FindRun(db *gorm.DB, runID string) (*Run, error) {
	r := Run{}
	err := db.Where("run_id = ?", runID).First(&r).Error
	return &r, err
}

// Open opens the sqlite history database at path.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open("sqlite3", path)
}

// Migrate performs automatic migration of the history schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Run{}).Error
}
