package models

import (
	"strconv"
	"time"

	"go.uber.org/atomic"
)

const (
	DefaultEmoji = "🥤"
	DefaultColor = "#007AFF"

	// SchemaVersion is the version stamped into every persisted document.
	SchemaVersion = 1
)

// Beverage is a catalog entry a user can log consumption against.
// Name doubles as the join key into logs: logs reference beverages by
// label, not id, so renaming a beverage does not relabel history.
type Beverage struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji,omitempty"`
	Image    string   `json:"image,omitempty"`
	Color    string   `json:"color,omitempty"`
	Variants []string `json:"variants,omitempty"`
}

// BeverageLog is one timestamped consumption event. Date and Hour are
// derived from Timestamp at creation and never re-derived afterwards.
type BeverageLog struct {
	ID        string `json:"id"`
	Beverage  string `json:"beverage"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Date      string `json:"date"`      // YYYY-MM-DD, UTC calendar date
	Hour      int    `json:"hour"`      // 0-23, local
}

// AppData is the single persisted document: the whole of durable state.
type AppData struct {
	Beverages []Beverage    `json:"beverages"`
	Logs      []BeverageLog `json:"logs"`
	Version   int           `json:"version"`
}

// lastID makes timestamp-derived ids strictly increasing so that two
// entries created within the same millisecond never collide.
var lastID atomic.Int64

func nextID(t time.Time) string {
	ms := t.UnixMilli()
	for {
		prev := lastID.Load()
		if ms <= prev {
			ms = prev + 1
		}
		if lastID.CompareAndSwap(prev, ms) {
			return strconv.FormatInt(ms, 10)
		}
	}
}

// NewBeverage builds a user-created catalog entry. Empty emoji and color
// fall back to the defaults.
func NewBeverage(name, emoji, color string) Beverage {
	if emoji == "" {
		emoji = DefaultEmoji
	}
	if color == "" {
		color = DefaultColor
	}
	return Beverage{
		ID:    nextID(time.Now()),
		Name:  name,
		Emoji: emoji,
		Color: color,
	}
}

// NewLog builds a log entry for the given label at the given instant.
// Date is the UTC calendar date of t, Hour the local hour.
func NewLog(label string, t time.Time) BeverageLog {
	return BeverageLog{
		ID:        nextID(time.Now()),
		Beverage:  label,
		Timestamp: t.UnixMilli(),
		Date:      t.UTC().Format("2006-01-02"),
		Hour:      t.Hour(),
	}
}

// IsReservedID reports whether id belongs to the built-in catalog.
// Ids "1".."6" are never removable.
func IsReservedID(id string) bool {
	if len(id) != 1 {
		return false
	}
	return id[0] >= '1' && id[0] <= '6'
}
