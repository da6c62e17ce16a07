package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"

	"bevlog/internal/models"
	"bevlog/internal/providers"
	"bevlog/internal/storage"
	"bevlog/internal/structures"
)

// ErrBadPayload marks an import whose payload is not valid JSON.
var ErrBadPayload = errors.New("malformed import payload")

// TrackerServiceInterface is the operation surface consumed by the
// controllers. Reads never fail (they degrade to defaults inside the
// store); mutations propagate persistence errors.
type TrackerServiceInterface interface {
	GetBeverages() []models.Beverage
	AddBeverage(name, emoji, color string) (models.Beverage, error)
	RemoveBeverage(id string) error

	GetLogs() []models.BeverageLog
	GetLogsForBeverage(label string) []models.BeverageLog
	AddLog(label string, at time.Time) (models.BeverageLog, error)
	RemoveLog(id string) error
	ClearLogs() error

	Export() (string, error)
	Import(payload string) error

	AdjustTimestamp(t time.Time) time.Time

	BeverageCount() int
	LogCount() int
}

type TrackerService struct {
	store  storage.StoreInterface
	logger providers.Logger
	conf   *structures.Config

	countsOnce sync.Once
	beverages  atomic.Int64
	logs       atomic.Int64
}

func NewTrackerService(store storage.StoreInterface, logger providers.Logger, conf *structures.Config) TrackerServiceInterface {
	return &TrackerService{
		store:  store,
		logger: logger,
		conf:   conf,
	}
}

func (ts *TrackerService) refreshCounts(data *models.AppData) {
	ts.beverages.Store(int64(len(data.Beverages)))
	ts.logs.Store(int64(len(data.Logs)))
}

func (ts *TrackerService) GetBeverages() []models.Beverage {
	data := ts.store.Load()
	ts.refreshCounts(data)
	return data.Beverages
}

func (ts *TrackerService) AddBeverage(name, emoji, color string) (models.Beverage, error) {
	beverage := models.NewBeverage(name, emoji, color)
	data, err := ts.store.Update(func(data *models.AppData) {
		data.Beverages = append(data.Beverages, beverage)
	})
	if err != nil {
		ts.logger.Errorf(providers.TypeApp, "Error adding beverage %q: %s", name, err)
		return models.Beverage{}, err
	}
	ts.refreshCounts(data)
	return beverage, nil
}

// RemoveBeverage filters the catalog by id and persists. Removing an
// unknown id is a no-op. The reserved-id guard lives at the controller
// layer, not here.
func (ts *TrackerService) RemoveBeverage(id string) error {
	data, err := ts.store.Update(func(data *models.AppData) {
		kept := data.Beverages[:0]
		for _, b := range data.Beverages {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		data.Beverages = kept
	})
	if err != nil {
		ts.logger.Errorf(providers.TypeApp, "Error removing beverage %s: %s", id, err)
		return err
	}
	ts.refreshCounts(data)
	return nil
}

func (ts *TrackerService) GetLogs() []models.BeverageLog {
	data := ts.store.Load()
	ts.refreshCounts(data)
	return data.Logs
}

// GetLogsForBeverage matches the label exactly: a renamed beverage or a
// variant-suffixed label will not match the base name.
func (ts *TrackerService) GetLogsForBeverage(label string) []models.BeverageLog {
	logs := ts.GetLogs()
	matched := make([]models.BeverageLog, 0)
	for _, l := range logs {
		if l.Beverage == label {
			matched = append(matched, l)
		}
	}
	return matched
}

func (ts *TrackerService) AddLog(label string, at time.Time) (models.BeverageLog, error) {
	entry := models.NewLog(label, at)
	data, err := ts.store.Update(func(data *models.AppData) {
		data.Logs = append(data.Logs, entry)
	})
	if err != nil {
		ts.logger.Errorf(providers.TypeApp, "Error adding log for %q: %s", label, err)
		return models.BeverageLog{}, err
	}
	ts.refreshCounts(data)
	return entry, nil
}

func (ts *TrackerService) RemoveLog(id string) error {
	data, err := ts.store.Update(func(data *models.AppData) {
		kept := data.Logs[:0]
		for _, l := range data.Logs {
			if l.ID != id {
				kept = append(kept, l)
			}
		}
		data.Logs = kept
	})
	if err != nil {
		ts.logger.Errorf(providers.TypeApp, "Error removing log %s: %s", id, err)
		return err
	}
	ts.refreshCounts(data)
	return nil
}

func (ts *TrackerService) ClearLogs() error {
	data, err := ts.store.Update(func(data *models.AppData) {
		data.Logs = []models.BeverageLog{}
	})
	if err != nil {
		ts.logger.Errorf(providers.TypeApp, "Error clearing logs: %s", err)
		return err
	}
	ts.refreshCounts(data)
	return nil
}

// Export serializes the full current document.
func (ts *TrackerService) Export() (string, error) {
	data := ts.store.Load()
	ts.refreshCounts(data)
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

// Import parses the payload as a document and persists it verbatim.
// Malformed JSON propagates; a well-formed document of the wrong shape
// is accepted as-is.
func (ts *TrackerService) Import(payload string) error {
	var data models.AppData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		ts.logger.Errorf(providers.TypeApp, "Error importing data: %s", err)
		return fmt.Errorf("%w: %s", ErrBadPayload, err)
	}
	if err := ts.store.Save(&data); err != nil {
		ts.logger.Errorf(providers.TypeApp, "Error importing data: %s", err)
		return err
	}
	ts.refreshCounts(&data)
	return nil
}

// AdjustTimestamp maps instants before the configured cutover hour to
// the previous day at 23:59 local, so a late night counts against the
// evening it belongs to.
func (ts *TrackerService) AdjustTimestamp(t time.Time) time.Time {
	if t.Hour() >= ts.conf.Tracking.EarlyMorningCutover {
		return t
	}
	prev := t.AddDate(0, 0, -1)
	return time.Date(prev.Year(), prev.Month(), prev.Day(), 23, 59, 0, 0, prev.Location())
}

func (ts *TrackerService) counts() (int, int) {
	ts.countsOnce.Do(func() {
		ts.refreshCounts(ts.store.Load())
	})
	return int(ts.beverages.Load()), int(ts.logs.Load())
}

func (ts *TrackerService) BeverageCount() int {
	b, _ := ts.counts()
	return b
}

func (ts *TrackerService) LogCount() int {
	_, l := ts.counts()
	return l
}
