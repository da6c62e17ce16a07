package testutil

import (
	"sync"

	"bevlog/internal/models"
	"bevlog/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Levels returns the recorded levels in call order.
func (m *MockLogger) Levels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Logs))
	for _, e := range m.Logs {
		out = append(out, e.Level)
	}
	return out
}

// MockStore implements storage.StoreInterface against an in-memory
// document, with injectable save failures.
type MockStore struct {
	mu        sync.Mutex
	Data      *models.AppData
	SaveErr   error
	SaveCalls int
	InitCalls int
	Snapshots int
}

func NewMockStore() *MockStore {
	return &MockStore{Data: models.DefaultData()}
}

func (m *MockStore) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitCalls++
	return nil
}

func (m *MockStore) Load() *models.AppData {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *m.Data
	return &copied
}

func (m *MockStore) Save(data *models.AppData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Data = data
	return nil
}

func (m *MockStore) Update(mutate func(data *models.AppData)) (*models.AppData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	copied := *m.Data
	mutate(&copied)
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	m.Data = &copied
	return &copied, nil
}

func (m *MockStore) Snapshot() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshots++
	return nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu     sync.Mutex
	Data   map[string][]byte
	Purges int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.Purges++
}
