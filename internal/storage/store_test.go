package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bevlog/internal/models"
	"bevlog/internal/structures"
	"bevlog/internal/testutil"
)

func storeConfig(t *testing.T) *structures.Config {
	dir := t.TempDir()
	return &structures.Config{
		Storage: structures.Storage{
			DataFile:         filepath.Join(dir, "beverage_app_data.json"),
			BackupFile:       filepath.Join(dir, "beverage_app_data.backup.json"),
			SnapshotInterval: time.Minute,
		},
	}
}

func TestInitialize_FirstRunWritesDefaults(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})

	require.NoError(t, store.Initialize())

	content, err := os.ReadFile(conf.Storage.DataFile)
	require.NoError(t, err)

	var data models.AppData
	require.NoError(t, json.Unmarshal(content, &data))
	assert.Len(t, data.Beverages, 6)
	assert.Empty(t, data.Logs)
	assert.Equal(t, models.SchemaVersion, data.Version)
}

func TestInitialize_Idempotent(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})

	require.NoError(t, store.Initialize())
	first := store.Load()

	require.NoError(t, store.Initialize())
	second := store.Load()

	assert.Equal(t, first, second)
}

func TestInitialize_BackfillsMissingVariants(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})

	stored := &models.AppData{
		Beverages: []models.Beverage{
			{ID: "1", Name: "Beer"},
			{ID: "3", Name: "Wine", Variants: []string{"Port"}},
			{ID: "9", Name: "Kombucha"},
		},
		Logs:    []models.BeverageLog{},
		Version: models.SchemaVersion,
	}
	require.NoError(t, store.Save(stored))
	require.NoError(t, store.Initialize())

	data := store.Load()
	require.Len(t, data.Beverages, 3)
	assert.Equal(t, []string{"20cl", "33cl", "Pint"}, data.Beverages[0].Variants)
	// existing lists are never replaced
	assert.Equal(t, []string{"Port"}, data.Beverages[1].Variants)
	assert.Nil(t, data.Beverages[2].Variants)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})

	data := store.Load()
	assert.Equal(t, models.DefaultData(), data)
}

func TestLoad_CorruptFileFallsBackWithoutRewriting(t *testing.T) {
	conf := storeConfig(t)
	logger := &testutil.MockLogger{}
	store := NewFileStore(conf, logger)

	require.NoError(t, os.WriteFile(conf.Storage.DataFile, []byte("{not json"), 0644))

	data := store.Load()
	assert.Equal(t, models.DefaultData(), data)
	assert.Contains(t, logger.Levels(), "error")

	// the broken file stays untouched until the next save
	content, err := os.ReadFile(conf.Storage.DataFile)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(content))
}

func TestSave_WritesBackupOfPriorGeneration(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})

	require.NoError(t, store.Initialize())

	updated := models.DefaultData()
	updated.Logs = append(updated.Logs, models.NewLog("Beer - Pint", time.Now()))
	require.NoError(t, store.Save(updated))

	var backup models.AppData
	content, err := os.ReadFile(conf.Storage.BackupFile)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(content, &backup))
	assert.Empty(t, backup.Logs)

	assert.Len(t, store.Load().Logs, 1)
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})

	require.NoError(t, store.Save(models.DefaultData()))

	_, err := os.Stat(conf.Storage.DataFile + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestUpdate_AppliesMutationAndPersists(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})
	require.NoError(t, store.Initialize())

	data, err := store.Update(func(d *models.AppData) {
		d.Logs = append(d.Logs, models.NewLog("Shots", time.Now()))
	})
	require.NoError(t, err)
	assert.Len(t, data.Logs, 1)

	assert.Len(t, store.Load().Logs, 1)
}

func TestSnapshot_CopiesPrimaryToBackup(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})
	require.NoError(t, store.Initialize())

	require.NoError(t, store.Snapshot())

	primary, err := os.ReadFile(conf.Storage.DataFile)
	require.NoError(t, err)
	backup, err := os.ReadFile(conf.Storage.BackupFile)
	require.NoError(t, err)
	assert.Equal(t, primary, backup)
}

func TestSnapshot_NoFileIsNotAnError(t *testing.T) {
	conf := storeConfig(t)
	store := NewFileStore(conf, &testutil.MockLogger{})

	assert.NoError(t, store.Snapshot())
	_, err := os.Stat(conf.Storage.BackupFile)
	assert.True(t, os.IsNotExist(err))
}
