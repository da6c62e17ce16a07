package storage

import (
	"os"
	"sync"

	json "github.com/goccy/go-json"

	"bevlog/internal/models"
	"bevlog/internal/providers"
	"bevlog/internal/structures"
)

// StoreInterface is the sole owner of durable state. Every read returns
// the full document; every mutation is a load-mutate-save cycle.
type StoreInterface interface {
	Initialize() error
	Load() *models.AppData
	Save(data *models.AppData) error
	Update(mutate func(data *models.AppData)) (*models.AppData, error)
	Snapshot() error
}

// FileStore keeps the whole application state in one pretty-printed JSON
// document, with a single-generation backup copy written before each save.
type FileStore struct {
	conf   *structures.Config
	logger providers.Logger
	opsMu  sync.Mutex
}

func NewFileStore(conf *structures.Config, logger providers.Logger) StoreInterface {
	return &FileStore{
		conf:   conf,
		logger: logger,
	}
}

// Initialize prepares the document for use. On first run it writes the
// default catalog; on later runs it backfills variants onto stored
// default beverages that predate the variants field. The backfill is
// additive only and never touches an existing variants list.
func (fs *FileStore) Initialize() error {
	fs.opsMu.Lock()
	defer fs.opsMu.Unlock()

	if _, err := os.Stat(fs.conf.Storage.DataFile); os.IsNotExist(err) {
		fs.logger.Infof(providers.TypeApp, "First run, creating default document at %s", fs.conf.Storage.DataFile)
		return fs.save(models.DefaultData())
	}

	data := fs.load()

	defaults := make(map[string]models.Beverage)
	for _, b := range models.DefaultBeverages() {
		defaults[b.Name] = b
	}
	for i, b := range data.Beverages {
		def, ok := defaults[b.Name]
		if ok && def.Variants != nil && b.Variants == nil {
			data.Beverages[i].Variants = append([]string(nil), def.Variants...)
			fs.logger.Infof(providers.TypeApp, "Backfilled variants for %q", b.Name)
		}
	}

	return fs.save(data)
}

// Load reads and parses the document. Any failure degrades to the
// in-memory default document; the broken file stays on disk untouched
// until the next successful save.
func (fs *FileStore) Load() *models.AppData {
	fs.opsMu.Lock()
	defer fs.opsMu.Unlock()
	return fs.load()
}

func (fs *FileStore) load() *models.AppData {
	content, err := os.ReadFile(fs.conf.Storage.DataFile)
	if err != nil {
		fs.logger.Warnf(providers.TypeApp, "Could not read %s, falling back to defaults: %s", fs.conf.Storage.DataFile, err)
		return models.DefaultData()
	}

	var data models.AppData
	if err := json.Unmarshal(content, &data); err != nil {
		fs.logger.Errorf(providers.TypeApp, "Corrupt document at %s, falling back to defaults: %s", fs.conf.Storage.DataFile, err)
		return models.DefaultData()
	}
	return &data
}

// Save replaces the document. The prior generation is first copied to the
// backup path (best effort), then the new content is written via temp
// file and rename so a crash mid-write cannot truncate the primary file.
func (fs *FileStore) Save(data *models.AppData) error {
	fs.opsMu.Lock()
	defer fs.opsMu.Unlock()
	return fs.save(data)
}

func (fs *FileStore) save(data *models.AppData) error {
	fs.backup()

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return fs.writeAtomic(fs.conf.Storage.DataFile, jsonData)
}

// backup copies the current document to the backup path, overwriting any
// prior backup. Failures are logged and never block the save.
func (fs *FileStore) backup() {
	content, err := os.ReadFile(fs.conf.Storage.DataFile)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warnf(providers.TypeApp, "Could not create backup: %s", err)
		}
		return
	}
	if err := fs.writeAtomic(fs.conf.Storage.BackupFile, content); err != nil {
		fs.logger.Warnf(providers.TypeApp, "Could not create backup: %s", err)
	}
}

func (fs *FileStore) writeAtomic(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// Update runs one serialized load-mutate-save cycle and returns the
// persisted document. Concurrent writers would otherwise silently drop
// each other's changes under full-document replacement.
func (fs *FileStore) Update(mutate func(data *models.AppData)) (*models.AppData, error) {
	fs.opsMu.Lock()
	defer fs.opsMu.Unlock()

	data := fs.load()
	mutate(data)
	if err := fs.save(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Snapshot copies the current document to the backup path, giving a
// time-based generation in addition to the before-write copy.
func (fs *FileStore) Snapshot() error {
	fs.opsMu.Lock()
	defer fs.opsMu.Unlock()

	content, err := os.ReadFile(fs.conf.Storage.DataFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return fs.writeAtomic(fs.conf.Storage.BackupFile, content)
}
