package storage

import (
	"fmt"
	json "github.com/goccy/go-json"
	"holidaze/internal/providers"
	"holidaze/internal/storage/interfaces"
	"os"
)

const snapshotVersion = 1

// Snapshot is the on-disk envelope of the file store.
type Snapshot struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

type FileManager struct {
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string, entries map[string]string) error {
	jsonData, err := json.Marshal(Snapshot{Version: snapshotVersion, Entries: entries})
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

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

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile returns nil entries when the file does not exist yet.
func (f *FileManager) LoadFromFile(fileName string) (map[string]string, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(decompressedData, &snapshot); err == nil && snapshot.Entries != nil {
		if snapshot.Version > snapshotVersion {
			return nil, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
		}
		return snapshot.Entries, nil
	}

	// Bare key/value object, as exported from a browser storage area.
	f.logger.Warnf(providers.TypeApp, "Snapshot has no envelope, trying plain key/value format")
	var entries map[string]string
	if err := json.Unmarshal(decompressedData, &entries); err != nil {
		f.logger.Warnf(providers.TypeApp, "Snapshot migration failed")
		return nil, err
	}
	f.logger.Warnf(providers.TypeApp, "Snapshot migrated from plain key/value format")
	return entries, nil
}
