package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"pomodorotimer/models"
)

const dataFileName = "data.json"

// Manager handles data persistence
type Manager struct {
	dataPath string
}

// NewManager creates a new storage manager rooted in the user's home directory
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataPath := filepath.Join(homeDir, ".pomodorotimer")
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		// Fallback to current directory
		dataPath = "."
	}

	return &Manager{
		dataPath: dataPath,
	}
}

// NewManagerAt creates a storage manager rooted at an explicit directory
func NewManagerAt(dir string) *Manager {
	return &Manager{
		dataPath: dir,
	}
}

// Load reads the data document from disk. A missing, unreadable or malformed
// file never surfaces as an error: the caller always gets a usable document,
// falling back to defaults and an empty history. The fallback document is
// written straight back to disk so the data file exists from first run on.
func (m *Manager) Load() *models.AppData {
	filePath := filepath.Join(m.dataPath, dataFileName)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("DEBUG: Failed to read %s: %v\n", filePath, err)
		}
		return m.freshDocument()
	}

	var doc models.AppData
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Printf("DEBUG: Failed to parse %s: %v\n", filePath, err)
		return m.freshDocument()
	}

	if doc.Settings == nil {
		doc.Settings = models.DefaultSettings()
	}
	doc.Settings.Normalize()
	if doc.Sessions == nil {
		doc.Sessions = []*models.SessionRecord{}
	}

	fmt.Printf("DEBUG: Loaded %d sessions from %s\n", len(doc.Sessions), filePath)
	return &doc
}

// freshDocument creates a default document and seeds the data file with it
func (m *Manager) freshDocument() *models.AppData {
	doc := models.NewAppData()
	if err := m.Save(doc); err != nil {
		fmt.Printf("DEBUG: Failed to write default document: %v\n", err)
	}
	return doc
}

// Save serializes and overwrites the data document in full
func (m *Manager) Save(doc *models.AppData) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}

	filePath := filepath.Join(m.dataPath, dataFileName)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}

// DataFile returns the path of the persisted document
func (m *Manager) DataFile() string {
	return filepath.Join(m.dataPath, dataFileName)
}
