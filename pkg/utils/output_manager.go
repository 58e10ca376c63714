package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager organizes export files into one directory per run
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateRunOutputDir creates the directory for a run's exports
func (om *OutputManager) CreateRunOutputDir(runID string) (string, error) {
	runDir := filepath.Join(om.BaseOutputDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}
	return runDir, nil
}

// GetOutputFilePath returns the full path for an export file of a run
func (om *OutputManager) GetOutputFilePath(runID, fileName string) (string, error) {
	runDir, err := om.CreateRunOutputDir(runID)
	if err != nil {
		return "", err
	}

	// Clean the filename to remove any path separators
	cleanFileName := filepath.Base(fileName)

	return filepath.Join(runDir, cleanFileName), nil
}

// GetFileType determines the export format from a file extension
func (om *OutputManager) GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".xlsx":
		return "xlsx"
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".pdf":
		return "pdf"
	default:
		return "unknown"
	}
}

// GetFileSize returns the size of a file in bytes
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
