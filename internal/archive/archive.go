package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BackupFile moves the file at path aside as <stem>.<timestamp>.bak<ext>
// and returns the new name. It does nothing and returns "" when path does
// not exist.
func BackupFile(path string) (string, error) {
	// Check if the file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	backupPath := backupName(path, timestamp)

	// Check if backup already exists (unlikely but possible)
	if _, err := os.Stat(backupPath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		backupPath = backupName(path, timestamp)
	}

	// Rename the file to its backup name
	if err := os.Rename(path, backupPath); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}

	return backupPath, nil
}

func backupName(path, timestamp string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s.%s.bak%s", stem, timestamp, ext)
}
