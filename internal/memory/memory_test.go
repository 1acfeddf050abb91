package memory

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "memory.db")
	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m, path
}

func TestLookup_Empty(t *testing.T) {
	m, _ := openTestDB(t)

	_, found, err := m.Lookup("de", "Hello")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if found {
		t.Error("Expected not found in empty memory")
	}
}

func TestSaveAndLookup(t *testing.T) {
	m, _ := openTestDB(t)

	if err := m.Save("de", "Hello", "Hallo"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := m.Save("fr", "Hello", "Bonjour"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, found, err := m.Lookup("de", "Hello")
	if err != nil || !found {
		t.Fatalf("Lookup = %q, %v, %v", got, found, err)
	}
	if got != "Hallo" {
		t.Errorf("Expected 'Hallo', got '%s'", got)
	}

	got, _, _ = m.Lookup("fr", "Hello")
	if got != "Bonjour" {
		t.Errorf("Expected 'Bonjour', got '%s'", got)
	}
}

func TestSave_Overwrites(t *testing.T) {
	m, _ := openTestDB(t)

	m.Save("de", "File", "Akte")
	if err := m.Save("de", "File", "Datei"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, _, _ := m.Lookup("de", "File")
	if got != "Datei" {
		t.Errorf("Expected 'Datei', got '%s'", got)
	}

	n, err := m.Count("de")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 entry, got %d", n)
	}
}

func TestOpen_Persists(t *testing.T) {
	m, path := openTestDB(t)
	if err := m.Save("de", "Save", "Speichern"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	m.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	got, found, err := reopened.Lookup("de", "Save")
	if err != nil || !found || got != "Speichern" {
		t.Errorf("Lookup after reopen = %q, %v, %v", got, found, err)
	}
}
