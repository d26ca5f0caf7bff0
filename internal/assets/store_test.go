package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ssapio/inferencegate-web/internal/shared/errors"
)

func TestStore_Read(t *testing.T) {
	dir := t.TempDir()
	content := []byte("%PDF-1.7 fake content")
	if err := os.WriteFile(filepath.Join(dir, "SSAP-Technical-Overview.pdf"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)

	got, err := store.Read("SSAP-Technical-Overview.pdf")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Read() = %q, want %q", got, content)
	}
}

func TestStore_ReadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Read("nope.pdf")
	if err == nil {
		t.Fatal("Read() error = nil, want ASSET_ERROR")
	}
	if !errors.IsCode(err, "ASSET_ERROR") {
		t.Errorf("Read() error = %v, want ASSET_ERROR code", err)
	}
}
