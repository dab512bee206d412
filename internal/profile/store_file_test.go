package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "user_data.json"))

	p := Default()
	p.Name = "Ada Lovelace"
	p.Education = []EducationEntry{{ID: "e1", Degree: "BSc", Field: "Mathematics"}}
	if !store.Save(p) {
		t.Fatal("save reported failure")
	}

	got := store.Load()
	if got.Name != "Ada Lovelace" {
		t.Fatalf("name = %q", got.Name)
	}
	if len(got.Education) != 1 || got.Education[0].Field != "Mathematics" {
		t.Fatalf("education = %+v", got.Education)
	}
}

func TestFileStoreLoadMissingFileReturnsDefault(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "user_data.json"))

	got := store.Load()
	if got.Name != "John Doe" {
		t.Fatalf("expected default profile, got name %q", got.Name)
	}
	if len(got.Skills) != 3 {
		t.Fatalf("expected default skills, got %v", got.Skills)
	}
}

func TestFileStoreLoadCorruptFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := NewFileStore(path).Load()
	if got.Name != "John Doe" {
		t.Fatalf("expected default profile, got name %q", got.Name)
	}
}

func TestFileStoreSaveOverwritesExisting(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "user_data.json"))

	p := Default()
	p.Name = "First"
	store.Save(p)
	p.Name = "Second"
	store.Save(p)

	if got := store.Load(); got.Name != "Second" {
		t.Fatalf("name = %q", got.Name)
	}
}
