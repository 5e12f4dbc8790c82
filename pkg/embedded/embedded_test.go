package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func reset() {
	dataFS = nil
	initialized = false
}

func TestNotInitialized(t *testing.T) {
	reset()
	if IsInitialized() {
		t.Fatal("IsInitialized() should be false before Init()")
	}
	if _, err := ReadFile("data/scene.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile before Init: err = %v, want ErrNotInitialized", err)
	}
	if _, err := Open("data/scene.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open before Init: err = %v, want ErrNotInitialized", err)
	}
}

func TestReadFile(t *testing.T) {
	reset()
	defer reset()
	Init(fstest.MapFS{
		"data/scene.yaml": {Data: []byte("hearts:\n  count: 25\n")},
	})

	data, err := ReadFile("./data/scene.yaml")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hearts:\n  count: 25\n" {
		t.Errorf("content = %q", data)
	}
	if !Exists("data/scene.yaml") {
		t.Error("Exists should be true")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists should be false for a missing file")
	}
}

func TestRejectsUnknownPrefix(t *testing.T) {
	reset()
	defer reset()
	Init(fstest.MapFS{})

	if _, err := ReadFile("assets/heart.png"); err == nil {
		t.Error("expected error for non-data path")
	}
}
