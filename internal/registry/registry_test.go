package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type fakeGame struct {
	id string
}

func (f *fakeGame) ID() string { return f.id }
func (f *fakeGame) Title() string { return "Fake " + f.id }
func (f *fakeGame) Description() string { return "a fake game" }
func (f *fakeGame) Reset(core.RuntimeConfig) {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen) {}
func (f *fakeGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("fake_b", func() Game { return &fakeGame{id: "fake_b"} })
	Register("fake_a", func() Game { return &fakeGame{id: "fake_a"} })

	if !Exists("fake_a") || !Exists("fake_b") {
		t.Fatal("registered games should exist")
	}
	if Exists("missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("fake_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "fake_a" {
		t.Errorf("Create returned %q, want fake_a", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown id should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "fake_a" {
			if info.Title != "Fake fake_a" || info.Description != "a fake game" {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return &fakeGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup", func() Game { return &fakeGame{id: "dup"} })
}
