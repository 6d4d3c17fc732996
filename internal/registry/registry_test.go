package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestRegisterLookup(t *testing.T) {
	Register(Variant{
		ID:    "test_walls",
		Title: "Test Walls",
		Configure: func(cfg *config.SnakeConfig) {
			cfg.Rules.Border = config.BorderTerminate
		},
	})

	if !Exists("test_walls") {
		t.Fatal("registered variant should exist")
	}
	v, err := Lookup("test_walls")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}

	base := config.DefaultSnakeConfig()
	got := v.Apply(base)
	if got.Rules.Border != config.BorderTerminate {
		t.Errorf("Apply() border = %q, expected terminate", got.Rules.Border)
	}
	if base.Rules.Border != config.BorderWrap {
		t.Error("Apply() should not modify its input")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no_such_variant"); err == nil {
		t.Error("Lookup() of an unknown ID should fail")
	}
	if Exists("no_such_variant") {
		t.Error("Exists() should be false for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Variant{ID: "test_dup", Title: "Dup"})

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(Variant{ID: "test_dup", Title: "Dup again"})
}

func TestListSorted(t *testing.T) {
	Register(Variant{ID: "test_b", Title: "B"})
	Register(Variant{ID: "test_a", Title: "A"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestApplyNilConfigure(t *testing.T) {
	v := Variant{ID: "plain"}
	cfg := config.DefaultSnakeConfig()
	if got := v.Apply(cfg); got.Rules != cfg.Rules {
		t.Error("nil Configure should leave the config unchanged")
	}
}
