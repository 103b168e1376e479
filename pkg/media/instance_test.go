package media

import (
	"reflect"
	"testing"
)

func TestInstance_MediaResolvesClass(t *testing.T) {
	reg := newTestRegistry(t)

	in, err := reg.NewInstance("datepicker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := in.Media()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Manifest{"css": Paths("forms/css/text.css", "forms/css/picker.css")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Media() = %v, want %v", got, want)
	}
}

func TestInstance_MediaIsReferenceStable(t *testing.T) {
	reg := newTestRegistry(t)

	in, err := reg.NewInstance("datepicker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := in.Media()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := in.Media()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same cached map, not merely an equal one.
	if reflect.ValueOf(first).Pointer() != reflect.ValueOf(second).Pointer() {
		t.Error("expected the identical cached manifest on repeated reads")
	}
}

func TestInstance_PresetBypassesHierarchy(t *testing.T) {
	reg := NewRegistry("widget")
	hookCalled := false
	reg.MustRegister("textinput", "", func() Manifest {
		hookCalled = true
		return Manifest{"css": Paths("forms/css/text.css")}
	})

	preset := Manifest{"js": Paths("override.js")}
	in, err := reg.NewPresetInstance("textinput", preset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := in.Media()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, preset) {
		t.Errorf("Media() = %v, want preset %v", got, preset)
	}
	if hookCalled {
		t.Error("define hook must not run for a preset instance")
	}
}

func TestInstance_UnoverriddenRootChildIsEmpty(t *testing.T) {
	reg := NewRegistry("widget")
	reg.MustRegister("hidden", "", nil)

	in, err := reg.NewInstance("hidden")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := in.Media()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty manifest, got %v", got)
	}
}

func TestInstance_HookRunsOncePerInstance(t *testing.T) {
	reg := NewRegistry("widget")
	calls := 0
	reg.MustRegister("textinput", "", func() Manifest {
		calls++
		return Manifest{"css": Paths("forms/css/text.css")}
	})

	in, err := reg.NewInstance("textinput")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := in.Media(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 hook call, got %d", calls)
	}
}

func TestInstance_UnknownClass(t *testing.T) {
	reg := newTestRegistry(t)

	if _, err := reg.NewInstance("nope"); err == nil {
		t.Error("expected error for unknown class")
	}
	if _, err := reg.NewPresetInstance("nope", Manifest{}); err == nil {
		t.Error("expected error for unknown class")
	}
}

func TestInstance_Identity(t *testing.T) {
	reg := newTestRegistry(t)

	a, err := reg.NewInstance("textinput")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := reg.NewInstance("textinput")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Class() != "textinput" {
		t.Errorf("unexpected class: %s", a.Class())
	}
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct non-empty instance IDs, got %q and %q", a.ID(), b.ID())
	}
}
