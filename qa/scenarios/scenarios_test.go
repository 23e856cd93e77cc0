package scenarios

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kilianp07/kitchen/core/model"
)

func TestScenario(t *testing.T) {
	files, err := filepath.Glob("*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenario files")
	}
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func TestOrderDefToModel(t *testing.T) {
	o, err := OrderDef{ID: "a", Name: "Soup", Temp: "hot", Freshness: 5}.ToModel()
	if err != nil {
		t.Fatal(err)
	}
	if o.Temp != model.TempHot || o.ID != "a" {
		t.Fatalf("unexpected order %+v", o)
	}
	if _, err := (OrderDef{ID: "b", Temp: "lukewarm"}).ToModel(); err == nil {
		t.Fatal("expected error for unknown temperature")
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("no-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	tmp, err := os.CreateTemp(t.TempDir(), "bad*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString(":"); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmp.Name()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestPlacementsByPool(t *testing.T) {
	evs := []model.Event{
		{OrderID: "a", Kind: model.EventPlace, Target: model.Heater},
		{OrderID: "b", Kind: model.EventPlace, Target: model.Shelf},
		{OrderID: "b", Kind: model.EventMove, Target: model.Heater},
	}
	got := placementsByPool(evs)
	if got["heater"] != 1 || got["shelf"] != 1 || len(got) != 2 {
		t.Fatalf("unexpected placements %v", got)
	}
}
