package page

import (
	"sync"
	"testing"

	"weather-widget/models"
)

func TestNewWidget(t *testing.T) {
	doc := NewWidget()
	snap := doc.Snapshot()

	if len(snap.Slots) != len(models.FieldNames) {
		t.Fatalf("expected %d slots, got %d", len(models.FieldNames), len(snap.Slots))
	}
	for _, id := range models.FieldNames {
		if snap.Text(id) != "-" {
			t.Errorf("slot %s = %q, want placeholder", id, snap.Text(id))
		}
	}
	if snap.IsVisible(InputErrorID) || snap.IsVisible(HTTPBannerID) {
		t.Error("error elements should start hidden")
	}
	if snap.HasIcon {
		t.Error("icon should not exist before it is set")
	}
}

func TestMemoryMutations(t *testing.T) {
	doc := NewMemory("temperature")

	doc.SetText("temperature", "15 °C")
	doc.SetVisible(HTTPBannerID, true)
	doc.SetOpacity(HTTPBannerID, 1.7)
	doc.SetThemeClass("night")
	doc.SetIcon("./images/favicon-night.png")

	snap := doc.Snapshot()
	if snap.Text("temperature") != "15 °C" {
		t.Errorf("temperature = %q", snap.Text("temperature"))
	}
	if !snap.IsVisible(HTTPBannerID) {
		t.Error("banner should be visible")
	}
	if snap.Opacity[HTTPBannerID] != 1 {
		t.Errorf("opacity should be clamped to 1, got %v", snap.Opacity[HTTPBannerID])
	}
	if snap.ThemeClass != "night" || snap.Icon != "./images/favicon-night.png" || !snap.HasIcon {
		t.Errorf("unexpected theme state %+v", snap)
	}

	doc.SetOpacity(HTTPBannerID, -3)
	if got := doc.Snapshot().Opacity[HTTPBannerID]; got != 0 {
		t.Errorf("opacity should be clamped to 0, got %v", got)
	}

	// Showing again restores full opacity
	doc.SetVisible(HTTPBannerID, true)
	if got := doc.Snapshot().Opacity[HTTPBannerID]; got != 1 {
		t.Errorf("opacity after show = %v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	doc := NewMemory("base")
	snap := doc.Snapshot()
	snap.Texts["base"] = "changed"
	snap.Slots[0] = "other"

	if doc.Snapshot().Text("base") != "-" {
		t.Error("snapshot texts alias document state")
	}
	if doc.SlotContainers()[0] != "base" {
		t.Error("snapshot slots alias document state")
	}
}

func TestMemoryConcurrentWrites(t *testing.T) {
	doc := NewWidget()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc.SetText(models.FieldTemperature, "t")
			doc.SetOpacity(HTTPBannerID, float64(i)/20)
			_ = doc.Snapshot()
		}(i)
	}
	wg.Wait()

	if doc.Snapshot().Text(models.FieldTemperature) != "t" {
		t.Error("expected final text to be written")
	}
}
