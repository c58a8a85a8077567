package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/kerbaras/fictions/pkg/services"
)

func TestExportTracker_Update(t *testing.T) {
	tracker := NewExportTracker(80)

	tracker.Update(services.ExportProgress{Index: 0, Total: 4, Title: "One", Status: "fetching"})
	tracker.Update(services.ExportProgress{Index: 0, Total: 4, Title: "One", Status: "done"})
	tracker.Update(services.ExportProgress{Index: 1, Total: 4, Title: "Two", Status: "fetching"})

	if tracker.Done() != 1 {
		t.Errorf("Expected 1 done, got %d", tracker.Done())
	}
	view := tracker.View()
	if !strings.Contains(view, "1/4") {
		t.Errorf("View should contain the counter, got %q", view)
	}
	if !strings.Contains(view, "Two") {
		t.Errorf("View should contain the current chapter, got %q", view)
	}
}

func TestExportTracker_Error(t *testing.T) {
	tracker := NewExportTracker(80)
	tracker.Update(services.ExportProgress{Total: 2, Title: "Broken", Status: "error", Error: errors.New("boom")})

	if tracker.Failed() == nil {
		t.Fatal("Expected failure to be recorded")
	}
	if !strings.Contains(tracker.View(), "boom") {
		t.Errorf("View should contain the error, got %q", tracker.View())
	}
}

func TestExportTracker_Empty(t *testing.T) {
	tracker := NewExportTracker(80)
	if !strings.Contains(tracker.View(), "Fetching fiction") {
		t.Errorf("Unexpected view %q", tracker.View())
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name          string
		current       int
		total         int
		width         int
		expectedEmpty bool
	}{
		{"zero total", 0, 0, 10, true},
		{"half", 5, 10, 10, false},
		{"full", 10, 10, 10, false},
		{"overflow", 15, 10, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderProgressBar(tt.current, tt.total, tt.width)
			if tt.expectedEmpty && bar != "" {
				t.Errorf("Expected empty bar, got %q", bar)
			}
			if !tt.expectedEmpty && bar == "" {
				t.Error("Expected non-empty bar")
			}
		})
	}
}
