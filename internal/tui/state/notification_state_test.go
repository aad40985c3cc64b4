package state

import (
	"testing"
)

func TestNotificationState_ClearLevel(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelSuccess, "saved")
	s.Add(LevelError, "failed")

	s.ClearLevel(LevelSuccess)

	all := s.All()
	if len(all) != 1 || all[0].Level != LevelError {
		t.Errorf("All() after ClearLevel = %+v, want only the error", all)
	}

	s.Clear()
	if s.HasAny() {
		t.Error("HasAny() = true after Clear")
	}
}

// TestNotificationState_GetLayers_NoWindow ensures nothing is positioned before the first resize.
func TestNotificationState_GetLayers_NoWindow(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "hello")

	if got := s.GetLayers(func(n Notification) string { return n.Message }); len(got) != 0 {
		t.Errorf("GetLayers() without window size = %d layers, want 0", len(got))
	}
}

// TestNotificationState_GetLayers_StacksTopRight ensures toasts stack and stop at the bottom edge.
func TestNotificationState_GetLayers_StacksTopRight(t *testing.T) {
	s := NewNotificationState()
	s.SetWindowSize(40, 4)
	s.Add(LevelInfo, "one")
	s.Add(LevelInfo, "two")
	s.Add(LevelInfo, "three")

	layers := s.GetLayers(func(n Notification) string { return n.Message })

	if len(layers) != 2 {
		t.Fatalf("GetLayers() = %d layers, want 2 (third would overflow)", len(layers))
	}
	if layers[0].GetX() != 40-3-1 || layers[0].GetY() != 0 {
		t.Errorf("first layer at (%d,%d), want (36,0)", layers[0].GetX(), layers[0].GetY())
	}
	if layers[1].GetY() != 2 {
		t.Errorf("second layer Y = %d, want 2", layers[1].GetY())
	}
}
