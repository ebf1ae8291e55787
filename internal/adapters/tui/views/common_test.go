package views

import (
	"errors"
	"testing"
)

func TestViewState(t *testing.T) {
	var s ViewState
	if s.Sized() {
		t.Error("zero state should not be sized")
	}

	s.SetSize(80, 30)
	if !s.Sized() {
		t.Error("Sized() = false after SetSize")
	}

	tests := []struct {
		height int
		chrome int
		want   int
	}{
		{height: 30, chrome: 8, want: 22},
		{height: 10, chrome: 8, want: minBodyHeight},
		{height: 0, chrome: 8, want: minBodyHeight},
	}
	for _, tt := range tests {
		s.SetSize(80, tt.height)
		if got := s.BodyHeight(tt.chrome); got != tt.want {
			t.Errorf("BodyHeight(%d) at height %d = %d, want %d", tt.chrome, tt.height, got, tt.want)
		}
	}

	t.Run("copy outcome", func(t *testing.T) {
		s.applyCopied(copiedMsg{id: "RT"})
		if s.Message != "Copied RT" || s.MessageErr {
			t.Errorf("message = %q, err %v", s.Message, s.MessageErr)
		}
		s.applyCopied(copiedMsg{id: "RT", err: errors.New("no display")})
		if s.Message != "clipboard: no display" || !s.MessageErr {
			t.Errorf("message = %q, err %v", s.Message, s.MessageErr)
		}
		s.ClearMessage()
		if s.Message != "" || s.MessageErr {
			t.Error("ClearMessage() left a message")
		}
	})
}
