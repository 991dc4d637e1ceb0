package raw

import (
	"testing"
	"unicode/utf16"
	"unsafe"

	"winmsgbox"
)

// decodeWide reads a null-terminated UTF-16 string back into a Go string.
func decodeWide(p *uint16) string {
	var buf []uint16
	for ptr := unsafe.Pointer(p); ; ptr = unsafe.Add(ptr, 2) {
		c := *(*uint16)(ptr)
		if c == 0 {
			break
		}
		buf = append(buf, c)
	}
	return string(utf16.Decode(buf))
}

func TestWRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"Hello World",
		"héllo wörld",
		"line one\r\nline two",
		"music \U0001D11E", // outside the BMP, needs a surrogate pair
	}
	for _, s := range tests {
		if got := decodeWide(W(s)); got != s {
			t.Errorf("W(%q) round trip = %q", s, got)
		}
	}
}

func TestWPanicsOnNUL(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("W did not panic on interior NUL")
		}
	}()
	W("bad\x00string")
}

func TestBuilderStyle(t *testing.T) {
	m := New[winmsgbox.RetryCancel](W("connection lost")).
		Icon(winmsgbox.IconError).
		Title(W("Network")).
		Modal(winmsgbox.ModalSystem).
		DefaultButton(winmsgbox.DefaultButton2).
		SetForeground()

	want := winmsgbox.Flags[winmsgbox.RetryCancel]() |
		winmsgbox.Style(winmsgbox.IconError) |
		winmsgbox.Style(winmsgbox.ModalSystem) |
		winmsgbox.Style(winmsgbox.DefaultButton2) |
		winmsgbox.StyleSetForeground
	if got := m.style(); got != want {
		t.Errorf("style() = %#x, want %#x", got, want)
	}
}

func TestNewDefaults(t *testing.T) {
	text := W("hi")
	m := New[winmsgbox.Okay](text)
	if m.text != text {
		t.Error("text pointer not stored")
	}
	if m.title != nil {
		t.Error("title should default to nil")
	}
	if m.icon != winmsgbox.IconInformation {
		t.Errorf("icon = %#x, want Information", uint32(m.icon))
	}
	if m.hwnd != 0 || m.flags != 0 {
		t.Errorf("unexpected non-zero defaults: hwnd=%v flags=%#x", m.hwnd, m.flags)
	}
}

func TestConstructorsSetIcon(t *testing.T) {
	tests := []struct {
		name string
		ctor func(*uint16) *MessageBox[winmsgbox.YesNo]
		want winmsgbox.Icon
	}{
		{"Exclamation", Exclamation[winmsgbox.YesNo], winmsgbox.IconExclamation},
		{"Warning", Warning[winmsgbox.YesNo], winmsgbox.IconWarning},
		{"Information", Information[winmsgbox.YesNo], winmsgbox.IconInformation},
		{"Asterisk", Asterisk[winmsgbox.YesNo], winmsgbox.IconAsterisk},
		{"Question", Question[winmsgbox.YesNo], winmsgbox.IconQuestion},
		{"Stop", Stop[winmsgbox.YesNo], winmsgbox.IconStop},
		{"Error", Error[winmsgbox.YesNo], winmsgbox.IconError},
		{"Hand", Hand[winmsgbox.YesNo], winmsgbox.IconHand},
	}
	text := W("msg")
	for _, tt := range tests {
		if m := tt.ctor(text); m.icon != tt.want {
			t.Errorf("%s: icon = %#x, want %#x", tt.name, uint32(m.icon), uint32(tt.want))
		}
	}
}
