package winmsgbox

import "testing"

func TestNewDefaults(t *testing.T) {
	m := New[Okay]("hello")
	if m.text != "hello" {
		t.Errorf("text = %q, want %q", m.text, "hello")
	}
	if m.icon != IconInformation {
		t.Errorf("icon = %#x, want Information", uint32(m.icon))
	}
	if m.title != "" || m.hwnd != 0 || m.flags != 0 {
		t.Errorf("unexpected non-zero defaults: title=%q hwnd=%v flags=%#x", m.title, m.hwnd, m.flags)
	}
	if got := m.style(); got != mbOK|Style(IconInformation) {
		t.Errorf("style() = %#x, want %#x", got, mbOK|Style(IconInformation))
	}
}

func TestBuilderAccumulatesFlags(t *testing.T) {
	m := New[YesNoCancel]("save changes?").
		Icon(IconWarning).
		Title("Unsaved Changes").
		Owner(42).
		Modal(ModalTask).
		DefaultButton(DefaultButton3).
		Topmost().
		Right()

	want := mbYesNoCancel | Style(IconWarning) | Style(ModalTask) |
		Style(DefaultButton3) | StyleTopmost | StyleRight
	if got := m.style(); got != want {
		t.Errorf("style() = %#x, want %#x", got, want)
	}
	if m.title != "Unsaved Changes" {
		t.Errorf("title = %q", m.title)
	}
	if m.hwnd != 42 {
		t.Errorf("hwnd = %v, want 42", m.hwnd)
	}
}

func TestBuilderRemainingFlags(t *testing.T) {
	m := New[Okay]("x").
		RTLReading().
		SetForeground().
		DefaultDesktopOnly().
		ServiceNotification().
		Help()
	want := StyleRTLReading | StyleSetForeground | StyleDefaultDesktopOnly |
		StyleServiceNotification | StyleHelp
	if m.flags != want {
		t.Errorf("flags = %#x, want %#x", m.flags, want)
	}
}

func TestConstructorsSetIcon(t *testing.T) {
	tests := []struct {
		name string
		ctor func(string) *MessageBox[YesNo]
		want Icon
	}{
		{"Exclamation", Exclamation[YesNo], IconExclamation},
		{"Warning", Warning[YesNo], IconWarning},
		{"Information", Information[YesNo], IconInformation},
		{"Asterisk", Asterisk[YesNo], IconAsterisk},
		{"Question", Question[YesNo], IconQuestion},
		{"Stop", Stop[YesNo], IconStop},
		{"Error", Error[YesNo], IconError},
		{"Hand", Hand[YesNo], IconHand},
	}
	for _, tt := range tests {
		if m := tt.ctor("msg"); m.icon != tt.want {
			t.Errorf("%s: icon = %#x, want %#x", tt.name, uint32(m.icon), uint32(tt.want))
		}
	}
}

// The button-set bits always come from the type argument; nothing a caller
// chains in can change which buttons are shown.
func TestStyleKeepsButtonBits(t *testing.T) {
	m := New[CancelTryAgainContinue]("retry?").
		Icon(IconError).
		Modal(ModalSystem).
		Topmost()
	if got := m.style() & 0xF; got != mbCancelTryContinue {
		t.Errorf("button bits = %#x, want %#x", got, mbCancelTryContinue)
	}
}
