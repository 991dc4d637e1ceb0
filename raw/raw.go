// Package raw mirrors winmsgbox for callers that already hold
// null-terminated UTF-16 strings. Nothing is converted at call time, so a
// string encoded once with W can back any number of Show calls.
//
//	hello := raw.W("Hello World")
//	raw.Show[winmsgbox.Okay](hello)
package raw

import (
	"strconv"
	"unicode/utf16"

	"winmsgbox"
)

// W encodes s as a null-terminated UTF-16 string. It panics if s contains
// an interior NUL; it is meant for fixed strings encoded once, typically at
// package init.
func W(s string) *uint16 {
	for _, r := range s {
		if r == 0 {
			panic("raw: string contains NUL: " + strconv.Quote(s))
		}
	}
	enc := utf16.Encode([]rune(s))
	enc = append(enc, 0)
	return &enc[0]
}

// MessageBox configures a modal dialog with a system icon, the button set
// chosen by T, and a brief message, all text pre-encoded as UTF-16.
type MessageBox[T winmsgbox.Buttons] struct {
	text  *uint16
	title *uint16
	icon  winmsgbox.Icon
	hwnd  winmsgbox.HWND
	flags winmsgbox.Style
}

// New creates a message box displaying text with the Information icon.
// text must be a null-terminated UTF-16 string that stays valid until Show
// is called. Without a title the system substitutes "Error".
func New[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return &MessageBox[T]{text: text, icon: winmsgbox.IconInformation}
}

// Icon sets the icon displayed in the message box.
func (m *MessageBox[T]) Icon(icon winmsgbox.Icon) *MessageBox[T] {
	m.icon = icon
	return m
}

// Title sets the dialog title. title must be a null-terminated UTF-16
// string that stays valid until Show is called; nil keeps the system
// default.
func (m *MessageBox[T]) Title(title *uint16) *MessageBox[T] {
	m.title = title
	return m
}

// Owner sets the owner window of the message box. Zero (the default) means
// no owner window.
func (m *MessageBox[T]) Owner(hwnd winmsgbox.HWND) *MessageBox[T] {
	m.hwnd = hwnd
	return m
}

// Modal sets the modality of the message box.
func (m *MessageBox[T]) Modal(modal winmsgbox.Modal) *MessageBox[T] {
	m.flags |= winmsgbox.Style(modal)
	return m
}

// DefaultButton sets which button is initially focused.
func (m *MessageBox[T]) DefaultButton(btn winmsgbox.DefaultButton) *MessageBox[T] {
	m.flags |= winmsgbox.Style(btn)
	return m
}

// Right right-justifies the displayed text.
func (m *MessageBox[T]) Right() *MessageBox[T] {
	m.flags |= winmsgbox.StyleRight
	return m
}

// RTLReading displays message and title in right-to-left reading order on
// Hebrew and Arabic systems.
func (m *MessageBox[T]) RTLReading() *MessageBox[T] {
	m.flags |= winmsgbox.StyleRTLReading
	return m
}

// SetForeground makes the message box the foreground window.
func (m *MessageBox[T]) SetForeground() *MessageBox[T] {
	m.flags |= winmsgbox.StyleSetForeground
	return m
}

// Topmost creates the message box with the WS_EX_TOPMOST window style.
func (m *MessageBox[T]) Topmost() *MessageBox[T] {
	m.flags |= winmsgbox.StyleTopmost
	return m
}

// DefaultDesktopOnly shows the message box on the default desktop of the
// interactive window station.
func (m *MessageBox[T]) DefaultDesktopOnly() *MessageBox[T] {
	m.flags |= winmsgbox.StyleDefaultDesktopOnly
	return m
}

// ServiceNotification marks the caller as a service notifying the user of
// an event. The owner window must stay zero.
func (m *MessageBox[T]) ServiceNotification() *MessageBox[T] {
	m.flags |= winmsgbox.StyleServiceNotification
	return m
}

// Help adds a Help button. Clicking it or pressing F1 sends WM_HELP to the
// owner window.
func (m *MessageBox[T]) Help() *MessageBox[T] {
	m.flags |= winmsgbox.StyleHelp
	return m
}

func (m *MessageBox[T]) style() winmsgbox.Style {
	return winmsgbox.Flags[T]() | winmsgbox.Style(m.icon) | m.flags
}

// Show displays the message box and blocks until the user responds. ESC
// behaves as in winmsgbox: Cancel if present, OK if only OK is shown.
func (m *MessageBox[T]) Show() (T, error) {
	code, err := messageBox(m.hwnd, m.text, m.title, m.style())
	if err != nil {
		var zero T
		return zero, err
	}
	return winmsgbox.Decode[T](code), nil
}

// Show displays a message box with the given pre-encoded text and default
// options.
func Show[T winmsgbox.Buttons](text *uint16) (T, error) {
	return New[T](text).Show()
}

// Exclamation creates a message box with the Exclamation icon.
func Exclamation[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return New[T](text).Icon(winmsgbox.IconExclamation)
}

// Warning creates a message box with the Warning icon.
func Warning[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return New[T](text).Icon(winmsgbox.IconWarning)
}

// Information creates a message box with the Information icon.
func Information[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return New[T](text).Icon(winmsgbox.IconInformation)
}

// Asterisk creates a message box with the Asterisk icon.
func Asterisk[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return New[T](text).Icon(winmsgbox.IconAsterisk)
}

// Question creates a message box with the Question icon.
func Question[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return New[T](text).Icon(winmsgbox.IconQuestion)
}

// Stop creates a message box with the Stop icon.
func Stop[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return New[T](text).Icon(winmsgbox.IconStop)
}

// Error creates a message box with the Error icon.
func Error[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return New[T](text).Icon(winmsgbox.IconError)
}

// Hand creates a message box with the Hand icon.
func Hand[T winmsgbox.Buttons](text *uint16) *MessageBox[T] {
	return New[T](text).Icon(winmsgbox.IconHand)
}
