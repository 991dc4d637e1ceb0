// Package winmsgbox wraps the native Windows MessageBoxW dialog with typed
// button sets. The type argument of MessageBox selects which buttons are
// shown and which responses are possible, so a caller can neither request a
// combination the native API does not support nor receive a value outside
// the chosen set.
//
// Show a minimal message box with an OK button:
//
//	winmsgbox.Show[winmsgbox.Okay]("Hello World")
//
// Show a message box with an error icon and switch on the response:
//
//	resp, err := winmsgbox.Error[winmsgbox.CancelTryAgainContinue]("Couldn't download resource").
//		Title("Download Error").
//		Show()
//
// Text and title are converted to UTF-16 when Show is called. Callers that
// hold pre-encoded strings can use the raw subpackage instead.
package winmsgbox

import "errors"

// HWND is a handle to the owner window of a message box. Zero means no
// owner.
type HWND = uintptr

// ErrUnsupported is returned by Show on platforms without native message
// boxes.
var ErrUnsupported = errors.New("winmsgbox: message boxes require windows")

// MessageBox configures a modal dialog with a system icon, the button set
// chosen by T, and a brief message.
type MessageBox[T Buttons] struct {
	text  string
	title string
	icon  Icon
	hwnd  HWND
	flags Style
}

// New creates a message box displaying text with the Information icon.
// Separate lines with \r and/or \n. Without a title the system substitutes
// "Error".
func New[T Buttons](text string) *MessageBox[T] {
	return &MessageBox[T]{text: text, icon: IconInformation}
}

// Icon sets the icon displayed in the message box.
func (m *MessageBox[T]) Icon(icon Icon) *MessageBox[T] {
	m.icon = icon
	return m
}

// Title sets the dialog title. An empty title keeps the system default.
func (m *MessageBox[T]) Title(title string) *MessageBox[T] {
	m.title = title
	return m
}

// Owner sets the owner window of the message box. Zero (the default) means
// no owner window.
func (m *MessageBox[T]) Owner(hwnd HWND) *MessageBox[T] {
	m.hwnd = hwnd
	return m
}

// Modal sets the modality of the message box.
func (m *MessageBox[T]) Modal(modal Modal) *MessageBox[T] {
	m.flags |= Style(modal)
	return m
}

// DefaultButton sets which button is initially focused.
func (m *MessageBox[T]) DefaultButton(btn DefaultButton) *MessageBox[T] {
	m.flags |= Style(btn)
	return m
}

// Right right-justifies the displayed text.
func (m *MessageBox[T]) Right() *MessageBox[T] {
	m.flags |= StyleRight
	return m
}

// RTLReading displays message and title in right-to-left reading order on
// Hebrew and Arabic systems.
func (m *MessageBox[T]) RTLReading() *MessageBox[T] {
	m.flags |= StyleRTLReading
	return m
}

// SetForeground makes the message box the foreground window.
func (m *MessageBox[T]) SetForeground() *MessageBox[T] {
	m.flags |= StyleSetForeground
	return m
}

// Topmost creates the message box with the WS_EX_TOPMOST window style.
func (m *MessageBox[T]) Topmost() *MessageBox[T] {
	m.flags |= StyleTopmost
	return m
}

// DefaultDesktopOnly shows the message box on the default desktop of the
// interactive window station; Show does not return until the user switches
// to it.
func (m *MessageBox[T]) DefaultDesktopOnly() *MessageBox[T] {
	m.flags |= StyleDefaultDesktopOnly
	return m
}

// ServiceNotification marks the caller as a service notifying the user of
// an event. The message box appears on the active desktop even with nobody
// logged on. The owner window must stay zero.
func (m *MessageBox[T]) ServiceNotification() *MessageBox[T] {
	m.flags |= StyleServiceNotification
	return m
}

// Help adds a Help button. Clicking it or pressing F1 sends WM_HELP to the
// owner window.
func (m *MessageBox[T]) Help() *MessageBox[T] {
	m.flags |= StyleHelp
	return m
}

func (m *MessageBox[T]) style() Style {
	return Flags[T]() | Style(m.icon) | m.flags
}

// Show displays the message box and blocks until the user responds.
//
// If the set contains a Cancel button, pressing ESC returns Cancel. With
// only an OK button, ESC returns OK. Otherwise the dialog ignores ESC.
// A failure of the native call surfaces the system error code verbatim.
func (m *MessageBox[T]) Show() (T, error) {
	code, err := messageBox(m.hwnd, m.text, m.title, m.style())
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](code), nil
}

// Show displays a message box with the given text and default options.
func Show[T Buttons](text string) (T, error) {
	return New[T](text).Show()
}

// Exclamation creates a message box with the Exclamation icon.
func Exclamation[T Buttons](text string) *MessageBox[T] {
	return New[T](text).Icon(IconExclamation)
}

// Warning creates a message box with the Warning icon.
func Warning[T Buttons](text string) *MessageBox[T] {
	return New[T](text).Icon(IconWarning)
}

// Information creates a message box with the Information icon.
func Information[T Buttons](text string) *MessageBox[T] {
	return New[T](text).Icon(IconInformation)
}

// Asterisk creates a message box with the Asterisk icon.
func Asterisk[T Buttons](text string) *MessageBox[T] {
	return New[T](text).Icon(IconAsterisk)
}

// Question creates a message box with the Question icon.
func Question[T Buttons](text string) *MessageBox[T] {
	return New[T](text).Icon(IconQuestion)
}

// Stop creates a message box with the Stop icon.
func Stop[T Buttons](text string) *MessageBox[T] {
	return New[T](text).Icon(IconStop)
}

// Error creates a message box with the Error icon.
func Error[T Buttons](text string) *MessageBox[T] {
	return New[T](text).Icon(IconError)
}

// Hand creates a message box with the Hand icon.
func Hand[T Buttons](text string) *MessageBox[T] {
	return New[T](text).Icon(IconHand)
}
