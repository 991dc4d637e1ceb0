package winmsgbox

import "strconv"

// Button identifiers as returned by MessageBoxW. They are untyped so a
// response of any button-set type compares against them directly.
const (
	OK       = 1
	Cancel   = 2
	Abort    = 3
	Retry    = 4
	Ignore   = 5
	Yes      = 6
	No       = 7
	TryAgain = 10
	Continue = 11
)

// Buttons constrains MessageBox to the button combinations the native API
// supports. The type argument fixes both the buttons shown and the set of
// values Show can return, so an unsupported combination does not compile
// and a response outside the chosen set cannot be produced.
type Buttons interface {
	Okay | OkayCancel | YesNo | YesNoCancel | RetryCancel | AbortRetryIgnore | CancelTryAgainContinue
}

// Okay shows a single OK push button.
type Okay int32

// OkayCancel shows OK and Cancel push buttons.
type OkayCancel int32

// YesNo shows Yes and No push buttons.
type YesNo int32

// YesNoCancel shows Yes, No and Cancel push buttons.
type YesNoCancel int32

// RetryCancel shows Retry and Cancel push buttons.
type RetryCancel int32

// AbortRetryIgnore shows Abort, Retry and Ignore push buttons. The native
// API recommends CancelTryAgainContinue instead.
type AbortRetryIgnore int32

// CancelTryAgainContinue shows Cancel, Try Again and Continue push buttons.
type CancelTryAgainContinue int32

// Flags returns the style bits button set T selects.
func Flags[T Buttons]() Style {
	switch any(T(0)).(type) {
	case Okay:
		return mbOK
	case OkayCancel:
		return mbOKCancel
	case YesNo:
		return mbYesNo
	case YesNoCancel:
		return mbYesNoCancel
	case RetryCancel:
		return mbRetryCancel
	case AbortRetryIgnore:
		return mbAbortRetryIgnore
	default:
		return mbCancelTryContinue
	}
}

// Decode maps a raw MessageBoxW return code into button set T. Codes the
// set cannot produce collapse onto its dismissal member (Cancel where one
// exists, otherwise the sole or safest button), so callers only ever see
// members of the set they asked for.
func Decode[T Buttons](code int32) T {
	switch any(T(0)).(type) {
	case Okay:
		code = OK
	case OkayCancel:
		if code != OK {
			code = Cancel
		}
	case YesNo:
		if code != Yes {
			code = No
		}
	case YesNoCancel:
		if code != Yes && code != No {
			code = Cancel
		}
	case RetryCancel:
		if code != Retry {
			code = Cancel
		}
	case AbortRetryIgnore:
		if code != Abort && code != Retry {
			code = Ignore
		}
	case CancelTryAgainContinue:
		if code != TryAgain && code != Continue {
			code = Cancel
		}
	}
	return T(code)
}

func buttonName(code int32) string {
	switch code {
	case OK:
		return "OK"
	case Cancel:
		return "Cancel"
	case Abort:
		return "Abort"
	case Retry:
		return "Retry"
	case Ignore:
		return "Ignore"
	case Yes:
		return "Yes"
	case No:
		return "No"
	case TryAgain:
		return "Try Again"
	case Continue:
		return "Continue"
	}
	return "button(" + strconv.Itoa(int(code)) + ")"
}

func (b Okay) String() string                   { return buttonName(int32(b)) }
func (b OkayCancel) String() string             { return buttonName(int32(b)) }
func (b YesNo) String() string                  { return buttonName(int32(b)) }
func (b YesNoCancel) String() string            { return buttonName(int32(b)) }
func (b RetryCancel) String() string            { return buttonName(int32(b)) }
func (b AbortRetryIgnore) String() string       { return buttonName(int32(b)) }
func (b CancelTryAgainContinue) String() string { return buttonName(int32(b)) }
