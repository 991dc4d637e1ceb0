package winmsgbox

// Style is the flag word passed to MessageBoxW. Button-set bits come from
// the response type, icon bits from Icon, and the remaining bits from the
// builder methods, so a Style is only ever assembled from valid pieces.
type Style uint32

// Button-set styles. Exactly one is selected by the response type argument.
const (
	mbOK                Style = 0x00000000
	mbOKCancel          Style = 0x00000001
	mbAbortRetryIgnore  Style = 0x00000002
	mbYesNoCancel       Style = 0x00000003
	mbYesNo             Style = 0x00000004
	mbRetryCancel       Style = 0x00000005
	mbCancelTryContinue Style = 0x00000006
)

// Behavior flags set by the builder methods of the same names.
const (
	StyleHelp                Style = 0x00004000
	StyleSetForeground       Style = 0x00010000
	StyleDefaultDesktopOnly  Style = 0x00020000
	StyleTopmost             Style = 0x00040000
	StyleRight               Style = 0x00080000
	StyleRTLReading          Style = 0x00100000
	StyleServiceNotification Style = 0x00200000
)

// Icon selects the system icon shown in the message box. Several names map
// to the same icon because the native API defines them as aliases.
type Icon uint32

const (
	// IconExclamation shows an exclamation-point icon.
	IconExclamation Icon = 0x00000030
	// IconWarning shows an exclamation-point icon.
	IconWarning Icon = 0x00000030
	// IconInformation shows a lowercase letter i in a circle.
	IconInformation Icon = 0x00000040
	// IconAsterisk shows a lowercase letter i in a circle.
	IconAsterisk Icon = 0x00000040
	// IconQuestion shows a question-mark icon. The native API keeps this
	// icon only for backward compatibility; a question mark is easily
	// confused with Help and does not convey a message severity.
	IconQuestion Icon = 0x00000020
	// IconStop shows a stop-sign icon.
	IconStop Icon = 0x00000010
	// IconError shows a stop-sign icon.
	IconError Icon = 0x00000010
	// IconHand shows a stop-sign icon.
	IconHand Icon = 0x00000010
)

// Modal specifies the modality of the message box.
type Modal uint32

const (
	// ModalApplication requires a response before work continues in the
	// owner window. The user can still switch to windows of other threads.
	// This is the native default.
	ModalApplication Modal = 0x00000000
	// ModalSystem is ModalApplication plus the WS_EX_TOPMOST window style,
	// for errors that need immediate attention.
	ModalSystem Modal = 0x00001000
	// ModalTask disables all top-level windows of the calling thread when
	// no owner window is given.
	ModalTask Modal = 0x00002000
)

// DefaultButton selects which button is initially focused. Which button is
// "first" is determined by the button set shown.
type DefaultButton uint32

const (
	DefaultButton1 DefaultButton = 0x00000000
	DefaultButton2 DefaultButton = 0x00000100
	DefaultButton3 DefaultButton = 0x00000200
	DefaultButton4 DefaultButton = 0x00000300
)
