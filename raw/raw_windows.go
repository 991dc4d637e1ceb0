//go:build windows

package raw

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"winmsgbox"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procMessageBoxW = user32.NewProc("MessageBoxW")
)

func messageBox(hwnd winmsgbox.HWND, text, title *uint16, style winmsgbox.Style) (int32, error) {
	ret, _, lastErr := procMessageBoxW.Call(
		uintptr(hwnd),
		uintptr(unsafe.Pointer(text)),
		uintptr(unsafe.Pointer(title)),
		uintptr(style),
	)
	if ret == 0 {
		// Zero means the call failed; lastErr carries GetLastError.
		return 0, fmt.Errorf("raw: MessageBoxW: %w", lastErr)
	}
	return int32(ret), nil
}
