//go:build windows

package winmsgbox

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procMessageBoxW = user32.NewProc("MessageBoxW")
)

func messageBox(hwnd HWND, text, title string, style Style) (int32, error) {
	textPtr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return 0, fmt.Errorf("winmsgbox: text: %w", err)
	}
	var titlePtr *uint16
	if title != "" {
		titlePtr, err = windows.UTF16PtrFromString(title)
		if err != nil {
			return 0, fmt.Errorf("winmsgbox: title: %w", err)
		}
	}
	ret, _, lastErr := procMessageBoxW.Call(
		uintptr(hwnd),
		uintptr(unsafe.Pointer(textPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(style),
	)
	if ret == 0 {
		// Zero means the call failed; lastErr carries GetLastError.
		return 0, fmt.Errorf("winmsgbox: MessageBoxW: %w", lastErr)
	}
	return int32(ret), nil
}
