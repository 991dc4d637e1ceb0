//go:build !windows

package raw

import "winmsgbox"

func messageBox(hwnd winmsgbox.HWND, text, title *uint16, style winmsgbox.Style) (int32, error) {
	return 0, winmsgbox.ErrUnsupported
}
