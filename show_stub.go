//go:build !windows

package winmsgbox

func messageBox(hwnd HWND, text, title string, style Style) (int32, error) {
	return 0, ErrUnsupported
}
