// Command msgbox shows a native Windows message box described by flags and
// prints the pressed button to stdout. Defaults for title, icon and topmost
// behavior may come from a .env file next to the executable.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"winmsgbox"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	text := flag.String("text", "", "Message text (required)")
	title := flag.String("title", "", "Dialog title (default MSGBOX_TITLE from .env)")
	icon := flag.String("icon", "", "Icon: info, warn, error or question (default MSGBOX_ICON)")
	buttons := flag.String("buttons", "ok", "Button set: ok, okcancel, yesno, yesnocancel, retrycancel, abortretryignore or canceltrycontinue")
	defBtn := flag.Int("default", 1, "Default button (1-4)")
	topmost := flag.Bool("topmost", false, "Keep the dialog above all other windows")
	verbose := flag.Bool("v", false, "Verbose output to stderr")
	flag.Parse()

	if *text == "" {
		return fmt.Errorf("required flag -text not specified\nUsage: msgbox -text <message> [-title <t>] [-icon <i>] [-buttons <b>] [-default <1-4>] [-topmost] [-v]")
	}

	cfg := loadEnvConfig()
	if *title == "" {
		*title = cfg.Title
	}
	if *icon == "" {
		*icon = cfg.Icon
	}
	onTop := *topmost || cfg.Topmost

	opts, err := resolveOptions(*icon, *defBtn, onTop)
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "[verbose] Showing %q buttons=%s icon=%s topmost=%v\n",
			*text, *buttons, *icon, onTop)
	}

	pressed, err := showButtons(*buttons, *text, *title, opts)
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "[verbose] Dialog dismissed\n")
	}
	fmt.Println(pressed)
	return nil
}

// dialogOptions carries the style choices shared by every button set.
type dialogOptions struct {
	icon    winmsgbox.Icon
	defBtn  winmsgbox.DefaultButton
	topmost bool
}

func resolveOptions(icon string, defBtn int, topmost bool) (dialogOptions, error) {
	ic, err := parseIcon(icon)
	if err != nil {
		return dialogOptions{}, err
	}
	db, err := parseDefaultButton(defBtn)
	if err != nil {
		return dialogOptions{}, err
	}
	return dialogOptions{icon: ic, defBtn: db, topmost: topmost}, nil
}

func parseIcon(name string) (winmsgbox.Icon, error) {
	switch strings.ToLower(name) {
	case "", "info", "information":
		return winmsgbox.IconInformation, nil
	case "warn", "warning", "exclamation":
		return winmsgbox.IconWarning, nil
	case "error", "stop", "hand":
		return winmsgbox.IconError, nil
	case "question":
		return winmsgbox.IconQuestion, nil
	}
	return 0, fmt.Errorf("unknown icon %q (want info, warn, error or question)", name)
}

func parseDefaultButton(n int) (winmsgbox.DefaultButton, error) {
	switch n {
	case 1:
		return winmsgbox.DefaultButton1, nil
	case 2:
		return winmsgbox.DefaultButton2, nil
	case 3:
		return winmsgbox.DefaultButton3, nil
	case 4:
		return winmsgbox.DefaultButton4, nil
	}
	return 0, fmt.Errorf("default button %d out of range 1-4", n)
}

// showButtons dispatches on the button-set name; the set fixes the type
// argument, everything else is shared.
func showButtons(set, text, title string, opts dialogOptions) (fmt.Stringer, error) {
	switch strings.ToLower(set) {
	case "ok":
		return show[winmsgbox.Okay](text, title, opts)
	case "okcancel":
		return show[winmsgbox.OkayCancel](text, title, opts)
	case "yesno":
		return show[winmsgbox.YesNo](text, title, opts)
	case "yesnocancel":
		return show[winmsgbox.YesNoCancel](text, title, opts)
	case "retrycancel":
		return show[winmsgbox.RetryCancel](text, title, opts)
	case "abortretryignore":
		return show[winmsgbox.AbortRetryIgnore](text, title, opts)
	case "canceltrycontinue":
		return show[winmsgbox.CancelTryAgainContinue](text, title, opts)
	}
	return nil, fmt.Errorf("unknown button set %q", set)
}

func show[T winmsgbox.Buttons](text, title string, opts dialogOptions) (T, error) {
	m := winmsgbox.New[T](text).
		Icon(opts.icon).
		DefaultButton(opts.defBtn)
	if title != "" {
		m.Title(title)
	}
	if opts.topmost {
		m.Topmost()
	}
	return m.Show()
}
