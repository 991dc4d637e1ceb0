package winmsgbox_test

import (
	"fmt"

	"winmsgbox"
)

func ExampleShow() {
	winmsgbox.Show[winmsgbox.Okay]("Hello World")
}

func ExampleError() {
	resp, err := winmsgbox.Error[winmsgbox.CancelTryAgainContinue]("Couldn't download resource").
		Title("Download Error").
		Show()
	if err != nil {
		return
	}
	switch resp {
	case winmsgbox.Cancel:
		fmt.Println("Cancelling download...")
	case winmsgbox.TryAgain:
		fmt.Println("Attempting redownload...")
	case winmsgbox.Continue:
		fmt.Println("Skipping resource")
	}
}

func ExampleMessageBox_Topmost() {
	winmsgbox.Information[winmsgbox.Okay]("Backup finished.").
		Title("Backup").
		Topmost().
		Show()
}

func ExampleMessageBox_Right() {
	winmsgbox.Information[winmsgbox.Okay]("This is some longer paragraph to demonstrate how\nthe text is right justified.").
		Title("Demo").
		Right().
		Show()
}
