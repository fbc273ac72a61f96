// Package testing provides a harness for exercising windows without an OS
// window.
//
// # Quick Start
//
// Open a tester, pump a frame, and drive input:
//
//	func TestMyWindow(t *testing.T) {
//	    clicked := false
//	    button := widgets.NewButton("Go", func() { clicked = true })
//	    tester := wintest.NewWindowTesterWithT(t, button)
//	    tester.Pump()
//
//	    tester.Tap(wintest.ByType[*widgets.Button]())
//
//	    if !clicked {
//	        t.Error("expected click")
//	    }
//	}
//
// The tester drives a [FakeHost], which records the size limits and resize
// requests the runtime sends, and paints into a [RecordingCanvas].
package testing
