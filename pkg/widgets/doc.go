// Package widgets provides the small widget set the window runtime is
// exercised with.
//
// Resize and Expand are layout markers: the runtime follows the root's wrap
// chain through them to derive OS window size limits and to decide whether
// the root fills the window. Stack arranges children in rows or columns.
// Space and Button are simple leaves, and Custom forwards every handler to
// optional callbacks.
//
// Widgets are used by pointer so that the tree can mount each one once:
//
//	root := widgets.ResizeTo(geometry.Lpx(300), geometry.Lpx(150),
//	    widgets.Columns(
//	        widgets.NewButton("OK", onOK).AsDefault(),
//	        widgets.NewButton("Cancel", onCancel).AsEscape(),
//	    ))
package widgets
