package window

import "github.com/go-drift/wincore/pkg/core"

// handleEvent offers an event to ctx's widget and then to each ancestor in
// turn until one returns Handled. It returns the widget that handled the
// event, or nil when the event reached the root unhandled.
func handleEvent(ctx *core.EventContext, deliver func(*core.EventContext) core.EventHandling) *core.ManagedWidget {
	for {
		if deliver(ctx) == core.Handled {
			return ctx.Widget()
		}
		parent, ok := ctx.Parent()
		if !ok {
			return nil
		}
		ctx = parent
	}
}
