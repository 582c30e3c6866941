package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, n Notice) {}

// EnableRuntimeEmitter routes notices to the Wails frontend. ctx must be the
// context handed to OnStartup.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, n Notice) {
		runtime.EventsEmit(ctx, name, n)
		logRuntimeNotice(ctx, name, n)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, n Notice)) {
	if f == nil {
		Emit = func(context.Context, string, Notice) {}
		return
	}
	Emit = f
}

// Publish emits n on the notice channel.
func Publish(ctx context.Context, n Notice) {
	Emit(ctx, NoticeEvent, n)
}
