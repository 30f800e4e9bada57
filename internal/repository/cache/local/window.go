package local

import (
	"sync"

	"gitee.com/flycash/notification-scheduler/internal/pkg/slidewindow"
)

type lockedWindow struct {
	mu sync.Mutex
	*slidewindow.Window
}
