package ui

import "sync"

// Flash is a notify.Notifier that buffers the latest message so the
// picker can render it as a transient footer line. Dispatcher actions
// run off the Update loop, hence the lock.
type Flash struct {
	mu    sync.Mutex
	msg   string
	isErr bool
	set   bool
}

// NewFlash creates an empty Flash.
func NewFlash() *Flash {
	return &Flash{}
}

func (f *Flash) Success(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msg, f.isErr, f.set = msg, false, true
}

func (f *Flash) Error(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msg, f.isErr, f.set = msg, true, true
}

// Take returns and clears the buffered message. The third return is
// false when nothing was notified since the last Take.
func (f *Flash) Take() (msg string, isErr bool, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, isErr, ok = f.msg, f.isErr, f.set
	f.msg, f.isErr, f.set = "", false, false
	return msg, isErr, ok
}
