package game

// Keyboard is polled key state fed by platform key events. Keys are
// identified by DOM key labels ("a", " ", "ArrowLeft") on every platform.
type Keyboard struct {
	down    map[string]bool
	pressed map[string]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		down:    make(map[string]bool),
		pressed: make(map[string]bool),
	}
}

// Handle records one raw key transition. Wired to the platform surface's
// key handler; must be called on the frame goroutine.
func (k *Keyboard) Handle(key string, down bool) {
	if down {
		if !k.down[key] {
			k.pressed[key] = true
		}
		k.down[key] = true
		return
	}
	delete(k.down, key)
}

// IsDown reports whether the key is currently held.
func (k *Keyboard) IsDown(key string) bool { return k.down[key] }

// Pressed reports whether the key went down since the last EndFrame.
func (k *Keyboard) Pressed(key string) bool { return k.pressed[key] }

// EndFrame clears the edge state; the loop calls it once per frame after
// the scene update.
func (k *Keyboard) EndFrame() {
	clear(k.pressed)
}
