package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"fileremover/internal/keymanager"
)

// KeySink is a focusable wrapper around any CanvasObject. While focused it
// forwards every key event to the KeyManager, so shortcuts keep working
// after a button was clicked or a dialog closed.
type KeySink struct {
	widget.BaseWidget
	Content fyne.CanvasObject
	km      *keymanager.KeyManager
}

// NewKeySink creates a new KeySink wrapping the given content.
func NewKeySink(content fyne.CanvasObject, km *keymanager.KeyManager) *KeySink {
	k := &KeySink{Content: content, km: km}
	k.ExtendBaseWidget(k)
	return k
}

// CreateRenderer delegates rendering to the underlying content.
func (k *KeySink) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(k.Content)
}

func (k *KeySink) FocusGained() {}
func (k *KeySink) FocusLost()   {}

func (k *KeySink) TypedKey(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleTypedKey(ev)
	}
}

func (k *KeySink) TypedRune(r rune) {
	if k.km != nil {
		k.km.HandleTypedRune(r)
	}
}

func (k *KeySink) KeyDown(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleKeyDown(ev)
	}
}

func (k *KeySink) KeyUp(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleKeyUp(ev)
	}
}
