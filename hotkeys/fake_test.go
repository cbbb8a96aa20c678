package hotkeys

import "testing"

func TestFakePressPanicsWhenQueueFull(t *testing.T) {
	fp := NewFakePlatform()
	// Nothing drains the queue; fill it to capacity.
	for fp.Post(Message{Kind: MsgPress, ID: 1}) == nil {
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Press on a full queue did not panic")
		}
	}()
	fp.Press(1, ModCtrl, KeyA)
}
