package memory

import "testing"

func TestNewRejectsNonPowerOfTwo(t *testing.T) {
	for _, size := range []int{0, -1, 3, 100, 1 << 16 + 1} {
		if _, err := New(size, nil); err == nil {
			t.Errorf("New(%d, nil) returned nil error, want non-nil", size)
		}
	}
}

func TestNewAcceptsPowersOfTwo(t *testing.T) {
	for _, size := range []int{1, 256, 1 << 10, 1 << 15, 1 << 16} {
		if _, err := New(size, nil); err != nil {
			t.Errorf("New(%d, nil) = %v, want nil error", size, err)
		}
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	b, err := New(256, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Write(0x10, 0x42)
	if got := b.Read(0x10); got != 0x42 {
		t.Errorf("Read(0x10) = 0x%.2X, want 0x42", got)
	}
}

func TestReadWriteMasksToSize(t *testing.T) {
	b, err := New(256, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Write(0x0010, 0x99)
	if got := b.Read(0x0110); got != 0x99 {
		t.Errorf("Read(0x0110) = 0x%.2X, want 0x99 (address aliases every 256 bytes)", got)
	}
}

func TestDatabusValTracksLastAccess(t *testing.T) {
	b, err := New(256, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Write(0x01, 0xAB)
	if got := b.DatabusVal(); got != 0xAB {
		t.Errorf("DatabusVal after write = 0x%.2X, want 0xAB", got)
	}
	b.Write(0x02, 0x00)
	b.Read(0x01)
	if got := b.DatabusVal(); got != 0xAB {
		t.Errorf("DatabusVal after read = 0x%.2X, want 0xAB", got)
	}
}

func TestParentChaining(t *testing.T) {
	outer, err := New(256, nil)
	if err != nil {
		t.Fatalf("New outer: %v", err)
	}
	outer.Write(0x05, 0x77)

	inner, err := New(16, outer)
	if err != nil {
		t.Fatalf("New inner: %v", err)
	}
	if inner.Parent() != outer {
		t.Fatalf("inner.Parent() did not return outer bank")
	}
	if got := LatestDatabusVal(inner); got != 0x77 {
		t.Errorf("LatestDatabusVal(inner) = 0x%.2X, want 0x77 (outer's last write)", got)
	}
}
