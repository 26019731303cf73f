package checksum

import "testing"

func TestSum(t *testing.T) {
	// Known SHA-256 of the empty input.
	if got := Sum(nil); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("Sum(nil) = %s", got)
	}
	if Sum([]byte("a")) == Sum([]byte("b")) {
		t.Error("distinct inputs share a digest")
	}
}

func TestShort(t *testing.T) {
	data := []byte("pack input")
	short := Short(data)
	if len(short) != 12 {
		t.Fatalf("Short length = %d, want 12", len(short))
	}
	if Sum(data)[:12] != short {
		t.Error("Short is not a prefix of Sum")
	}
}
