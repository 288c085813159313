package utils

import "testing"

func TestHashString(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	if got := HashString("abc"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestHashPhone_IgnoresFormatting(t *testing.T) {
	a := HashPhone("+91 85908 66865")
	b := HashPhone("+91-(85908)-66865")

	if a != b {
		t.Errorf("Expected equal hashes, got %s and %s", a, b)
	}
	if a == HashString("+91 85908 66865") {
		t.Error("Expected formatting to be stripped before hashing")
	}
}
