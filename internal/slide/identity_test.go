package slide

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vvka-141/bifslide/pkg/bifslide"
)

func TestIdentityFromHash_Deterministic(t *testing.T) {
	digest := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	id1 := IdentityFromHash(digest)
	id2 := IdentityFromHash(digest)
	if id1 != id2 {
		t.Errorf("IdentityFromHash() is not deterministic: %s != %s", id1, id2)
	}
	if id1.Version() != 5 {
		t.Errorf("IdentityFromHash() version = %d, expected 5", id1.Version())
	}
	if id1.Variant() != uuid.RFC4122 {
		t.Errorf("IdentityFromHash() variant = %v, expected RFC4122", id1.Variant())
	}

	if IdentityFromHash(digest+"0") == id1 {
		t.Error("different digests must give different identities")
	}
}

func TestSlide_ID(t *testing.T) {
	s := New("x")
	if s.ID() != "" {
		t.Errorf("ID() without quickhash = %q, expected empty", s.ID())
	}

	s.Properties().Insert(bifslide.PropertyQuickHash, "00ff")
	want := uuid.NewSHA1(NamespaceSlideIdentity, []byte("00ff")).String()
	if got := s.ID(); got != want {
		t.Errorf("ID() = %q, expected %q", got, want)
	}
}
