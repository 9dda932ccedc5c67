package slide

import (
	"github.com/google/uuid"

	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// NamespaceSlideIdentity is the UUID v5 namespace for slide identities,
// derived from the URL namespace and "bifslide/slide-identity/v1".
var NamespaceSlideIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("bifslide/slide-identity/v1"))

// IdentityFromHash returns the slide identity for a quickhash digest.
// Equal digests always give the same identity.
func IdentityFromHash(digest string) uuid.UUID {
	return uuid.NewSHA1(NamespaceSlideIdentity, []byte(digest))
}

// ID returns the slide identity, or "" when the slide has no quickhash.
func (s *Slide) ID() string {
	digest, ok := s.props[bifslide.PropertyQuickHash]
	if !ok || digest == "" {
		return ""
	}
	return IdentityFromHash(digest).String()
}
