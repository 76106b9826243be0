package cache

// ScopedKeyer wraps a Keyer with a prefix, giving each deployment sharing
// one Redis its own namespace.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "shortpath:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey generates a prefixed result key.
func (k *ScopedKeyer) ResultKey(graphHash string, source int, settleAll bool) string {
	return k.prefix + k.inner.ResultKey(graphHash, source, settleAll)
}
