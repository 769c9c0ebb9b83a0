package cache

// ScopedKeyer namespaces the keys of another Keyer. Two monthgraph
// installations sharing a Redis or Mongo backend keep separate entries
// when their scopes differ; bumping the scope invalidates everything the
// old one stored.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer wraps inner so every key starts with scope. A nil inner
// means the default keyer; an empty scope returns inner unchanged.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	if scope == "" {
		return inner
	}
	return &ScopedKeyer{inner: inner, scope: scope}
}

// Scope returns the key prefix.
func (k *ScopedKeyer) Scope() string { return k.scope }

// LayoutKey returns the scoped layout key.
func (k *ScopedKeyer) LayoutKey(seriesHash string, opts LayoutKeyOpts) string {
	return k.scope + k.inner.LayoutKey(seriesHash, opts)
}

// ArtifactKey returns the scoped artifact key.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.scope + k.inner.ArtifactKey(layoutHash, opts)
}
