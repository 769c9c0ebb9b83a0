package cache

// Keyer derives cache keys from content hashes and render options.
type Keyer interface {
	// LayoutKey identifies a layout document for a series.
	LayoutKey(seriesHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies rendered output of a layout document.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds every input that changes the layout document
// besides the values themselves. Style is recorded in the document, so it
// is part of the key.
type LayoutKeyOpts struct {
	Start            string  `json:"start,omitempty"`
	Today            string  `json:"today"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	Padding          string  `json:"padding,omitempty"`
	Labels           bool    `json:"labels"`
	Density          float64 `json:"density"`
	ReferenceDensity float64 `json:"reference_density"`
	Palette          string  `json:"palette,omitempty"`
	Style            string  `json:"style,omitempty"`
}

// ArtifactKeyOpts holds the render options of one output format.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Style      string  `json:"style,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
	Title      string  `json:"title,omitempty"`
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(seriesHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", seriesHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
