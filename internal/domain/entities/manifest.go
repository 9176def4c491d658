package entities

// ManifestFormat identifies a dependency manifest flavour.
type ManifestFormat string

const (
	ManifestComposer  ManifestFormat = "composer"
	ManifestGoMod     ManifestFormat = "gomod"
	ManifestTerraform ManifestFormat = "terraform"
)

// KnownManifestFormats lists every supported manifest format, in detection order.
func KnownManifestFormats() []ManifestFormat {
	return []ManifestFormat{ManifestComposer, ManifestGoMod, ManifestTerraform}
}
