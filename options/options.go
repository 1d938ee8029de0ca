package options

// SceneOptions carries the command-line configuration for the viewer.
// Fields are pointers so they can be bound directly to flag values.
type SceneOptions struct {
	Width      *int
	Height     *int
	Title      *string
	TextureDir *string
}
