package types

import "image"

// Page is one decoded page image produced by a rasterization backend.
// Number is the 1-based position in the document. The save loop owns the
// image only long enough to encode and write it.
type Page struct {
	Number int
	Image  image.Image
}
