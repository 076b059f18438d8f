package moderation

import "io"

// ImageUpload carries an optional listing photo from the multipart form.
type ImageUpload struct {
	Filename string
	Contents io.Reader
}

// CreateItemRequest is the seller's listing submission. Price arrives as the
// raw form value and defaults to zero when blank.
type CreateItemRequest struct {
	Title       string
	Description string
	Price       string
	Category    string
	Mode        string
	Phone       string
	Image       *ImageUpload
}
