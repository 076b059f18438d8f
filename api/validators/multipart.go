package validators

import (
	"net/http"

	"github.com/campuskart/campuskart-backend/internal/moderation"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
)

const imageFormField = "image"

// ParseItemForm reads the multipart listing submission. The image part is
// optional; everything else is carried over as raw form values for the
// service to validate. maxMemoryBytes bounds the in-memory part buffer.
func ParseItemForm(r *http.Request, maxMemoryBytes int64) (moderation.CreateItemRequest, func(), error) {
	cleanup := func() {}
	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		return moderation.CreateItemRequest{}, cleanup, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid form data")
	}

	req := moderation.CreateItemRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Category:    r.FormValue("category"),
		Mode:        r.FormValue("mode"),
		Phone:       r.FormValue("phone"),
	}

	file, header, err := r.FormFile(imageFormField)
	switch {
	case err == http.ErrMissingFile:
		// no upload, image stays nil
	case err != nil:
		return moderation.CreateItemRequest{}, cleanup, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid image upload")
	default:
		req.Image = &moderation.ImageUpload{
			Filename: header.Filename,
			Contents: file,
		}
		cleanup = func() { file.Close() }
	}

	return req, cleanup, nil
}
