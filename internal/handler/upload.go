package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gibugumi/cms/internal/storage"
)

// maxUploadBytes caps multipart form memory for icon/avatar uploads.
const maxUploadBytes = 10 << 20

// saveUpload stores the uploaded file from the named multipart field and
// returns its public URL. Returns "" with no error when the field is empty,
// so edit forms keep the existing image unless a new one is chosen.
func saveUpload(r *http.Request, store storage.Storage, field, prefix string) (string, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := prefix + "/" + uuid.NewString() + ext
	return store.Save(r.Context(), key, file, header.Header.Get("Content-Type"))
}
