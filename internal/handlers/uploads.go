package handlers

import (
	"context"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/deepdating/deep-dating-api/internal/middlewares"
)

// Avatar uploads are capped at 2MB.
const maxAvatarBytes = 2 << 20

// AvatarSaver persists an uploaded avatar and returns its public URL path.
type AvatarSaver interface {
	Accepts(contentType string) bool
	Save(userID int64, contentType string, r io.Reader) (string, error)
}

// AvatarURLSetter updates a user's avatar reference.
type AvatarURLSetter interface {
	SetAvatarURL(ctx context.Context, userID int64, avatarURL string) error
}

// AvatarResponse returns the public path of the stored avatar
// swagger:model AvatarResponse
type AvatarResponse struct {
	Ok        bool   `json:"ok"`
	AvatarURL string `json:"avatar_url"`
}

// NewAvatarUploadHandler returns an HTTP handler for avatar uploads. The
// multipart field is named "avatar"; only JPEG, PNG and WEBP up to 2MB are
// accepted, sniffed from the file bytes rather than the client header.
// @Summary Upload an avatar image
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "Avatar image (JPEG/PNG/WEBP, max 2MB)"
// @Success 200 {object} handlers.AvatarResponse "Avatar stored"
// @Failure 400 {object} handlers.ErrorResponse "Missing file, bad format or oversized"
// @Router /uploads/avatar [post]
// @Security BearerAuth
func NewAvatarUploadHandler(store AvatarSaver, profiles AvatarURLSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
		if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
			writeMessage(w, http.StatusBadRequest, "image too large (max 2MB)")
			return
		}

		file, _, err := r.FormFile("avatar")
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "no file sent")
			return
		}
		defer file.Close()

		head := make([]byte, 512)
		n, err := file.Read(head)
		if err != nil && err != io.EOF {
			writeInternal(w, err)
			return
		}
		contentType := http.DetectContentType(head[:n])
		if !store.Accepts(contentType) {
			writeMessage(w, http.StatusBadRequest, "invalid format (JPEG, PNG, WEBP only)")
			return
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			writeInternal(w, err)
			return
		}

		avatarURL, err := store.Save(claims.UserID, contentType, file)
		if err != nil {
			writeInternal(w, err)
			return
		}

		if err := profiles.SetAvatarURL(r.Context(), claims.UserID, avatarURL); err != nil {
			writeInternal(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AvatarResponse{Ok: true, AvatarURL: avatarURL})
	}
}

// NewServeUploadHandler serves uploaded files. The file name is reduced to
// its base so path traversal cannot escape the upload directory.
// @Summary Serve an uploaded file
// @Tags uploads
// @Param file path string true "File name"
// @Success 200 {file} binary "File contents"
// @Failure 404 {object} handlers.ErrorResponse "File not found"
// @Router /uploads/{file} [get]
func NewServeUploadHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Base(chi.URLParam(r, "file"))
		if name == "." || name == "/" {
			writeMessage(w, http.StatusNotFound, "Not found")
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}
