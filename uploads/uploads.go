// Package uploads handles product image uploads for seller listings.
package uploads

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"dealaxe/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const (
	uploadsDir    = "./uploads"
	thumbnailSize = 150
	maxUploadSize = 10 << 20 // 10 MB
)

// UploadImage accepts a multipart "image" field, stores it under a
// UUID-based name, and writes a square thumbnail alongside it.
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No files were uploaded")
		return
	}
	defer file.Close()

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Println("UploadImage mkdir error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	filename, err := utils.SaveFile(file, header, uploadsDir)
	if err != nil {
		log.Println("UploadImage save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	if err := writeThumbnail(filename); err != nil {
		// The original is already saved; a failed thumbnail only costs the
		// small preview.
		log.Println("UploadImage thumbnail error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"url": "/uploads/" + filename})
}

func writeThumbnail(filename string) error {
	src, err := imaging.Open(filepath.Join(uploadsDir, filename))
	if err != nil {
		return err
	}
	thumb := imaging.Thumbnail(src, thumbnailSize, thumbnailSize, imaging.Lanczos)

	ext := filepath.Ext(filename)
	thumbName := strings.TrimSuffix(filename, ext) + "_thumb" + ext
	return imaging.Save(thumb, filepath.Join(uploadsDir, thumbName))
}

// ServeUploads exposes stored images.
func ServeUploads(router *httprouter.Router) {
	router.ServeFiles("/uploads/*filepath", http.Dir(uploadsDir))
}
