// utils/upload.go
package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// EnsureUploadDir creates the uploads folder if it does not exist.
func EnsureUploadDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// SaveUpload stores an uploaded file under dir as "<millis>-<name>" and
// returns the public path persisted on the record.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
