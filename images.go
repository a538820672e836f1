package blogengine

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1200
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// Image describes an uploaded post image. Metadata comes straight from the
// filesystem; the uploads directory is the source of truth.
type Image struct {
	Filename   string `json:"filename"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
}

// processImage decodes an image from src, shrinks it to maxImageWidth when
// wider, and re-encodes it as JPEG. Returns the target filename and bytes.
func processImage(src io.Reader, originalName string) (string, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", nil, fmt.Errorf("encode jpeg: %w", err)
	}

	ext := filepath.Ext(originalName)
	filename := Slugify(strings.TrimSuffix(originalName, ext)) + ".jpg"
	return filename, buf.Bytes(), nil
}

// uniqueFilename appends a counter when filename already exists in dir.
func uniqueFilename(dir, filename string) string {
	base := strings.TrimSuffix(filename, ".jpg")
	candidate := filename
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(dir, candidate)); err != nil {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d.jpg", base, counter+1)
	}
}

func (a *App) uploadsDir() string {
	return filepath.Join(a.staticDir, uploadsSubdir)
}

func (a *App) handleImageUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no image file provided")
	}
	if file.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	filename, data, err := processImage(src, file.Filename)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image: "+err.Error())
	}

	dir := a.uploadsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("blogengine: create uploads dir: %w", err)
	}
	filename = uniqueFilename(dir, filename)

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("blogengine: write image: %w", err)
	}

	return c.JSON(http.StatusCreated, a.imageInfo(filename, int64(len(data)), time.Now().UTC()))
}

func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
	}

	filename := filepath.Base(c.Param("filename"))
	if filename == "" || filename == "." {
		return echo.NewHTTPError(http.StatusBadRequest, "filename required")
	}

	if err := os.Remove(filepath.Join(a.uploadsDir(), filename)); err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound, "image not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *App) handleImageList(c echo.Context) error {
	if !IsAdmin(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
	}

	entries, err := os.ReadDir(a.uploadsDir())
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	images := []Image{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		images = append(images, a.imageInfo(e.Name(), info.Size(), info.ModTime().UTC()))
	}
	sort.Slice(images, func(i, j int) bool {
		return images[i].UploadedAt > images[j].UploadedAt
	})

	return c.JSON(http.StatusOK, map[string][]Image{"images": images})
}

func (a *App) imageInfo(filename string, size int64, uploaded time.Time) Image {
	return Image{
		Filename:   filename,
		URL:        BuildURL(a.Config.URL, "public", uploadsSubdir, filename),
		Size:       size,
		UploadedAt: uploaded.Format(time.RFC3339),
	}
}
