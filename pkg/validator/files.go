package validator

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// imageMimeTypes are accepted by the image rule.
var imageMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/bmp",
	"image/gif",
	"image/svg+xml",
	"image/webp",
}

func fileHeader(v any) (*multipart.FileHeader, bool) {
	fh, ok := v.(*multipart.FileHeader)
	return fh, ok && fh != nil
}

func fileSize(v any) (int64, bool) {
	fh, ok := fileHeader(v)
	if !ok {
		return 0, false
	}
	return fh.Size, true
}

// detect sniffs the uploaded content rather than trusting the client header.
func detect(fh *multipart.FileHeader) (*mimetype.MIME, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	return mimetype.DetectReader(f)
}

func checkImage(_ context.Context, _ *Engine, f *field, _ []string) (bool, error) {
	fh, ok := fileHeader(f.value)
	if !ok {
		return false, nil
	}
	mt, err := detect(fh)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(imageMimeTypes, mt.Is), nil
}

func checkMimes(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	fh, ok := fileHeader(f.value)
	if !ok {
		return false, nil
	}
	mt, err := detect(fh)
	if err != nil {
		return false, err
	}
	for m := mt; m != nil; m = m.Parent() {
		ext := normalizeExt(m.Extension())
		if slices.ContainsFunc(params, func(p string) bool { return normalizeExt(p) == ext }) {
			return true, nil
		}
	}
	return false, nil
}

func checkMimetypes(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	fh, ok := fileHeader(f.value)
	if !ok {
		return false, nil
	}
	mt, err := detect(fh)
	if err != nil {
		return false, err
	}
	for _, p := range params {
		if mt.Is(p) {
			return true, nil
		}
		if group, found := strings.CutSuffix(p, "/*"); found && strings.HasPrefix(mt.String(), group+"/") {
			return true, nil
		}
	}
	return false, nil
}

func checkExtensions(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	fh, ok := fileHeader(f.value)
	if !ok {
		return false, nil
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	return ext != "" && slices.ContainsFunc(params, func(p string) bool {
		return strings.EqualFold(strings.TrimPrefix(p, "."), ext)
	}), nil
}

func checkDimensions(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	fh, ok := fileHeader(f.value)
	if !ok {
		return false, nil
	}
	file, err := fh.Open()
	if err != nil {
		return false, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return false, nil
	}

	for _, p := range params {
		name, raw, found := strings.Cut(p, "=")
		if !found {
			return false, fmt.Errorf("%w: malformed dimension %q", ErrInvalidRuleParams, p)
		}
		if name == "ratio" {
			ratio, err := parseRatio(raw)
			if err != nil {
				return false, err
			}
			tolerance := 1 / float64(max(cfg.Width, cfg.Height)+1)
			if cfg.Height == 0 || abs(ratio-float64(cfg.Width)/float64(cfg.Height)) > tolerance {
				return false, nil
			}
			continue
		}
		want, err := strconv.Atoi(raw)
		if err != nil {
			return false, fmt.Errorf("%w: %q is not an integer", ErrInvalidRuleParams, raw)
		}
		var pass bool
		switch name {
		case "width":
			pass = cfg.Width == want
		case "height":
			pass = cfg.Height == want
		case "min_width":
			pass = cfg.Width >= want
		case "min_height":
			pass = cfg.Height >= want
		case "max_width":
			pass = cfg.Width <= want
		case "max_height":
			pass = cfg.Height <= want
		default:
			return false, fmt.Errorf("%w: unknown dimension %q", ErrInvalidRuleParams, name)
		}
		if !pass {
			return false, nil
		}
	}
	return true, nil
}

func parseRatio(raw string) (float64, error) {
	if num, den, found := strings.Cut(raw, "/"); found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, fmt.Errorf("%w: invalid ratio %q", ErrInvalidRuleParams, raw)
		}
		return n / d, nil
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid ratio %q", ErrInvalidRuleParams, raw)
	}
	return r, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "jpeg" || ext == "jpe" {
		return "jpg"
	}
	return ext
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
