package handler

import (
	"fmt"
	"net/http"
	"strings"

	"listcompare-service/internal/compare/model"
	"listcompare-service/internal/config"
	"listcompare-service/internal/fileio"
)

type inputs struct {
	TextA  string
	TextB  string
	LabelA string
	LabelB string
}

// readInputs pulls both list texts and the run options out of the request.
// Each list comes from an uploaded file (fileA/fileB) when present, otherwise
// from the inline form field (text_a/text_b).
func readInputs(r *http.Request, cfg config.Config) (inputs, model.Options, error) {
	defer r.Body.Close()

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		// keep uploads up to the configured cap in memory, rest spills to disk
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			return inputs{}, model.Options{}, fmt.Errorf("bad multipart form: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return inputs{}, model.Options{}, fmt.Errorf("bad form: %w", err)
		}
	}

	textA, err := listText(r, "fileA", "text_a")
	if err != nil {
		return inputs{}, model.Options{}, fmt.Errorf("failed to read A: %w", err)
	}
	textB, err := listText(r, "fileB", "text_b")
	if err != nil {
		return inputs{}, model.Options{}, fmt.Errorf("failed to read B: %w", err)
	}

	opt, err := readOptions(r)
	if err != nil {
		return inputs{}, model.Options{}, err
	}

	in := inputs{
		TextA:  textA,
		TextB:  textB,
		LabelA: pick(r.FormValue("label_a"), "List A"),
		LabelB: pick(r.FormValue("label_b"), "List B"),
	}
	return in, opt, nil
}

func listText(r *http.Request, fileField, textField string) (string, error) {
	f, h, err := r.FormFile(fileField)
	if err != nil {
		// no upload under that name: fall back to inline text
		return r.FormValue(textField), nil
	}
	defer f.Close()
	return fileio.ReadListText(f, h.Filename)
}

// readOptions decodes the option fields, starting from the form defaults:
// auto delimiter, case-insensitive, trimmed, deduplicated, unsorted.
func readOptions(r *http.Request) (model.Options, error) {
	opt := model.DefaultOptions()
	if v := r.FormValue("delimiter"); v != "" {
		d, err := model.ParseDelimiterMode(v)
		if err != nil {
			return model.Options{}, err
		}
		opt.Delimiter = d
	}
	opt.CustomDelimiter = r.FormValue("custom_delimiter")
	opt.CaseSensitive = toBool(r.FormValue("case_sensitive"), opt.CaseSensitive)
	opt.TrimItems = toBool(r.FormValue("trim"), opt.TrimItems)
	opt.Deduplicate = toBool(r.FormValue("deduplicate"), opt.Deduplicate)
	opt.SortResults = toBool(r.FormValue("sort"), opt.SortResults)
	return opt, nil
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func pick(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
