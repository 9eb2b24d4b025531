package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
	"golang.org/x/net/html"
)

// ExtractRecords reads the license list from the single
// <script type="application/json" id="licenses"> block of page.
func ExtractRecords(page []byte) ([]model.LicenseRecord, error) {
	blocks, err := findLicenseBlocks(page)
	if err != nil {
		return nil, extractionError(cn.MsgLicensesJSONInvalid, err)
	}

	switch len(blocks) {
	case 0:
		return nil, extractionError(cn.MsgLicensesJSONNotFound, nil)
	case 1:
	default:
		return nil, extractionError(cn.MsgLicensesJSONMultiple, nil)
	}

	var payload any

	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(blocks[0])))
	dec.UseNumber()

	if err := dec.Decode(&payload); err != nil {
		return nil, extractionError(cn.MsgLicensesJSONInvalid, err)
	}

	if dec.More() {
		return nil, extractionError(cn.MsgLicensesJSONInvalid, errors.New("trailing data after licenses array"))
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, extractionError(cn.MsgLicensesJSONNotArray, nil)
	}

	records := make([]model.LicenseRecord, 0, len(items))

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		records = append(records, model.LicenseRecord{
			Email:      stringField(obj, "email"),
			ProductKey: stringField(obj, "product_key"),
			EndDate:    stringField(obj, "end_date"),
		})
	}

	return records, nil
}

// findLicenseBlocks returns the raw text of every marker block in page.
func findLicenseBlocks(page []byte) ([]string, error) {
	z := html.NewTokenizer(bytes.NewReader(page))

	var (
		blocks  []string
		inBlock bool
		text    strings.Builder
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				if inBlock {
					return nil, errors.New("unterminated licenses block")
				}

				return blocks, nil
			}

			return nil, z.Err()
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) == cn.LicenseBlockTag && hasAttr && isLicenseMarker(z) {
				inBlock = true
				text.Reset()
			}
		case html.TextToken:
			if inBlock {
				text.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if inBlock && string(name) == cn.LicenseBlockTag {
				blocks = append(blocks, text.String())
				inBlock = false
			}
		}
	}
}

func isLicenseMarker(z *html.Tokenizer) bool {
	var typ, id string

	for {
		key, val, more := z.TagAttr()

		switch string(key) {
		case "type":
			typ = strings.TrimSpace(string(val))
		case "id":
			id = strings.TrimSpace(string(val))
		}

		if !more {
			break
		}
	}

	return strings.EqualFold(typ, cn.LicenseBlockType) && strings.EqualFold(id, cn.LicenseBlockID)
}

func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func extractionError(msg string, err error) error {
	return pkg.ExtractionError{
		Code:    cn.ErrLicenseSourceExtraction.Error(),
		Title:   "License list extraction failed",
		Message: msg,
		Err:     err,
	}
}
