package http

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bookPayload is the request body shared by create and update.
type bookPayload struct {
	Name      string `json:"name" validate:"required"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount" validate:"gte=1"`
	ReadPage  int    `json:"readPage" validate:"ltefield=PageCount"`
	Reading   bool   `json:"reading"`
}

// Violation messages keyed by the offending json field.
var violationMessages = map[string]string{
	"name":      "Mohon isi nama buku",
	"readPage":  "readPage tidak boleh lebih besar dari pageCount",
	"pageCount": "pageCount harus bernilai minimal 1",
}

// checkOrder fixes which failure wins when several fields are invalid:
// name first, then the readPage/pageCount relation, then the pageCount
// minimum. validator reports errors in struct-field order, which is not
// the contract's order, so the result is re-ranked here.
var checkOrder = []struct {
	field string
	tag   string
	json  string
}{
	{"Name", "required", "name"},
	{"ReadPage", "ltefield", "readPage"},
	{"PageCount", "gte", "pageCount"},
}

// firstViolation returns the message for the highest-priority failed check,
// or "" when the payload is valid.
func firstViolation(p bookPayload) string {
	err := validate.Struct(p)
	if err == nil {
		return ""
	}

	failed := make(map[string]bool)
	for _, fe := range err.(validator.ValidationErrors) {
		failed[fe.Field()+"/"+fe.Tag()] = true
	}

	for _, c := range checkOrder {
		if failed[c.field+"/"+c.tag] {
			return violationMessages[c.json]
		}
	}
	return ""
}
