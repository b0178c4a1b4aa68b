package normalize

import "strings"

// OrganizationData is what can be read from the free text notes of a donor
// who gives on behalf of an organisation.
type OrganizationData struct {
	Name     string
	Number   string
	JobTitle string
}

var organizationKeys = map[string]string{
	"organization":        "name",
	"organisation":        "name",
	"organization name":   "name",
	"organisation name":   "name",
	"company":             "name",
	"bedrijf":             "name",
	"firma":               "name",
	"entreprise":          "name",
	"number":              "number",
	"organization number": "number",
	"organisation number": "number",
	"ondernemingsnummer":  "number",
	"kbo":                 "number",
	"btw":                 "number",
	"vat":                 "number",
	"job title":           "job",
	"function":            "job",
	"functie":             "job",
	"fonction":            "job",
}

// OrganizationFromNotes reads "key: value" segments separated by ";" or new
// lines. Unknown keys are ignored. The boolean is false when no organisation
// name was found.
func OrganizationFromNotes(notes string) (OrganizationData, bool) {
	var data OrganizationData
	segments := strings.FieldsFunc(notes, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})
	for _, segment := range segments {
		key, value, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.Join(strings.Fields(key), " "))
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch organizationKeys[key] {
		case "name":
			data.Name = value
		case "number":
			data.Number = OrganizationNumber(value)
		case "job":
			data.JobTitle = value
		}
	}
	return data, data.Name != ""
}
