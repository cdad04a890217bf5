package lead

import (
	"bytes"
	"encoding/csv"

	"scopex/models"
)

var (
	hospitalCSVHeader = []string{"Timestamp", "Hospital", "Contact", "Mobile", "Interest"}
	campCSVHeader     = []string{"Timestamp", "Organization", "Contact", "Email", "Phone", "Date", "Headcount", "Requirements"}
)

// ExportCSV projects a listing into the admin panel's per-category export
// format. Records of the other category are skipped.
func ExportCSV(records []models.LeadRecord, category models.LeadCategory) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := hospitalCSVHeader
	if category == models.CategoryCamp {
		header = campCSVHeader
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.Category != category {
			continue
		}
		var row []string
		if category == models.CategoryHospital {
			row = []string{r.SubmittedAt, r.HospitalName, r.ContactName, r.Mobile, r.Interest}
		} else {
			row = []string{r.SubmittedAt, r.Organization, r.FullName, r.Email, r.Phone, r.Date, r.Headcount, r.Requirements}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
