package lead

import (
	"testing"

	"scopex/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV_HospitalProjection(t *testing.T) {
	records := []models.LeadRecord{
		hospitalLead("remote-1", "10/25/2024, 2:30 PM", "Apex Heart Institute", "9827012345"),
		{
			ID:           "remote-2",
			Category:     models.CategoryCamp,
			SubmittedAt:  "10/26/2024, 11:15 AM",
			FullName:     "Amit Verma",
			Organization: "Tech Mahindra SEZ",
			Phone:        "8889912344",
			Email:        "amit@techm.com",
			Date:         "2024-11-15",
			Headcount:    "200-500",
			Requirements: "Full wellness screening for 400 employees over 2 days.",
		},
	}

	out, err := ExportCSV(records, models.CategoryHospital)
	require.NoError(t, err)

	csv := string(out)
	assert.Contains(t, csv, "Timestamp,Hospital,Contact,Mobile,Interest\n")
	assert.Contains(t, csv, "\"10/25/2024, 2:30 PM\",Apex Heart Institute,Dr. Rahul Sharma,9827012345,Full Lab Outsourcing\n")
	// The camp record is not part of the hospital export.
	assert.NotContains(t, csv, "Tech Mahindra SEZ")
}

func TestExportCSV_CampProjection(t *testing.T) {
	records := []models.LeadRecord{
		{
			ID:           "remote-2",
			Category:     models.CategoryCamp,
			SubmittedAt:  "10/26/2024, 11:15 AM",
			FullName:     "Amit Verma",
			Organization: "Tech Mahindra SEZ",
			Phone:        "8889912344",
			Email:        "amit@techm.com",
			Date:         "2024-11-15",
			Headcount:    "200-500",
			Requirements: "Full wellness screening",
		},
	}

	out, err := ExportCSV(records, models.CategoryCamp)
	require.NoError(t, err)

	csv := string(out)
	assert.Contains(t, csv, "Timestamp,Organization,Contact,Email,Phone,Date,Headcount,Requirements\n")
	assert.Contains(t, csv, "Tech Mahindra SEZ,Amit Verma,amit@techm.com,8889912344,2024-11-15,200-500,Full wellness screening\n")
}
