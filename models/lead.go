package models

import (
	"strings"
	"time"
)

// LeadCategory selects which logical bucket/collection a lead belongs to.
type LeadCategory string

const (
	CategoryHospital LeadCategory = "hospital"
	CategoryCamp     LeadCategory = "camp"
)

// Lead statuses. Transitions are unordered; only the current status is kept.
const (
	StatusNew         = "NEW"
	StatusFollowingUp = "FOLLOWING_UP"
	StatusClosed      = "CLOSED"
)

// LocalIDPrefix marks ids generated locally before any remote confirmation.
const LocalIDPrefix = "local_"

// SubmittedAtLayout is the display stamp produced once at creation,
// e.g. "10/25/2024, 2:30 PM".
const SubmittedAtLayout = "1/2/2006, 3:04 PM"

// Hospital interest labels offered by the enquiry form.
var HospitalInterests = []string{
	"Full Lab Outsourcing",
	"Hybrid Partnership",
	"Equipment & Reagents",
	"NABL Consultancy",
}

// Camp headcount brackets offered by the booking form.
var CampHeadcounts = []string{
	"50-100",
	"100-200",
	"200-500",
	"500+",
}

// ValidHospitalInterest reports whether the enquiry form offers the label.
func ValidHospitalInterest(interest string) bool {
	for _, v := range HospitalInterests {
		if v == interest {
			return true
		}
	}
	return false
}

// ValidCampHeadcount reports whether the booking form offers the bracket.
func ValidCampHeadcount(headcount string) bool {
	for _, v := range CampHeadcounts {
		if v == headcount {
			return true
		}
	}
	return false
}

// LeadRecord is a hospital enquiry or a camp booking. The two variants share
// the envelope fields; variant fields are empty for the other category.
type LeadRecord struct {
	ID          string       `bson:"id" json:"id"`
	Category    LeadCategory `bson:"category" json:"category"`
	SubmittedAt string       `bson:"submittedAt" json:"submittedAt"`
	Status      string       `bson:"status" json:"status"`
	AdminNotes  string       `bson:"adminNotes" json:"adminNotes"`

	// Hospital enquiry fields.
	HospitalName string `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`
	ContactName  string `bson:"contactName,omitempty" json:"contactName,omitempty"`
	Mobile       string `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Interest     string `bson:"interest,omitempty" json:"interest,omitempty"`

	// Camp booking fields.
	FullName     string `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Organization string `bson:"organization,omitempty" json:"organization,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	Date         string `bson:"date,omitempty" json:"date,omitempty"`
	Headcount    string `bson:"headcount,omitempty" json:"headcount,omitempty"`
	Requirements string `bson:"requirements,omitempty" json:"requirements,omitempty"`

	// Server-side creation time, set by the remote store on insert. Used to
	// backfill ordering when the display stamp is missing or unparseable.
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"-"`
}

// IsLocalID reports whether an id was generated locally and is not yet
// confirmed by the remote store.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// EntityName returns the hospital name or the organization, whichever applies.
func (r LeadRecord) EntityName() string {
	if r.Category == CategoryHospital {
		return r.HospitalName
	}
	return r.Organization
}

// ContactPhone returns the mobile or phone field, whichever applies.
func (r LeadRecord) ContactPhone() string {
	if r.Category == CategoryHospital {
		return r.Mobile
	}
	return r.Phone
}

// MatchKey is the dedup heuristic used when merging the two stores: phone
// plus organization/hospital name. Two genuine submissions sharing both
// fields will be merged into one; the source behaved the same way.
func (r LeadRecord) MatchKey() string {
	phone := strings.TrimSpace(r.ContactPhone())
	name := strings.ToLower(strings.TrimSpace(r.EntityName()))
	return phone + "|" + name
}

// SubmittedTime parses the display stamp. A record that cannot be parsed
// sorts with the zero time; CreatedAt is preferred as a fallback when the
// remote store supplied one.
func (r LeadRecord) SubmittedTime() time.Time {
	if t, err := time.Parse(SubmittedAtLayout, r.SubmittedAt); err == nil {
		return t
	}
	return r.CreatedAt
}

// LeadPatch carries a partial update from the admin panel. Nil fields are
// left untouched.
type LeadPatch struct {
	Status     *string `json:"status,omitempty" binding:"omitempty,oneof=NEW FOLLOWING_UP CLOSED"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// Apply patches a record in place.
func (p LeadPatch) Apply(r *LeadRecord) {
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.AdminNotes != nil {
		r.AdminNotes = *p.AdminNotes
	}
}
