package lead

import (
	"sort"

	"scopex/models"
)

// mergeLeads reconciles two already-fetched snapshots into the view the
// admin panel sees. Locally-originated records are suppressed when a remote
// record carries the same match key (phone + organization/hospital name);
// the remote copy is authoritative. The result is ordered most recent first
// with a stable sort, so equal timestamps keep their input order.
func mergeLeads(remote, local []models.LeadRecord) []models.LeadRecord {
	remoteKeys := make(map[string]struct{}, len(remote))
	for _, r := range remote {
		remoteKeys[r.MatchKey()] = struct{}{}
	}

	merged := make([]models.LeadRecord, 0, len(remote)+len(local))
	merged = append(merged, remote...)
	for _, l := range local {
		if models.IsLocalID(l.ID) {
			if _, superseded := remoteKeys[l.MatchKey()]; superseded {
				continue
			}
		}
		merged = append(merged, l)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SubmittedTime().After(merged[j].SubmittedTime())
	})
	return merged
}
