package domain

import "strings"

// VerificationIncompleteError lists the prerequisites that block self-verification.
type VerificationIncompleteError struct {
	BasicProfile  bool `json:"basicProfile"`
	WorkerProfile bool `json:"workerProfile"`
}

func (e *VerificationIncompleteError) Error() string {
	var missing []string
	if e.BasicProfile {
		missing = append(missing, "basic profile")
	}
	if e.WorkerProfile {
		missing = append(missing, "worker profile")
	}
	return "verification requirements not met: " + strings.Join(missing, ", ")
}

// CheckVerificationEligibility returns nil when the user may self-verify.
// A worker additionally needs a worker profile with type, charges and experience.
func CheckVerificationEligibility(user *User, profile *Profile, worker *WorkerProfile) error {
	missing := &VerificationIncompleteError{
		BasicProfile: profile == nil ||
			strings.TrimSpace(profile.Name) == "" ||
			strings.TrimSpace(profile.Phone) == "",
	}
	if user != nil && user.Role == RoleWorker {
		missing.WorkerProfile = worker == nil ||
			worker.WorkerType == "" ||
			worker.Charges <= 0 ||
			worker.ExperienceYears == nil
	}
	if missing.BasicProfile || missing.WorkerProfile {
		return missing
	}
	return nil
}
