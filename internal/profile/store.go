package profile

// Store persists the singleton user profile.
//
// Load never fails: a missing or unparsable record degrades to Default().
// Save reports success as a boolean; failures are logged at the store
// boundary and never surface as errors to the caller.
type Store interface {
	Load() UserProfile
	Save(p UserProfile) bool
}
