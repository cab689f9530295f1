// Package storage persists the portal's named JSON blobs. It mirrors the
// key/value semantics of browser local storage: every write fully replaces
// the value under its key, and unreadable values are treated as absent.
package storage

import "encoding/json"

// Keys under which the portal's records live. The names are fixed so
// existing saved data keeps working.
const (
	KeyDraftRequest     = "eventRequestFormData"
	KeySubmittedRequest = "submittedEventRequest"
	KeyRequestID        = "requestId"
	KeyOrganization     = "organizationProfile"
)

// Store is the persistence adapter the portal components write through.
// Implementations replace the whole value on Put and never merge.
type Store interface {
	// Get returns the value stored under key. The second result is false
	// when no value is present.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// GetJSON reads key and unmarshals it into v. A missing key, a read error
// or a malformed value all report absent: stored data never becomes a
// fatal error for the caller.
func GetJSON(s Store, key string, v any) bool {
	data, ok, err := s.Get(key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// PutJSON marshals v and stores it under key, replacing any prior value.
func PutJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(key, data)
}
