// ABOUTME: Long-term fact types and the result of a fact-store append
// ABOUTME: Facts are categorized one-liners deduplicated by fingerprint
package models

// FactStatus reports the outcome of a fact-store append
type FactStatus string

const (
	// FactSaved means the fact was new and appended
	FactSaved FactStatus = "saved"
	// FactDuplicate means the fingerprint already existed and nothing was written
	FactDuplicate FactStatus = "duplicate"
)

// FactResult is the outcome of saving a long-term fact
type FactResult struct {
	Status      FactStatus `json:"status"`
	Fingerprint string     `json:"fingerprint"`
}

// FactCandidate is a one-line categorized fact distilled from a chat
// exchange, before deduplication
type FactCandidate struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}
