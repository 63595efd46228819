package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"

	"github.com/google/uuid"
)

// candidateNamespace scopes candidate IDs so they never collide with other UUIDv5 users
var candidateNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("candidate-scorer/candidate"))

// Metadata describes one ingested document
type Metadata struct {
	FileName    string `json:"file_name"`
	Hash        string `json:"hash"` // SHA256 hex digest of the cleaned text
	CandidateID string `json:"candidate_id"`
}

// NewMetadata builds document metadata. The candidate ID is derived from the file name and
// content, so re-ingesting the same document always yields the same ID.
func NewMetadata(path string, content string) *Metadata {
	name := filepath.Base(path)
	hash := computeHash(content)
	return &Metadata{
		FileName:    name,
		Hash:        hash,
		CandidateID: CandidateID(name, hash),
	}
}

// CandidateID returns the deterministic UUIDv5 for a file name and content hash.
func CandidateID(fileName, contentHash string) string {
	return uuid.NewSHA1(candidateNamespace, []byte(fileName+"\x00"+contentHash)).String()
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
