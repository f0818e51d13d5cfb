// Package probability holds per-file classification probabilities and
// their delimited text serialization.
package probability

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Record is one (filename, label, probability) row, optionally carrying
// a frame or segment index.
type Record struct {
	Filename    string   `yaml:"filename"`
	Label       string   `yaml:"label"`
	Probability *float64 `yaml:"probability,omitempty"`
	Index       *int     `yaml:"index,omitempty"`
}

// Float returns a pointer to the given probability value.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to the given index value.
func Int(v int) *int {
	return &v
}

// ID returns the content-derived identifier of the record: the MD5
// digest over filename, label and probability. A zero probability is
// treated as unset, and the index does not contribute.
func (r *Record) ID() string {
	var b strings.Builder
	b.WriteString(r.Filename)
	b.WriteString(r.Label)
	if r.Probability != nil && *r.Probability != 0 {
		fmt.Fprintf(&b, "%8.4f", *r.Probability)
	}
	sum := md5.Sum([]byte(b.String())) //nolint:gosec // content fingerprint, not security
	return hex.EncodeToString(sum[:])
}

// Copy returns a deep copy of the record.
func (r *Record) Copy() Record {
	clone := *r
	if r.Probability != nil {
		v := *r.Probability
		clone.Probability = &v
	}
	if r.Index != nil {
		v := *r.Index
		clone.Index = &v
	}
	return clone
}

// String returns a compact single-line summary for logs.
func (r *Record) String() string {
	parts := make([]string, 0, 4)
	if r.Filename != "" {
		parts = append(parts, r.Filename)
	}
	if r.Label != "" {
		parts = append(parts, r.Label)
	}
	if r.Probability != nil {
		parts = append(parts, fmt.Sprintf("%.4f", *r.Probability))
	}
	if r.Index != nil {
		parts = append(parts, fmt.Sprintf("i=%d", *r.Index))
	}
	return strings.Join(parts, " ")
}
