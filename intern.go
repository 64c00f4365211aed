/* Package intern implements a string interning table.

An Interner stores exactly one copy of each distinct string given to
it, naming each stored string by a small dense integer ID. Interning
the same content again returns the same ID without storing anything,
and Lookup recovers the original string from an ID. Code that would
otherwise carry and compare many duplicated strings can carry IDs
instead: equality becomes integer equality, and each distinct value is
stored once.

IDs are assigned in first-insertion order starting at 0, so they also
index any side table a caller keeps per distinct string. They remain
valid for the lifetime of the Interner that issued them; there is no
way to remove an entry.

An Interner is not safe for concurrent use. A caller that shares one
across goroutines must provide its own synchronization.
*/
package intern

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/swiss"
)

// ID names an interned string. IDs are dense: the first distinct
// string interned gets ID 0, the next distinct string ID 1, and so
// on. An ID is only meaningful to the Interner that issued it.
type ID uint32

// Interner maps distinct strings to dense stable IDs and back.
// The zero value is an empty table ready for use.
type Interner struct {
	entries []string
	index   *swiss.Map[string, ID]
}

// New creates an empty Interner with default internal capacity.
func New() *Interner {
	return &Interner{}
}

// WithCapacity creates an empty Interner pre-sized to hold at least n
// entries without reallocating. The hint affects only allocation:
// behavior is identical to New for any n, and n <= 0 hints nothing.
func WithCapacity(n int) *Interner {
	if n < 0 {
		n = 0
	}
	return &Interner{
		entries: make([]string, 0, n),
		index:   swiss.New[string, ID](n),
	}
}

// Intern returns the ID naming s, storing a copy of s first if no
// equal string has been stored before. Equal contents always get the
// same ID, distinct contents distinct IDs; re-interning stores
// nothing and consumes no ID.
//
// Intern cannot fail, but panics if a table ever exhausts the ID
// space (over four billion distinct strings).
func (in *Interner) Intern(s string) ID {
	if in.index == nil {
		in.index = swiss.New[string, ID](0)
	}
	if id, ok := in.index.Get(s); ok {
		return id
	}
	if uint64(len(in.entries)) >= 1<<32 {
		panic("intern: ID space exhausted")
	}
	// Clone so the table never pins a larger backing array that s may
	// be a slice of.
	s = strings.Clone(s)
	id := ID(len(in.entries))
	in.entries = append(in.entries, s)
	in.index.Put(s, id)
	return id
}

// Lookup returns the string interned under id. An id that this
// Interner never issued fails with a LookupError; it never yields a
// wrong string.
func (in *Interner) Lookup(id ID) (string, error) {
	if i := int64(id); i < int64(len(in.entries)) {
		return in.entries[i], nil
	}
	return "", LookupError{ID: id, Len: len(in.entries)}
}

// MustLookup is Lookup for ids the caller knows to be valid: it
// panics with the LookupError rather than returning it.
func (in *Interner) MustLookup(id ID) string {
	s, err := in.Lookup(id)
	if err != nil {
		panic(err)
	}
	return s
}

// Find returns the ID naming s, if s has been interned. Unlike
// Intern it never mutates the table.
func (in *Interner) Find(s string) (ID, bool) {
	if in.index == nil {
		return 0, false
	}
	return in.index.Get(s)
}

// Len returns the number of distinct strings interned so far, which
// is also the ID that the next distinct string will get.
func (in *Interner) Len() int {
	return len(in.entries)
}

// LookupError indicates a Lookup of an ID that was never issued.
type LookupError struct {
	ID  ID  // the id looked up
	Len int // table size at the time of the lookup
}

func (le LookupError) Error() string {
	return fmt.Sprintf("no interned string for id %v (have %v)", le.ID, le.Len)
}
