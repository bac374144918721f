// Package objversion holds the ordered object-version timelines a package
// header can declare.
//
// Both timelines are totally ordered by their integer value: a later engine
// revision always has a strictly larger value. Comparisons such as
//
//	if v >= objversion.UE4AddedSoftObjectPath {
//		// soft object paths are serialized
//	}
//
// are therefore the whole feature-gating mechanism.
package objversion

import (
	"fmt"
	"iter"
)

// ObjectVersion is a revision of the UE4 package serialization format
// (EUnrealEngineObjectUE4Version).
type ObjectVersion int32

// ObjectVersionUE5 is a revision of the UE5 package serialization format
// (EUnrealEngineObjectUE5Version).
type ObjectVersionUE5 int32

// LookupObjectVersion resolves a raw header value to a known UE4 revision.
func LookupObjectVersion(raw int32) (ObjectVersion, bool) {
	v := ObjectVersion(raw)
	return v, v.Valid()
}

// LookupObjectVersionUE5 resolves a raw header value to a known UE5 revision.
func LookupObjectVersionUE5(raw int32) (ObjectVersionUE5, bool) {
	v := ObjectVersionUE5(raw)
	return v, v.Valid()
}

// Valid reports whether v is a member of the UE4 timeline.
func (v ObjectVersion) Valid() bool {
	return v >= UE4OldestLoadablePackage && v <= UE4Automatic
}

// String returns the engine's name for the revision.
func (v ObjectVersion) String() string {
	if !v.Valid() {
		return fmt.Sprintf("ObjectVersion(%d)", int32(v))
	}
	return objectVersionNames[v-UE4OldestLoadablePackage]
}

// Valid reports whether v is a member of the UE5 timeline.
func (v ObjectVersionUE5) Valid() bool {
	return v >= UE5InitialVersion && v <= UE5Automatic
}

func (v ObjectVersionUE5) String() string {
	if !v.Valid() {
		return fmt.Sprintf("ObjectVersionUE5(%d)", int32(v))
	}
	return objectVersionUE5Names[v-UE5InitialVersion]
}

// AllObjectVersions yields every UE4 revision in ascending order.
func AllObjectVersions() iter.Seq[ObjectVersion] {
	return func(yield func(ObjectVersion) bool) {
		for v := UE4OldestLoadablePackage; v <= UE4Automatic; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// AllObjectVersionsUE5 yields every UE5 revision in ascending order.
func AllObjectVersionsUE5() iter.Seq[ObjectVersionUE5] {
	return func(yield func(ObjectVersionUE5) bool) {
		for v := UE5InitialVersion; v <= UE5Automatic; v++ {
			if !yield(v) {
				return
			}
		}
	}
}
