// Package uasset validates Unreal Engine package headers and answers
// version questions about the packages behind them.
//
// A package (.uasset, .umap) starts with a small version block. How every
// later field is laid out depends on which engine revision saved the file,
// so decoders for the name table, exports and properties all need to ask
// "was this written at or after revision X?" before reading. uasset does
// the header part and hands back a Reader that answers those questions.
//
// # Quick Start
//
//	r, err := uasset.Open("Content/Characters/Hero.uasset")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	fmt.Println(r.FileVersion()) // VER_UE4_CORRECT_LICENSEE_FLAG
//
//	if r.WasSerializedAtOrAfter(objversion.UE4AddedPackageOwner) {
//		// the summary carries a persistent owner GUID
//	}
//
// Reader implements io.ReadSeeker, so it can be handed to downstream
// decoders in place of the file itself.
//
// # Supported Headers
//
//   - Legacy version -6 and -7: UE4 packages
//   - Legacy version -8: UE5 packages, which add a UE5 object version
//   - Little-endian only; DetectByteOrder recognizes big-endian packages
//
// Object versions are defined in package objversion. Both timelines are
// totally ordered, so a single integer comparison decides a feature.
//
// # Error Handling
//
// Header validation is all or nothing. Every failure is a *HeaderError whose
// Kind is one of:
//
//   - KindInvalidFile: the magic does not match
//   - KindUnsupportedLegacyVersion: legacy version outside [-8, -6]
//   - KindUnversionedAsset: no version information was saved at all
//   - KindUnsupportedFileVersion: UE4 version is zero or unknown
//   - KindUnsupportedFileVersionUE5: UE5 version is unknown
//   - KindParse: the data ended inside the header
//   - KindIO: the source returned an error
//
// Each kind has a sentinel for errors.Is:
//
//	if errors.Is(err, uasset.ErrUnversionedAsset) {
//		// cooked without version info; needs out-of-band versioning
//	}
//
// The unsupported kinds carry the raw header value in HeaderError.Value.
//
// # Concurrency
//
// A Reader belongs to one goroutine. OpenMany opens independent files in
// parallel, one Reader each.
package uasset
