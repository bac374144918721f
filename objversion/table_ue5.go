package objversion

// UE5 object versions. The UE5 timeline starts at 1000 so it never
// collides with a UE4 value.
const (
	UE5InitialVersion ObjectVersionUE5 = iota + 1000
	UE5NamesReferencedFromExportData
	UE5PayloadToc
	UE5OptionalResources
	UE5LargeWorldCoordinates
	UE5RemoveObjectExportPackageGuid
	UE5TrackObjectExportIsInherited
	UE5FsoftobjectpathRemoveAssetPathFnames
	UE5AddSoftobjectpathList
	UE5DataResources
	UE5ScriptSerializationOffset
	UE5PropertyTagExtensionAndOverridableSerialization
	UE5PropertyTagCompleteTypeName
	UE5AssetregistryPackagebuilddependencies
	UE5MetadataSerializationOffset
	UE5VerseCells
	UE5PackageSavedHash
	UE5OsSubObjectShadowSerialization

	// UE5Automatic is the newest ObjectVersionUE5 known to this package.
	UE5Automatic = UE5OsSubObjectShadowSerialization
)

// objectVersionUE5Names is indexed by value - UE5InitialVersion.
var objectVersionUE5Names = [...]string{
	"VER_UE5_INITIAL_VERSION",
	"VER_UE5_NAMES_REFERENCED_FROM_EXPORT_DATA",
	"VER_UE5_PAYLOAD_TOC",
	"VER_UE5_OPTIONAL_RESOURCES",
	"VER_UE5_LARGE_WORLD_COORDINATES",
	"VER_UE5_REMOVE_OBJECT_EXPORT_PACKAGE_GUID",
	"VER_UE5_TRACK_OBJECT_EXPORT_IS_INHERITED",
	"VER_UE5_FSOFTOBJECTPATH_REMOVE_ASSET_PATH_FNAMES",
	"VER_UE5_ADD_SOFTOBJECTPATH_LIST",
	"VER_UE5_DATA_RESOURCES",
	"VER_UE5_SCRIPT_SERIALIZATION_OFFSET",
	"VER_UE5_PROPERTY_TAG_EXTENSION_AND_OVERRIDABLE_SERIALIZATION",
	"VER_UE5_PROPERTY_TAG_COMPLETE_TYPE_NAME",
	"VER_UE5_ASSETREGISTRY_PACKAGEBUILDDEPENDENCIES",
	"VER_UE5_METADATA_SERIALIZATION_OFFSET",
	"VER_UE5_VERSE_CELLS",
	"VER_UE5_PACKAGE_SAVED_HASH",
	"VER_UE5_OS_SUB_OBJECT_SHADOW_SERIALIZATION",
}
