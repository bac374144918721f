package objversion

// UE4 object versions, in the order the engine introduced them.
// Values are contiguous; each revision is one greater than the previous.
const (
	UE4OldestLoadablePackage ObjectVersion = iota + 214
	UE4BlueprintVarsNotReadOnly
	UE4StaticMeshStoreNavCollision
	UE4AtmosphericFogDecayNameChange
	UE4ScenecompTranslationToLocation
	UE4MaterialAttributesReordering
	UE4CollisionProfileSetting
	UE4BlueprintSkelTemporaryTransient
	UE4BlueprintSkelSerializedAgain
	UE4BlueprintSetsReplication
	UE4WorldLevelInfo
	UE4AfterCapsuleHalfHeightChange
	UE4AddedNamespaceAndKeyDataToFtext
	UE4AttenuationShapes
	UE4LightcomponentUseIesTextureMultiplierOnNonIesBrightness
	UE4RemoveInputComponentsFromBlueprints
	UE4Vark2nodeUseMemberrefstruct
	UE4RefactorMaterialExpressionScenecolorAndScenedepthInputs
	UE4SplineMeshOrientation
	UE4ReverbEffectAssetType
	UE4MaxTexcoordIncreased
	UE4SpeedtreeStaticmesh
	UE4LandscapeComponentLazyReferences
	UE4SwitchCallNodeToUseMemberReference
	UE4AddedSkeletonArchiverRemoval
	UE4AddedSkeletonArchiverRemovalSecondTime
	UE4BlueprintSkelClassTransientAgain
	UE4AddCookedToUclass
	UE4DeprecatedStaticMeshThumbnailPropertiesRemoved
	UE4CollectionsInShadermapid
	UE4RefactorMovementComponentHierarchy
	UE4FixTerrainLayerSwitchOrder
	UE4AllPropsToConstraintinstance
	UE4LowQualityDirectionalLightmaps
	UE4AddedNoiseEmitterComponent
	UE4AddTextComponentVerticalAlignment
	UE4AddedFbxAssetImportData
	UE4RemoveLevelbodysetup
	UE4RefactorCharacterCrouch
	UE4SmallerDebugMaterialshaderUniformExpressions
	UE4ApexCloth
	UE4SaveCollisionresponsePerChannel
	UE4AddedLandscapeSplineEditorMesh
	UE4ChangedMaterialRefactionType
	UE4RefactorProjectileMovement
	UE4RemovePhysicalmaterialproperty
	UE4PurgedFmaterialCompileOutputs
	UE4AddCookedToLandscape
	UE4ConsumeInputPerBind
	UE4SoundClassGraphEditor
	UE4FixupTerrainLayerNodes
	UE4RetrofitClampExpressionsSwap
	UE4RemoveLightMobilityClasses
	UE4RefactorPhysicsBlending
	UE4WorldLevelInfoUpdated
	UE4StaticSkeletalMeshSerializationFix
	UE4RemoveStaticmeshMobilityClasses
	UE4RefactorPhysicsTransforms
	UE4RemoveZeroTriangleSections
	UE4CharacterMovementDeceleration
	UE4CameraActorUsingCameraComponent
	UE4CharacterMovementDeprecatePitchRoll
	UE4RebuildTextureStreamingDataOnLoad
	UE4Support32bitStaticMeshIndices
	UE4AddedChunkidToAssetdataAndUpackage
	UE4CharacterDefaultMovementBindings
	UE4ApexClothLod
	UE4AtmosphericFogCacheData
	UE4ArrayPropertyInnerTags
	UE4KeepSkelMeshIndexData
	UE4BodysetupCollisionConversion
	UE4ReflectionCaptureCooking
	UE4RemoveDynamicVolumeClasses
	UE4StoreHascookeddataForBodysetup
	UE4RefractionBiasToRefractionDepthBias
	UE4RemoveSkeletalphysicsactor
	UE4PcRotationInputRefactor
	UE4LandscapePlatformdataCooking
	UE4CreateexportsClassLinkingForBlueprints
	UE4RemoveNativeComponentsFromBlueprintScs
	UE4RemoveSinglenodeinstance
	UE4CharacterBrakingRefactor
	UE4VolumeSampleLowQualitySupport
	UE4SplitTouchAndClickEnables
	UE4HealthDeathRefactor
	UE4SoundNodeEnveloperCurveChange
	UE4PointLightSourceRadius
	UE4SceneCaptureCameraChange
	UE4MoveSkeletalmeshShadowcasting
	UE4ChangeSetarrayBytecode
	UE4MaterialInstanceBasePropertyOverrides
	UE4CombinedLightmapTextures
	UE4BumpedMaterialExportGuids
	UE4BlueprintInputBindingOverrides
	UE4FixupBodysetupInvalidConvexTransform
	UE4FixupStiffnessAndDampingScale
	UE4ReferenceSkeletonRefactor
	UE4K2nodeReferenceguids
	UE4FixupRootboneParent
	UE4TextRenderComponentsWorldSpaceSizing
	UE4MaterialInstanceBasePropertyOverridesPhase2
	UE4ClassNotplaceableAdded
	UE4WorldLevelInfoLodList
	UE4CharacterMovementVariableRenaming1
	UE4FslatesoundConversion
	UE4WorldLevelInfoZorder
	UE4PackageRequiresLocalizationGatherFlagging
	UE4BpActorVariableDefaultPreventing
	UE4TestAnimcompChange
	UE4EditoronlyBlueprints
	UE4EdgraphpintypeSerialization
	UE4NoMirrorBrushModelCollision
	UE4ChangedChunkidToBeAnArrayOfChunkids
	UE4WorldNamedAfterPackage
	UE4SkyLightComponent
	UE4WorldLayerEnableDistanceStreaming
	UE4RemoveZonesFromModel
	UE4FixAnimationbaseposeSerialization
	UE4Support8BoneInfluencesSkeletalMeshes
	UE4AddOverrideGravityFlag
	UE4SupportGpuskinning8BoneInfluences
	UE4AnimSupportNonuniformScaleAnimation
	UE4EngineVersionObject
	UE4PublicWorlds
	UE4SkeletonGuidSerialization
	UE4CharacterMovementWalkableFloorRefactor
	UE4InverseSquaredLightsDefault
	UE4DisabledScriptLimitBytecode
	UE4PrivateRemoteRole
	UE4FoliageStaticMobility
	UE4BuildScaleVector
	UE4FoliageCollision
	UE4SkyBentNormal
	UE4LandscapeCollisionDataCooking
	UE4MorphtargetCpuTangentzdeltaFormatchange
	UE4SoftConstraintsUseMass
	UE4ReflectionDataInPackages
	UE4FoliageMovableMobility
	UE4UndoBreakMaterialattributesChange
	UE4AddCustomprofilenameChange
	UE4FlipMaterialCoords
	UE4MemberreferenceInPintype
	UE4VehiclesUnitChange
	UE4AnimationRemoveNans
	UE4SkeletonAssetPropertyTypeChange
	UE4FixBlueprintVariableFlags
	UE4VehiclesUnitChange2
	UE4UclassSerializeInterfacesAfterLinking
	UE4StaticMeshScreenSizeLods
	UE4FixMaterialCoords
	UE4SpeedtreeWindV7
	UE4LoadForEditorGame
	UE4SerializeRichCurveKey
	UE4MoveLandscapeMicsAndTexturesWithinLevel
	UE4FtextHistory
	UE4FixMaterialComments
	UE4StoreBoneExportNames
	UE4MeshEmitterInitialOrientationDistribution
	UE4DisallowFoliageOnBlueprints
	UE4FixupMotorUnits
	UE4DeprecatedMovementcomponentModifiedSpeeds
	UE4RenameCanbecharacterbase
	UE4GameplayTagContainerTagTypeChange
	UE4FoliageSettingsType
	UE4StaticShadowDepthMaps
	UE4AddTransactionalToDataAssets
	UE4AddLbWeightblend
	UE4AddRootcomponentToFoliageactor
	UE4FixMaterialPropertyOverrideSerialize
	UE4AddLinearColorSampler
	UE4AddStringAssetReferencesMap
	UE4BlueprintUseScsRootcomponentScale
	UE4LevelStreamingDrawColorTypeChange
	UE4ClearNotifyTriggers
	UE4SkeletonAddSmartnames
	UE4AddedCurrencyCodeToFtext
	UE4EnumClassSupport
	UE4FixupWidgetAnimationClass
	UE4SoundCompressionTypeAdded
	UE4AutoWelding
	UE4RenameCrouchmovescharacterdown
	UE4LightmapMeshBuildSettings
	UE4RenameSm3ToEs31
	UE4DeprecateUmgStyleAssets
	UE4PostDuplicateNodeGuid
	UE4RenameCameraComponentViewRotation
	UE4CasePreservingFname
	UE4RenameCameraComponentControlRotation
	UE4FixRefractionInputMasking
	UE4GlobalEmitterSpawnRateScale
	UE4CleanDestructibleSettings
	UE4CharacterMovementUpperImpactBehavior
	UE4BpMathVectorEqualityUsesEpsilon
	UE4FoliageStaticLightingSupport
	UE4SlateCompositeFonts
	UE4RemoveSavegamesummary
	UE4RemoveSkeletalmeshComponentBodysetupSerialization
	UE4SlateBulkFontData
	UE4AddProjectileFrictionBehavior
	UE4MovementcomponentAxisSettings
	UE4GraphInteractiveCommentbubbles
	UE4LandscapeSerializePhysicsMaterials
	UE4RenameWidgetVisibility
	UE4AnimationAddTrackcurves
	UE4MontageBranchingPointRemoval
	UE4BlueprintEnforceConstInFunctionOverrides
	UE4AddPivotToWidgetComponent
	UE4PawnAutoPossessAi
	UE4FtextHistoryDateTimezone
	UE4SortActiveBoneIndices
	UE4PerframeMaterialUniformExpressions
	UE4MikktspaceIsDefault
	UE4LandscapeGrassCooking
	UE4FixSkelVertOrientMeshParticles
	UE4LandscapeStaticSectionOffset
	UE4AddModifiersRuntimeGeneration
	UE4MaterialMaskedBlendmodeTidy
	UE4MergedAddModifiersRuntimeGenerationTo47Deprecated
	UE4AfterMergedAddModifiersRuntimeGenerationTo47Deprecated
	UE4MergedAddModifiersRuntimeGenerationTo47
	UE4AfterMergingAddModifiersRuntimeGenerationTo47
	UE4SerializeLandscapeGrassData
	UE4OptionallyClearGpuEmittersOnInit
	UE4SerializeLandscapeGrassDataMaterialGuid
	UE4BlueprintGeneratedClassComponentTemplatesPublic
	UE4ActorComponentCreationMethod
	UE4K2nodeEventMemberReference
	UE4StructGuidInPropertyTag
	UE4RemoveUnusedUpolysFromUmodel
	UE4RebuildHierarchicalInstanceTrees
	UE4PackageSummaryHasCompatibleEngineVersion
	UE4TrackUcsModifiedProperties
	UE4LandscapeSplineCrossLevelMeshes
	UE4DeprecateUserWidgetDesignSize
	UE4AddEditorViews
	UE4FoliageWithAssetOrClass
	UE4BodyinstanceBinarySerialization
	UE4SerializeBlueprintEventgraphFastcallsInUfunction
	UE4InterpcurveSupportsLooping
	UE4MaterialInstanceBasePropertyOverridesDitheredLodTransition
	UE4SerializeLandscapeEs2Textures
	UE4ConstraintInstanceMotorFlags
	UE4SerializePintypeConst
	UE4LibraryCategoriesAsFtext
	UE4SkipDuplicateExportsOnSavePackage
	UE4SerializeTextInPackages
	UE4AddBlendModeToWidgetComponent
	UE4NewLightmassPrimitiveSetting
	UE4ReplaceSpringNozProperty
	UE4TightlyPackedEnums
	UE4AssetImportDataAsJson
	UE4TextureLegacyGamma
	UE4AddedNativeSerializationForImmutableStructures
	UE4DeprecateUmgStyleOverrides
	UE4StaticShadowmapPenumbraSize
	UE4NiagaraDataObjectDevUiFix
	UE4FixedDefaultOrientationOfWidgetComponent
	UE4RemovedMaterialUsedWithUiFlag
	UE4CharacterMovementAddBrakingFriction
	UE4BspUndoFix
	UE4DynamicParameterDefaultValue
	UE4StaticMeshExtendedBounds
	UE4AddedNonLinearTransitionBlends
	UE4AoMaterialMask
	UE4NavigationAgentSelector
	UE4MeshParticleCollisionsConsiderParticleSize
	UE4BuildMeshAdjBufferFlagExposed
	UE4MaxAngularVelocityDefault
	UE4ApexClothTessellation
	UE4DecalSize
	UE4KeepOnlyPackageNamesInStringAssetReferencesMap
	UE4CookedAssetsInEditorSupport
	UE4DialogueWaveNamespaceAndContextChanges
	UE4MakeRotRenameAndReorder
	UE4K2nodeVarReferenceguids
	UE4SoundConcurrencyPackage
	UE4UserwidgetDefaultFocusableFalse
	UE4BlueprintCustomEventConstInput
	UE4UseLowPassFilterFreq
	UE4NoAnimBpClassInGameplayCode
	UE4ScsStoresAllnodesArray
	UE4FbxImportDataRangeEncapsulation
	UE4CameraComponentAttachToRoot
	UE4InstancedStereoUniformUpdate
	UE4StreamableTextureMinMaxDistance
	UE4InjectBlueprintStructPinConversionNodes
	UE4InnerArrayTagInfo
	UE4FixSlotNameDuplication
	UE4StreamableTextureAabb
	UE4PropertyGuidInPropertyTag
	UE4NameHashesSerialized
	UE4InstancedStereoUniformRefactor
	UE4CompressedShaderResources
	UE4PreloadDependenciesInCookedExports
	UE4TemplateindexInCookedExports
	UE4PropertyTagSetMapSupport
	UE4AddedSearchableNames
	UE4ExportMapSerialSizes64Bit
	UE4SkylightMobileIrradianceMap
	UE4AddedSweepWhileWalkingFlag
	UE4AddedSoftObjectPath
	UE4PointlightSourceOrientation
	UE4AddedPackageSummaryLocalizationId
	UE4FixWideStringCrc
	UE4AddedPackageOwner
	UE4SkinweightProfileDataLayoutChanges
	UE4NonOuterPackageImport
	UE4AssetregistryDependencyflags
	UE4CorrectLicenseeFlag

	// UE4Automatic is the newest ObjectVersion known to this package.
	UE4Automatic = UE4CorrectLicenseeFlag
)

// objectVersionNames is indexed by value - UE4OldestLoadablePackage.
var objectVersionNames = [...]string{
	"VER_UE4_OLDEST_LOADABLE_PACKAGE",
	"VER_UE4_BLUEPRINT_VARS_NOT_READ_ONLY",
	"VER_UE4_STATIC_MESH_STORE_NAV_COLLISION",
	"VER_UE4_ATMOSPHERIC_FOG_DECAY_NAME_CHANGE",
	"VER_UE4_SCENECOMP_TRANSLATION_TO_LOCATION",
	"VER_UE4_MATERIAL_ATTRIBUTES_REORDERING",
	"VER_UE4_COLLISION_PROFILE_SETTING",
	"VER_UE4_BLUEPRINT_SKEL_TEMPORARY_TRANSIENT",
	"VER_UE4_BLUEPRINT_SKEL_SERIALIZED_AGAIN",
	"VER_UE4_BLUEPRINT_SETS_REPLICATION",
	"VER_UE4_WORLD_LEVEL_INFO",
	"VER_UE4_AFTER_CAPSULE_HALF_HEIGHT_CHANGE",
	"VER_UE4_ADDED_NAMESPACE_AND_KEY_DATA_TO_FTEXT",
	"VER_UE4_ATTENUATION_SHAPES",
	"VER_UE4_LIGHTCOMPONENT_USE_IES_TEXTURE_MULTIPLIER_ON_NON_IES_BRIGHTNESS",
	"VER_UE4_REMOVE_INPUT_COMPONENTS_FROM_BLUEPRINTS",
	"VER_UE4_VARK2NODE_USE_MEMBERREFSTRUCT",
	"VER_UE4_REFACTOR_MATERIAL_EXPRESSION_SCENECOLOR_AND_SCENEDEPTH_INPUTS",
	"VER_UE4_SPLINE_MESH_ORIENTATION",
	"VER_UE4_REVERB_EFFECT_ASSET_TYPE",
	"VER_UE4_MAX_TEXCOORD_INCREASED",
	"VER_UE4_SPEEDTREE_STATICMESH",
	"VER_UE4_LANDSCAPE_COMPONENT_LAZY_REFERENCES",
	"VER_UE4_SWITCH_CALL_NODE_TO_USE_MEMBER_REFERENCE",
	"VER_UE4_ADDED_SKELETON_ARCHIVER_REMOVAL",
	"VER_UE4_ADDED_SKELETON_ARCHIVER_REMOVAL_SECOND_TIME",
	"VER_UE4_BLUEPRINT_SKEL_CLASS_TRANSIENT_AGAIN",
	"VER_UE4_ADD_COOKED_TO_UCLASS",
	"VER_UE4_DEPRECATED_STATIC_MESH_THUMBNAIL_PROPERTIES_REMOVED",
	"VER_UE4_COLLECTIONS_IN_SHADERMAPID",
	"VER_UE4_REFACTOR_MOVEMENT_COMPONENT_HIERARCHY",
	"VER_UE4_FIX_TERRAIN_LAYER_SWITCH_ORDER",
	"VER_UE4_ALL_PROPS_TO_CONSTRAINTINSTANCE",
	"VER_UE4_LOW_QUALITY_DIRECTIONAL_LIGHTMAPS",
	"VER_UE4_ADDED_NOISE_EMITTER_COMPONENT",
	"VER_UE4_ADD_TEXT_COMPONENT_VERTICAL_ALIGNMENT",
	"VER_UE4_ADDED_FBX_ASSET_IMPORT_DATA",
	"VER_UE4_REMOVE_LEVELBODYSETUP",
	"VER_UE4_REFACTOR_CHARACTER_CROUCH",
	"VER_UE4_SMALLER_DEBUG_MATERIALSHADER_UNIFORM_EXPRESSIONS",
	"VER_UE4_APEX_CLOTH",
	"VER_UE4_SAVE_COLLISIONRESPONSE_PER_CHANNEL",
	"VER_UE4_ADDED_LANDSCAPE_SPLINE_EDITOR_MESH",
	"VER_UE4_CHANGED_MATERIAL_REFACTION_TYPE",
	"VER_UE4_REFACTOR_PROJECTILE_MOVEMENT",
	"VER_UE4_REMOVE_PHYSICALMATERIALPROPERTY",
	"VER_UE4_PURGED_FMATERIAL_COMPILE_OUTPUTS",
	"VER_UE4_ADD_COOKED_TO_LANDSCAPE",
	"VER_UE4_CONSUME_INPUT_PER_BIND",
	"VER_UE4_SOUND_CLASS_GRAPH_EDITOR",
	"VER_UE4_FIXUP_TERRAIN_LAYER_NODES",
	"VER_UE4_RETROFIT_CLAMP_EXPRESSIONS_SWAP",
	"VER_UE4_REMOVE_LIGHT_MOBILITY_CLASSES",
	"VER_UE4_REFACTOR_PHYSICS_BLENDING",
	"VER_UE4_WORLD_LEVEL_INFO_UPDATED",
	"VER_UE4_STATIC_SKELETAL_MESH_SERIALIZATION_FIX",
	"VER_UE4_REMOVE_STATICMESH_MOBILITY_CLASSES",
	"VER_UE4_REFACTOR_PHYSICS_TRANSFORMS",
	"VER_UE4_REMOVE_ZERO_TRIANGLE_SECTIONS",
	"VER_UE4_CHARACTER_MOVEMENT_DECELERATION",
	"VER_UE4_CAMERA_ACTOR_USING_CAMERA_COMPONENT",
	"VER_UE4_CHARACTER_MOVEMENT_DEPRECATE_PITCH_ROLL",
	"VER_UE4_REBUILD_TEXTURE_STREAMING_DATA_ON_LOAD",
	"VER_UE4_SUPPORT_32BIT_STATIC_MESH_INDICES",
	"VER_UE4_ADDED_CHUNKID_TO_ASSETDATA_AND_UPACKAGE",
	"VER_UE4_CHARACTER_DEFAULT_MOVEMENT_BINDINGS",
	"VER_UE4_APEX_CLOTH_LOD",
	"VER_UE4_ATMOSPHERIC_FOG_CACHE_DATA",
	"VAR_UE4_ARRAY_PROPERTY_INNER_TAGS",
	"VER_UE4_KEEP_SKEL_MESH_INDEX_DATA",
	"VER_UE4_BODYSETUP_COLLISION_CONVERSION",
	"VER_UE4_REFLECTION_CAPTURE_COOKING",
	"VER_UE4_REMOVE_DYNAMIC_VOLUME_CLASSES",
	"VER_UE4_STORE_HASCOOKEDDATA_FOR_BODYSETUP",
	"VER_UE4_REFRACTION_BIAS_TO_REFRACTION_DEPTH_BIAS",
	"VER_UE4_REMOVE_SKELETALPHYSICSACTOR",
	"VER_UE4_PC_ROTATION_INPUT_REFACTOR",
	"VER_UE4_LANDSCAPE_PLATFORMDATA_COOKING",
	"VER_UE4_CREATEEXPORTS_CLASS_LINKING_FOR_BLUEPRINTS",
	"VER_UE4_REMOVE_NATIVE_COMPONENTS_FROM_BLUEPRINT_SCS",
	"VER_UE4_REMOVE_SINGLENODEINSTANCE",
	"VER_UE4_CHARACTER_BRAKING_REFACTOR",
	"VER_UE4_VOLUME_SAMPLE_LOW_QUALITY_SUPPORT",
	"VER_UE4_SPLIT_TOUCH_AND_CLICK_ENABLES",
	"VER_UE4_HEALTH_DEATH_REFACTOR",
	"VER_UE4_SOUND_NODE_ENVELOPER_CURVE_CHANGE",
	"VER_UE4_POINT_LIGHT_SOURCE_RADIUS",
	"VER_UE4_SCENE_CAPTURE_CAMERA_CHANGE",
	"VER_UE4_MOVE_SKELETALMESH_SHADOWCASTING",
	"VER_UE4_CHANGE_SETARRAY_BYTECODE",
	"VER_UE4_MATERIAL_INSTANCE_BASE_PROPERTY_OVERRIDES",
	"VER_UE4_COMBINED_LIGHTMAP_TEXTURES",
	"VER_UE4_BUMPED_MATERIAL_EXPORT_GUIDS",
	"VER_UE4_BLUEPRINT_INPUT_BINDING_OVERRIDES",
	"VER_UE4_FIXUP_BODYSETUP_INVALID_CONVEX_TRANSFORM",
	"VER_UE4_FIXUP_STIFFNESS_AND_DAMPING_SCALE",
	"VER_UE4_REFERENCE_SKELETON_REFACTOR",
	"VER_UE4_K2NODE_REFERENCEGUIDS",
	"VER_UE4_FIXUP_ROOTBONE_PARENT",
	"VER_UE4_TEXT_RENDER_COMPONENTS_WORLD_SPACE_SIZING",
	"VER_UE4_MATERIAL_INSTANCE_BASE_PROPERTY_OVERRIDES_PHASE_2",
	"VER_UE4_CLASS_NOTPLACEABLE_ADDED",
	"VER_UE4_WORLD_LEVEL_INFO_LOD_LIST",
	"VER_UE4_CHARACTER_MOVEMENT_VARIABLE_RENAMING_1",
	"VER_UE4_FSLATESOUND_CONVERSION",
	"VER_UE4_WORLD_LEVEL_INFO_ZORDER",
	"VER_UE4_PACKAGE_REQUIRES_LOCALIZATION_GATHER_FLAGGING",
	"VER_UE4_BP_ACTOR_VARIABLE_DEFAULT_PREVENTING",
	"VER_UE4_TEST_ANIMCOMP_CHANGE",
	"VER_UE4_EDITORONLY_BLUEPRINTS",
	"VER_UE4_EDGRAPHPINTYPE_SERIALIZATION",
	"VER_UE4_NO_MIRROR_BRUSH_MODEL_COLLISION",
	"VER_UE4_CHANGED_CHUNKID_TO_BE_AN_ARRAY_OF_CHUNKIDS",
	"VER_UE4_WORLD_NAMED_AFTER_PACKAGE",
	"VER_UE4_SKY_LIGHT_COMPONENT",
	"VER_UE4_WORLD_LAYER_ENABLE_DISTANCE_STREAMING",
	"VER_UE4_REMOVE_ZONES_FROM_MODEL",
	"VER_UE4_FIX_ANIMATIONBASEPOSE_SERIALIZATION",
	"VER_UE4_SUPPORT_8_BONE_INFLUENCES_SKELETAL_MESHES",
	"VER_UE4_ADD_OVERRIDE_GRAVITY_FLAG",
	"VER_UE4_SUPPORT_GPUSKINNING_8_BONE_INFLUENCES",
	"VER_UE4_ANIM_SUPPORT_NONUNIFORM_SCALE_ANIMATION",
	"VER_UE4_ENGINE_VERSION_OBJECT",
	"VER_UE4_PUBLIC_WORLDS",
	"VER_UE4_SKELETON_GUID_SERIALIZATION",
	"VER_UE4_CHARACTER_MOVEMENT_WALKABLE_FLOOR_REFACTOR",
	"VER_UE4_INVERSE_SQUARED_LIGHTS_DEFAULT",
	"VER_UE4_DISABLED_SCRIPT_LIMIT_BYTECODE",
	"VER_UE4_PRIVATE_REMOTE_ROLE",
	"VER_UE4_FOLIAGE_STATIC_MOBILITY",
	"VER_UE4_BUILD_SCALE_VECTOR",
	"VER_UE4_FOLIAGE_COLLISION",
	"VER_UE4_SKY_BENT_NORMAL",
	"VER_UE4_LANDSCAPE_COLLISION_DATA_COOKING",
	"VER_UE4_MORPHTARGET_CPU_TANGENTZDELTA_FORMATCHANGE",
	"VER_UE4_SOFT_CONSTRAINTS_USE_MASS",
	"VER_UE4_REFLECTION_DATA_IN_PACKAGES",
	"VER_UE4_FOLIAGE_MOVABLE_MOBILITY",
	"VER_UE4_UNDO_BREAK_MATERIALATTRIBUTES_CHANGE",
	"VER_UE4_ADD_CUSTOMPROFILENAME_CHANGE",
	"VER_UE4_FLIP_MATERIAL_COORDS",
	"VER_UE4_MEMBERREFERENCE_IN_PINTYPE",
	"VER_UE4_VEHICLES_UNIT_CHANGE",
	"VER_UE4_ANIMATION_REMOVE_NANS",
	"VER_UE4_SKELETON_ASSET_PROPERTY_TYPE_CHANGE",
	"VER_UE4_FIX_BLUEPRINT_VARIABLE_FLAGS",
	"VER_UE4_VEHICLES_UNIT_CHANGE2",
	"VER_UE4_UCLASS_SERIALIZE_INTERFACES_AFTER_LINKING",
	"VER_UE4_STATIC_MESH_SCREEN_SIZE_LODS",
	"VER_UE4_FIX_MATERIAL_COORDS",
	"VER_UE4_SPEEDTREE_WIND_V7",
	"VER_UE4_LOAD_FOR_EDITOR_GAME",
	"VER_UE4_SERIALIZE_RICH_CURVE_KEY",
	"VER_UE4_MOVE_LANDSCAPE_MICS_AND_TEXTURES_WITHIN_LEVEL",
	"VER_UE4_FTEXT_HISTORY",
	"VER_UE4_FIX_MATERIAL_COMMENTS",
	"VER_UE4_STORE_BONE_EXPORT_NAMES",
	"VER_UE4_MESH_EMITTER_INITIAL_ORIENTATION_DISTRIBUTION",
	"VER_UE4_DISALLOW_FOLIAGE_ON_BLUEPRINTS",
	"VER_UE4_FIXUP_MOTOR_UNITS",
	"VER_UE4_DEPRECATED_MOVEMENTCOMPONENT_MODIFIED_SPEEDS",
	"VER_UE4_RENAME_CANBECHARACTERBASE",
	"VER_UE4_GAMEPLAY_TAG_CONTAINER_TAG_TYPE_CHANGE",
	"VER_UE4_FOLIAGE_SETTINGS_TYPE",
	"VER_UE4_STATIC_SHADOW_DEPTH_MAPS",
	"VER_UE4_ADD_TRANSACTIONAL_TO_DATA_ASSETS",
	"VER_UE4_ADD_LB_WEIGHTBLEND",
	"VER_UE4_ADD_ROOTCOMPONENT_TO_FOLIAGEACTOR",
	"VER_UE4_FIX_MATERIAL_PROPERTY_OVERRIDE_SERIALIZE",
	"VER_UE4_ADD_LINEAR_COLOR_SAMPLER",
	"VER_UE4_ADD_STRING_ASSET_REFERENCES_MAP",
	"VER_UE4_BLUEPRINT_USE_SCS_ROOTCOMPONENT_SCALE",
	"VER_UE4_LEVEL_STREAMING_DRAW_COLOR_TYPE_CHANGE",
	"VER_UE4_CLEAR_NOTIFY_TRIGGERS",
	"VER_UE4_SKELETON_ADD_SMARTNAMES",
	"VER_UE4_ADDED_CURRENCY_CODE_TO_FTEXT",
	"VER_UE4_ENUM_CLASS_SUPPORT",
	"VER_UE4_FIXUP_WIDGET_ANIMATION_CLASS",
	"VER_UE4_SOUND_COMPRESSION_TYPE_ADDED",
	"VER_UE4_AUTO_WELDING",
	"VER_UE4_RENAME_CROUCHMOVESCHARACTERDOWN",
	"VER_UE4_LIGHTMAP_MESH_BUILD_SETTINGS",
	"VER_UE4_RENAME_SM3_TO_ES3_1",
	"VER_UE4_DEPRECATE_UMG_STYLE_ASSETS",
	"VER_UE4_POST_DUPLICATE_NODE_GUID",
	"VER_UE4_RENAME_CAMERA_COMPONENT_VIEW_ROTATION",
	"VER_UE4_CASE_PRESERVING_FNAME",
	"VER_UE4_RENAME_CAMERA_COMPONENT_CONTROL_ROTATION",
	"VER_UE4_FIX_REFRACTION_INPUT_MASKING",
	"VER_UE4_GLOBAL_EMITTER_SPAWN_RATE_SCALE",
	"VER_UE4_CLEAN_DESTRUCTIBLE_SETTINGS",
	"VER_UE4_CHARACTER_MOVEMENT_UPPER_IMPACT_BEHAVIOR",
	"VER_UE4_BP_MATH_VECTOR_EQUALITY_USES_EPSILON",
	"VER_UE4_FOLIAGE_STATIC_LIGHTING_SUPPORT",
	"VER_UE4_SLATE_COMPOSITE_FONTS",
	"VER_UE4_REMOVE_SAVEGAMESUMMARY",
	"VER_UE4_REMOVE_SKELETALMESH_COMPONENT_BODYSETUP_SERIALIZATION",
	"VER_UE4_SLATE_BULK_FONT_DATA",
	"VER_UE4_ADD_PROJECTILE_FRICTION_BEHAVIOR",
	"VER_UE4_MOVEMENTCOMPONENT_AXIS_SETTINGS",
	"VER_UE4_GRAPH_INTERACTIVE_COMMENTBUBBLES",
	"VER_UE4_LANDSCAPE_SERIALIZE_PHYSICS_MATERIALS",
	"VER_UE4_RENAME_WIDGET_VISIBILITY",
	"VER_UE4_ANIMATION_ADD_TRACKCURVES",
	"VER_UE4_MONTAGE_BRANCHING_POINT_REMOVAL",
	"VER_UE4_BLUEPRINT_ENFORCE_CONST_IN_FUNCTION_OVERRIDES",
	"VER_UE4_ADD_PIVOT_TO_WIDGET_COMPONENT",
	"VER_UE4_PAWN_AUTO_POSSESS_AI",
	"VER_UE4_FTEXT_HISTORY_DATE_TIMEZONE",
	"VER_UE4_SORT_ACTIVE_BONE_INDICES",
	"VER_UE4_PERFRAME_MATERIAL_UNIFORM_EXPRESSIONS",
	"VER_UE4_MIKKTSPACE_IS_DEFAULT",
	"VER_UE4_LANDSCAPE_GRASS_COOKING",
	"VER_UE4_FIX_SKEL_VERT_ORIENT_MESH_PARTICLES",
	"VER_UE4_LANDSCAPE_STATIC_SECTION_OFFSET",
	"VER_UE4_ADD_MODIFIERS_RUNTIME_GENERATION",
	"VER_UE4_MATERIAL_MASKED_BLENDMODE_TIDY",
	"VER_UE4_MERGED_ADD_MODIFIERS_RUNTIME_GENERATION_TO_4_7_DEPRECATED",
	"VER_UE4_AFTER_MERGED_ADD_MODIFIERS_RUNTIME_GENERATION_TO_4_7_DEPRECATED",
	"VER_UE4_MERGED_ADD_MODIFIERS_RUNTIME_GENERATION_TO_4_7",
	"VER_UE4_AFTER_MERGING_ADD_MODIFIERS_RUNTIME_GENERATION_TO_4_7",
	"VER_UE4_SERIALIZE_LANDSCAPE_GRASS_DATA",
	"VER_UE4_OPTIONALLY_CLEAR_GPU_EMITTERS_ON_INIT",
	"VER_UE4_SERIALIZE_LANDSCAPE_GRASS_DATA_MATERIAL_GUID",
	"VER_UE4_BLUEPRINT_GENERATED_CLASS_COMPONENT_TEMPLATES_PUBLIC",
	"VER_UE4_ACTOR_COMPONENT_CREATION_METHOD",
	"VER_UE4_K2NODE_EVENT_MEMBER_REFERENCE",
	"VER_UE4_STRUCT_GUID_IN_PROPERTY_TAG",
	"VER_UE4_REMOVE_UNUSED_UPOLYS_FROM_UMODEL",
	"VER_UE4_REBUILD_HIERARCHICAL_INSTANCE_TREES",
	"VER_UE4_PACKAGE_SUMMARY_HAS_COMPATIBLE_ENGINE_VERSION",
	"VER_UE4_TRACK_UCS_MODIFIED_PROPERTIES",
	"VER_UE4_LANDSCAPE_SPLINE_CROSS_LEVEL_MESHES",
	"VER_UE4_DEPRECATE_USER_WIDGET_DESIGN_SIZE",
	"VER_UE4_ADD_EDITOR_VIEWS",
	"VER_UE4_FOLIAGE_WITH_ASSET_OR_CLASS",
	"VER_UE4_BODYINSTANCE_BINARY_SERIALIZATION",
	"VER_UE4_SERIALIZE_BLUEPRINT_EVENTGRAPH_FASTCALLS_IN_UFUNCTION",
	"VER_UE4_INTERPCURVE_SUPPORTS_LOOPING",
	"VER_UE4_MATERIAL_INSTANCE_BASE_PROPERTY_OVERRIDES_DITHERED_LOD_TRANSITION",
	"VER_UE4_SERIALIZE_LANDSCAPE_ES2_TEXTURES",
	"VER_UE4_CONSTRAINT_INSTANCE_MOTOR_FLAGS",
	"VER_UE4_SERIALIZE_PINTYPE_CONST",
	"VER_UE4_LIBRARY_CATEGORIES_AS_FTEXT",
	"VER_UE4_SKIP_DUPLICATE_EXPORTS_ON_SAVE_PACKAGE",
	"VER_UE4_SERIALIZE_TEXT_IN_PACKAGES",
	"VER_UE4_ADD_BLEND_MODE_TO_WIDGET_COMPONENT",
	"VER_UE4_NEW_LIGHTMASS_PRIMITIVE_SETTING",
	"VER_UE4_REPLACE_SPRING_NOZ_PROPERTY",
	"VER_UE4_TIGHTLY_PACKED_ENUMS",
	"VER_UE4_ASSET_IMPORT_DATA_AS_JSON",
	"VER_UE4_TEXTURE_LEGACY_GAMMA",
	"VER_UE4_ADDED_NATIVE_SERIALIZATION_FOR_IMMUTABLE_STRUCTURES",
	"VER_UE4_DEPRECATE_UMG_STYLE_OVERRIDES",
	"VER_UE4_STATIC_SHADOWMAP_PENUMBRA_SIZE",
	"VER_UE4_NIAGARA_DATA_OBJECT_DEV_UI_FIX",
	"VER_UE4_FIXED_DEFAULT_ORIENTATION_OF_WIDGET_COMPONENT",
	"VER_UE4_REMOVED_MATERIAL_USED_WITH_UI_FLAG",
	"VER_UE4_CHARACTER_MOVEMENT_ADD_BRAKING_FRICTION",
	"VER_UE4_BSP_UNDO_FIX",
	"VER_UE4_DYNAMIC_PARAMETER_DEFAULT_VALUE",
	"VER_UE4_STATIC_MESH_EXTENDED_BOUNDS",
	"VER_UE4_ADDED_NON_LINEAR_TRANSITION_BLENDS",
	"VER_UE4_AO_MATERIAL_MASK",
	"VER_UE4_NAVIGATION_AGENT_SELECTOR",
	"VER_UE4_MESH_PARTICLE_COLLISIONS_CONSIDER_PARTICLE_SIZE",
	"VER_UE4_BUILD_MESH_ADJ_BUFFER_FLAG_EXPOSED",
	"VER_UE4_MAX_ANGULAR_VELOCITY_DEFAULT",
	"VER_UE4_APEX_CLOTH_TESSELLATION",
	"VER_UE4_DECAL_SIZE",
	"VER_UE4_KEEP_ONLY_PACKAGE_NAMES_IN_STRING_ASSET_REFERENCES_MAP",
	"VER_UE4_COOKED_ASSETS_IN_EDITOR_SUPPORT",
	"VER_UE4_DIALOGUE_WAVE_NAMESPACE_AND_CONTEXT_CHANGES",
	"VER_UE4_MAKE_ROT_RENAME_AND_REORDER",
	"VER_UE4_K2NODE_VAR_REFERENCEGUIDS",
	"VER_UE4_SOUND_CONCURRENCY_PACKAGE",
	"VER_UE4_USERWIDGET_DEFAULT_FOCUSABLE_FALSE",
	"VER_UE4_BLUEPRINT_CUSTOM_EVENT_CONST_INPUT",
	"VER_UE4_USE_LOW_PASS_FILTER_FREQ",
	"VER_UE4_NO_ANIM_BP_CLASS_IN_GAMEPLAY_CODE",
	"VER_UE4_SCS_STORES_ALLNODES_ARRAY",
	"VER_UE4_FBX_IMPORT_DATA_RANGE_ENCAPSULATION",
	"VER_UE4_CAMERA_COMPONENT_ATTACH_TO_ROOT",
	"VER_UE4_INSTANCED_STEREO_UNIFORM_UPDATE",
	"VER_UE4_STREAMABLE_TEXTURE_MIN_MAX_DISTANCE",
	"VER_UE4_INJECT_BLUEPRINT_STRUCT_PIN_CONVERSION_NODES",
	"VER_UE4_INNER_ARRAY_TAG_INFO",
	"VER_UE4_FIX_SLOT_NAME_DUPLICATION",
	"VER_UE4_STREAMABLE_TEXTURE_AABB",
	"VER_UE4_PROPERTY_GUID_IN_PROPERTY_TAG",
	"VER_UE4_NAME_HASHES_SERIALIZED",
	"VER_UE4_INSTANCED_STEREO_UNIFORM_REFACTOR",
	"VER_UE4_COMPRESSED_SHADER_RESOURCES",
	"VER_UE4_PRELOAD_DEPENDENCIES_IN_COOKED_EXPORTS",
	"VER_UE4_TemplateIndex_IN_COOKED_EXPORTS",
	"VER_UE4_PROPERTY_TAG_SET_MAP_SUPPORT",
	"VER_UE4_ADDED_SEARCHABLE_NAMES",
	"VER_UE4_64BIT_EXPORTMAP_SERIALSIZES",
	"VER_UE4_SKYLIGHT_MOBILE_IRRADIANCE_MAP",
	"VER_UE4_ADDED_SWEEP_WHILE_WALKING_FLAG",
	"VER_UE4_ADDED_SOFT_OBJECT_PATH",
	"VER_UE4_POINTLIGHT_SOURCE_ORIENTATION",
	"VER_UE4_ADDED_PACKAGE_SUMMARY_LOCALIZATION_ID",
	"VER_UE4_FIX_WIDE_STRING_CRC",
	"VER_UE4_ADDED_PACKAGE_OWNER",
	"VER_UE4_SKINWEIGHT_PROFILE_DATA_LAYOUT_CHANGES",
	"VER_UE4_NON_OUTER_PACKAGE_IMPORT",
	"VER_UE4_ASSETREGISTRY_DEPENDENCYFLAGS",
	"VER_UE4_CORRECT_LICENSEE_FLAG",
}
