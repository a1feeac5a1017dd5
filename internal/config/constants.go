package config

const SourceFileExt = ".qz"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{SourceFileExt, ".quartz"}

// ProjectFileName is the per-project configuration file.
const ProjectFileName = "quartz.yaml"

// RuntimeObjectName is the global the emitted code binds runtime helpers to.
const RuntimeObjectName = "$qz"

// Runtime support function names referenced by lowered code.
const (
	NewArrayFuncName      = "newArray"
	NewArrayFFuncName     = "newArrayF"
	ArrayIteratorFuncName = "arrayIterator"
	WithTypeFuncName      = "withType"
)

// Array member names recognized by the intrinsic lowering.
const (
	ArrayGetMethodName      = "get"
	ArraySetMethodName      = "set"
	ArraySizeMemberName     = "size"
	ArrayIteratorMethodName = "iterator"
)

// Builtin free function names.
const (
	ArrayOfNullsFuncName = "arrayOfNulls"
	GenericArrayCtorName = "Array"
	GenericArrayOfName   = "arrayOf"
)
