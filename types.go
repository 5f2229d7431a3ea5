package utf

import utfcore "github.com/meigma/utf/core"

// --- Re-exports from core ---

// Directory is an internal node of a container tree.
type Directory = utfcore.Directory

// File is a leaf node holding an opaque payload.
type File = utfcore.File

// Node is a File or a Directory.
type Node = utfcore.Node

// Child is one member of a directory.
type Child = utfcore.Child

// Header describes the region layout of a container.
type Header = utfcore.Header

// Entry is one node of the flattened tree.
type Entry = utfcore.Entry

// Attribute is an entry attribute bitmask.
type Attribute = utfcore.Attribute

// Manifest is a JSON description of a tree.
type Manifest = utfcore.Manifest

// Option configures encoding and decoding.
type Option = utfcore.Option

// WriteOption configures Directory.Write.
type WriteOption = utfcore.WriteOption

// Kind tells a directory how a resource is stored.
type Kind = utfcore.Kind

// Resource is an application object stored in a container.
type Resource = utfcore.Resource

// FileKind marks a resource stored as one file.
type FileKind = utfcore.FileKind

// DirectoryKind marks a resource stored as a directory.
type DirectoryKind = utfcore.DirectoryKind

// FileResource is a readable and writable file resource.
type FileResource = utfcore.FileResource

// DirectoryResource is a readable and writable directory resource.
type DirectoryResource = utfcore.DirectoryResource

// Filenamer supplies the default entry name of a resource.
type Filenamer = utfcore.Filenamer

// Library is a directory resource holding one T per subdirectory.
type Library[T DirectoryResource] = utfcore.Library[T]

// Layout constants.
const (
	Magic      = utfcore.Magic
	Version    = utfcore.Version
	HeaderSize = utfcore.HeaderSize
	EntrySize  = utfcore.EntrySize
	RootName   = utfcore.RootName
)

// Attribute constants.
const (
	AttributeDirectory = utfcore.AttributeDirectory
	AttributeNormal    = utfcore.AttributeNormal
)

// Kind constants.
const (
	KindFile      = utfcore.KindFile
	KindDirectory = utfcore.KindDirectory
)

// Constructors and codec entry points re-exported from core.
var (
	NewDirectory   = utfcore.NewDirectory
	NewFile        = utfcore.NewFile
	NewFileSize    = utfcore.NewFileSize
	NewFileStrings = utfcore.NewFileStrings
	Named          = utfcore.Named
	From           = utfcore.From
	ReadHeader     = utfcore.ReadHeader
	KindOf         = utfcore.KindOf
	Open           = utfcore.Open
)

// Options re-exported from core.
var (
	WithLogger   = utfcore.WithLogger
	WithRegistry = utfcore.WithRegistry
	WithTime     = utfcore.WithTime
	WithWordSize = utfcore.WithWordSize
	WriteAppend  = utfcore.WriteAppend
)
