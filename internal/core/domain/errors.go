package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when the root package folder does not exist.
	ErrSourceNotFound = zerr.New("cannot find source folder for the package")

	// ErrPackagesNotFound is returned when the packages folder does not exist.
	ErrPackagesNotFound = zerr.New("cannot find packages folder for the package")

	// ErrManifestNotFound is returned when a package directory has no manifest file.
	ErrManifestNotFound = zerr.New("cannot find manifest")

	// ErrManifestMalformed is returned when a manifest file is not a valid JSON object.
	ErrManifestMalformed = zerr.New("failed to parse manifest")

	// ErrManifestUnreadable is returned when the root package manifest cannot be read.
	ErrManifestUnreadable = zerr.New("failed to read package manifest")

	// ErrManifestIncomplete is returned when the root package manifest lacks a name or version.
	ErrManifestIncomplete = zerr.New("cannot read package name and version")

	// ErrManifestWriteFailed is returned when a manifest cannot be written back to disk.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestEditFailed is returned when a field of a manifest document cannot be updated.
	ErrManifestEditFailed = zerr.New("failed to update manifest field")

	// ErrPackageListFailed is returned when the packages folder cannot be listed.
	ErrPackageListFailed = zerr.New("failed to list package folders")

	// ErrPromptAborted is returned when the operator closes the prompt without answering.
	ErrPromptAborted = zerr.New("version prompt aborted")

	// ErrInvalidOutputMode is returned for an unknown --output-mode value.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("could not find config file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file contains unusable values.
	ErrInvalidConfig = zerr.New("invalid config")

	// ErrJournalReadFailed is returned when an existing journal cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read journal")

	// ErrJournalUnmarshalFailed is returned when an existing journal cannot be decoded.
	ErrJournalUnmarshalFailed = zerr.New("failed to unmarshal journal")

	// ErrJournalMarshalFailed is returned when the journal cannot be encoded.
	ErrJournalMarshalFailed = zerr.New("failed to marshal journal")

	// ErrJournalWriteFailed is returned when the journal cannot be written.
	ErrJournalWriteFailed = zerr.New("failed to write journal")
)
