package errors

import "git.home.luguber.info/inful/docsite/internal/logfields"

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext(logfields.KeyField, field).
		WithContext("reason", reason)
}

// Project inputs

func ManifestError(path string, cause error) *SiteError {
	return Wrap(cause, CategoryManifest, SeverityFatal, "package manifest unreadable").
		WithContext("path", path)
}

func GitRemoteError(dir string, cause error) *SiteError {
	return Wrap(cause, CategoryGit, SeverityFatal, "git remote lookup failed").
		WithContext("dir", dir)
}

// Output

func RenderFailed(format string, cause error) *SiteError {
	return Wrap(cause, CategoryRender, SeverityFatal, "rendering site configuration failed").
		WithContext("format", format)
}

func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "writing site configuration failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
