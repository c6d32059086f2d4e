// Package model describes the data model used by the release pipeline:
// commits and tags extracted from the repository, work units and readiness
// scores produced by the analysis, and the results handed back to callers.
//
// Everything in this package is passive data plus small pure helpers.
// Values are produced fresh on every invocation and never persisted.
package model
