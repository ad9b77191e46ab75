// Package refdex builds a searchable catalog of documentation topics for a
// set of packages. It downloads each package's distributable archive from a
// package repository, unpacks it, extracts topic metadata (one metadata entry
// may declare many aliases), joins in each package's documentation base URL,
// and produces a filtered, deduplicated, sorted catalog consumed by the
// rendering layer of the containing site.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, yaml/, sqlite/).
package refdex
