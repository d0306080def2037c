// Package domain contains the core domain model for the viewer.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// net/http, YAML parsing, or the filesystem. Infra/adapters map into/from
// these types.
package domain
