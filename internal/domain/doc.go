// Package domain contains the core model for fibbench.
//
// The domain is flag-, clock- and persistence-agnostic: it does not depend on
// cobra, YAML parsing, or the filesystem. Infra/adapters map into/from these
// types.
package domain
