// Package domain contains the core model for fibprime: generation modes,
// requests, reports, configuration and the error taxonomy.
//
// The domain is presentation- and persistence-agnostic: it does not depend on
// YAML parsing, terminals or the filesystem. Infra/adapters map into/from these types.
package domain
