// Package store provides optional persistence for argonpass hash records.
//
// The core hashing package has no storage requirement; a Record belongs to
// whoever stores it. This package exists for callers that want a ready-made
// keyed store: [RedisStore] persists gob-encoded records under a key prefix,
// [MemoryStore] keeps them in process for tests and embedding.
//
// # What this package must NOT do
//
//   - Persist plaintext credentials — only Record values (parameters, salt,
//     derived key) are stored.
//   - Re-derive or verify anything; verification stays in the argonpass
//     package.
package store
