// Package sanitizer normalizes user input before validation and storage.
//
// All normalization functions are idempotent: applying them twice produces
// the same result as applying them once. Invalid input is handled gracefully
// by returning the trimmed input or an empty value rather than an error, so
// the validators downstream decide what is acceptable.
//
// Normalization includes:
//   - Slugs: lowercase, runs of non [a-z0-9] collapsed to "-", trimmed of "-" ("Toyota Supra" becomes "toyota-supra")
//   - Emails: trimmed and lowercased
//   - Phone numbers: converted to E.164 when parseable in the business region
//   - Strings: collapse whitespace, trim leading/trailing spaces
//   - Image lists: trimmed, empty and duplicate entries dropped, order kept
//   - URLs: https enforced when no scheme is given, host lowercased
package sanitizer
