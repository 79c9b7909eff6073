// Package match provides name normalization, Levenshtein distance calculation,
// and candidate ranking for member names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for loose name matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks member names against a wanted name
//   - Suggest: "did you mean" hints for unknown members
package match
