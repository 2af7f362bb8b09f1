// Package phone extracts Russian phone numbers from free text.
//
// Extraction runs in two explicit stages. A loose pattern first finds substrings
// that look like phone numbers (FindCandidates), then every candidate is reduced
// to its digits, its prefix is normalized and the digit count is checked
// (Normalize). Valid numbers are rendered as +7(DDD)DDD-DD-DD and Dedupe keeps the
// first occurrence of each.
//
//	numbers := phone.Extract("Звоните: 8(912)345-67-89")
//	// ["+7(912)345-67-89"]
package phone
