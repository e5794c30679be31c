// Package randstr generates random character strings of a requested length
// from a selectable character-set policy.
//
// A Charset describes which characters are candidates for the output. It is
// resolved once into an ordered Alphabet, and a Source then draws uniformly
// distributed indexes into that alphabet. The default Source reads the
// operating system CSPRNG; a fast xorshift128+ Source is available for
// throwaway strings that need no security guarantees.
package randstr
