// Package cost provides a lexicographic, multi-resolution path cost.
//
// A Vector holds one counter per edit granularity. Bucket 0 counts steps that
// changed a single letter, bucket 1 counts two-letter steps, and so on up to
// the last bucket which collects every step of Dimensions letters or more.
// Vectors compare from the most significant bucket down, so one large edit
// always outweighs any number of smaller ones.
//
// Addition is per bucket and saturates at the scalar maximum instead of
// wrapping. The zero value of Vector is the additive identity.
package cost
