// Package record declares the schema of every DNS record kind and the validators
// built on them.
//
// Most kinds only run the shared validation pipeline (see Plain). Host adds a
// lookup of its HINFO preset and a read side that assembles its nested address,
// alias, text and PTR override listings. Lookups go through the small Finder and
// Lister interfaces so validators can be tested without a database.
package record
