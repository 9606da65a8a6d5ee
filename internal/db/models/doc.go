// Package models contains the database model definitions for DNS zone data.
//
// JSON tags are the wire names of the REST API, the record schemas in the record
// package declare exactly these names.
package models
