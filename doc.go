// Package main provides the entry point of mreg, a REST api for DNS zone data.
// It serves hosts, ip addresses, cnames, txt, naptr, srv and ns records, subnets,
// zones, ptr overrides, hinfo presets, labels and change log entries over fiber,
// validates every write payload before it reaches the database and persists the
// records with gorm on mysql, postgres or sqlite.
package main
