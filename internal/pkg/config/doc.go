// Package config holds the validated settings structs for the attack
// tooling: logging configuration and the search budgets that bound the
// otherwise unbounded oracle searches.
package config
