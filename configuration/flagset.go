package configuration

import (
	flag "github.com/spf13/pflag"
)

// NewUnsortedFlagSet creates a new flag set with sorting of its flags disabled,
// so usage output keeps the declaration order.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, errorHandling)
	flagset.SortFlags = false
	return flagset
}
