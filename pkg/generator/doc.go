// Package generator assembles parameter declarations into a pasteable
// pipeline block. It decides between the declarative parameters {} syntax and
// the scripted properties([parameters([…])]) fallback for the block as a
// whole, renders each definition through the formatter registry or the
// generic fallbacks, and degrades per parameter instead of failing outright.
package generator
