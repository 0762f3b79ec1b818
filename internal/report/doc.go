// Package report summarizes a generated animation for the terminal and
// exports per-frame convergence data.
package report
