// Package utils provides common utility functions for the reconciliation
// service: scalar normalization between SQL driver values, CSV text cells
// and the canonical dataset cell kinds.
package utils
