// Package batch orchestrates candidate discovery, sequential per-file
// processing, and run statistics for the addbom and rmbom tools.
package batch
