// Package bom implements UTF-8 byte-order-mark detection, the binary-content
// heuristic, and the per-file add/remove rewrite procedure shared by the
// addbom and rmbom tools.
package bom
