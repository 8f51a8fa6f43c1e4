// Package engine drives the end-to-end distance computation: it enumerates
// candidate pairs, builds the occupancy grid (whole-structure or local per
// source atom), and fans bounded searches out across a worker pool.
package engine
