// Package buffer provides the float64 storage behind arena slots and a pool
// that recycles it. Storage is bucketed into power-of-two capacity classes,
// so a host that keeps acquiring buffers of similar sizes reuses backing
// arrays instead of growing new ones.
package buffer
