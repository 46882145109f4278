// Package disk samples filesystem free space around a purge.
package disk

import (
	psdisk "github.com/shirou/gopsutil/v4/disk"
)

// FreeBytes returns the free space on the filesystem holding path.
func FreeBytes(path string) (uint64, error) {
	usage, err := psdisk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

// Reclaimed returns how many bytes became free between two samples.
// Growth of usage by other processes can make after smaller than before;
// that case reports zero.
func Reclaimed(before, after uint64) uint64 {
	if after <= before {
		return 0
	}
	return after - before
}
