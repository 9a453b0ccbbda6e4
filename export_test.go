package kstar

// NewSapArenaForTest exposes the unexported sap arena constructor to the
// external kstar_test package.
func NewSapArenaForTest() *sapArena {
	return newSapArena()
}

// ShouldInterruptForTest exposes the unexported interrupt-gate check to the
// external kstar_test package.
func (d *AStarDriver) ShouldInterruptForTest(dijkstraD int64) bool {
	return d.shouldInterrupt(dijkstraD)
}
