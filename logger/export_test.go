package logger

// resetForTest clears the process-wide registration and max level.
func resetForTest() {
	registered.Store(nil)
	maxLevel.Store(int32(Off))
}
