package cpu

// soundShadow holds the CPU-visible sound register shadow (§3, §6).
// The actual synthesis/playback is delegated to the wired sound.Device.
type soundShadow struct {
	sa     uint16
	sf, sv, sw byte
}
