package model

import (
	"os"
	"os/exec"
)

// CUDAAvailable reports whether an NVIDIA GPU appears usable on this host.
// The transcription backends decide for themselves whether to use it; this
// only feeds the health endpoint.
func CUDAAvailable() bool {
	if _, err := os.Stat("/proc/driver/nvidia/version"); err == nil {
		return true
	}
	if _, err := exec.LookPath("nvidia-smi"); err == nil {
		return true
	}
	return false
}
