//go:build windows

package shellsetup

import (
	"os"

	"golang.org/x/sys/windows"
)

// DetectParentShellName returns the executable name of the parent process,
// or "" when it cannot be queried. Image paths may contain spaces, so only
// the base name is taken.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	image, err := processImage(uint32(ppid))
	if err != nil {
		return ""
	}
	return canonicalShellName(baseShellName(image))
}

func processImage(pid uint32) (string, error) {
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", err
	}
	defer windows.CloseHandle(handle)

	buf := make([]uint16, windows.MAX_PATH)
	for {
		size := uint32(len(buf))
		err = windows.QueryFullProcessImageName(handle, 0, &buf[0], &size)
		if err == nil {
			return windows.UTF16ToString(buf[:size]), nil
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER || len(buf) >= 32*1024 {
			return "", err
		}
		buf = make([]uint16, len(buf)*2)
	}
}
