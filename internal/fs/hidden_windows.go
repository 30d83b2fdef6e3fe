//go:build windows

package fs

import (
	"os"

	"golang.org/x/sys/windows"
)

// IsHidden treats dot-names as hidden, as on Unix, and also entries
// carrying the hidden attribute.
func IsHidden(fullPath string, name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

// IsProtected reports system reparse points such as the compatibility
// junctions under a user profile ("Application Data", "Cookies").
func IsProtected(fullPath, name string) bool {
	if fullPath == "" && name == "" {
		return false
	}
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	const mask = windows.FILE_ATTRIBUTE_SYSTEM | windows.FILE_ATTRIBUTE_REPARSE_POINT
	return attrs&mask == mask
}

func fileAttributes(fullPath, name string) (uint32, error) {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, os.ErrInvalid
	}

	attrs, err := getAttributes(target)
	if err == nil {
		return attrs, nil
	}
	if os.IsNotExist(err) && fullPath != "" && fullPath != name {
		if alt, altErr := getAttributes(name); altErr == nil {
			return alt, nil
		}
	}
	return 0, err
}

func getAttributes(path string) (uint32, error) {
	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return windows.GetFileAttributes(ptr)
}
