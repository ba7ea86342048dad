//go:build linux

package hw

import "github.com/jochenvg/go-udev"

// DiscoverSerialDevices enumerates /dev/ttyUSB* and /dev/ttyACM*-style
// serial devices currently attached, for the CAT bridge to offer as
// candidates instead of requiring a hardcoded device path.
func DiscoverSerialDevices() ([]string, error) {
	u := udev.Udev{}
	enumerate := u.NewEnumerate()
	if err := enumerate.AddMatchSubsystem("tty"); err != nil {
		return nil, err
	}
	devices, err := enumerate.Devices()
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, d := range devices {
		if d.Devnode() == "" {
			continue
		}
		if d.PropertyValue("ID_BUS") != "usb" {
			continue
		}
		paths = append(paths, d.Devnode())
	}
	return paths, nil
}
