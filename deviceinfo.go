package yuyv

import "github.com/pion/yuyv/pkg/driver"

// DeviceInfo describes a registered video source.
type DeviceInfo struct {
	DeviceID   string
	Label      string
	DeviceType driver.DeviceType
}

// Devices lists every registered driver that can record video.
func Devices() []DeviceInfo {
	drivers := driver.GetManager().Query(driver.FilterVideoRecorder())
	info := make([]DeviceInfo, 0, len(drivers))
	for _, d := range drivers {
		driverInfo := d.Info()
		info = append(info, DeviceInfo{
			DeviceID:   d.ID(),
			Label:      driverInfo.Label,
			DeviceType: driverInfo.DeviceType,
		})
	}
	return info
}
