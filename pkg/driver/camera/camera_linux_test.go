package camera

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pion/yuyv/pkg/driver"
	"github.com/pion/yuyv/pkg/frame"
	"github.com/pion/yuyv/pkg/prop"
)

func TestDiscover(t *testing.T) {
	const (
		shortName  = "video0"
		shortName2 = "video1"
		longName   = "long-device-name:0:1:2:3"
	)

	dir := t.TempDir()

	byPathDir := filepath.Join(dir, "v4l", "by-path")
	if err := os.MkdirAll(byPathDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, shortName), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, shortName2), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(
		filepath.Join(dir, shortName),
		filepath.Join(byPathDir, longName),
	); err != nil {
		t.Fatal(err)
	}

	m := &driver.Manager{}
	discovered := make(map[string]struct{})
	discover(m, discovered, filepath.Join(byPathDir, "*"))
	discover(m, discovered, filepath.Join(dir, "video*"))

	drvs := m.Query(driver.FilterDeviceType(driver.Camera))
	if len(drvs) != 2 {
		t.Fatalf("Expected 2 driver, got %d drivers", len(drvs))
	}

	expected := longName + LabelSeparator + shortName
	if label := drvs[0].Info().Label; label != expected {
		t.Errorf("Expected label: %s, got: %s", expected, label)
	}
	if p := drvs[0].Info().Priority; p != driver.PriorityHigh {
		t.Errorf("Expected %s to be preferred, got priority %v", shortName, p)
	}

	expectedNoLink := shortName2 + LabelSeparator + shortName2
	if label := drvs[1].Info().Label; label != expectedNoLink {
		t.Errorf("Expected label: %s, got: %s", expectedNoLink, label)
	}
}

func TestFourcc(t *testing.T) {
	// Values of V4L2_PIX_FMT_* in linux/videodev2.h
	expected := map[frame.Format]uint32{
		frame.FormatYUYV: 0x56595559,
		frame.FormatUYVY: 0x59565955,
		frame.FormatYVYU: 0x55595659,
		frame.FormatVYUY: 0x59555956,
	}
	cam := newCamera("/dev/null")
	for f, v := range expected {
		pf, ok := cam.reversedFormats[f]
		if !ok {
			t.Fatalf("%s is not mapped", f)
		}
		if uint32(pf) != v {
			t.Errorf("%s: expected 0x%08x, got 0x%08x", f, v, uint32(pf))
		}
	}
}

func TestVideoRecordUnsupportedFormat(t *testing.T) {
	cam := newCamera("/dev/null")
	if _, err := cam.VideoRecord(prop.Media{Video: prop.Video{FrameFormat: frame.FormatRGBA}}); err == nil {
		t.Error("expected RGBA to be rejected")
	}
}
